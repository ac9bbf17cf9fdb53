package main

import (
	"fmt"
	"net/http"
	"os"

	"tripkit/internal/config"
	"tripkit/internal/database"
	"tripkit/internal/handlers"
	"tripkit/internal/logger"
	"tripkit/internal/middleware"
	"tripkit/internal/services"
	"tripkit/internal/suggest"
	"tripkit/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tripkit/internal/docs" // Import swagger docs
)

// @title           Tripkit API
// @version         1.0
// @description     Tripkit is a personal trip planner: day-by-day itineraries, multi-city stops, checklists, packing lists, budgets, CSV import/export, and destination suggestions.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	resolver := suggest.New(suggest.Config{
		PlacesAPIKey:  appConfig.PlacesAPIKey,
		WeatherAPIKey: appConfig.WeatherAPIKey,
	})
	tripService := services.NewTripService(db)
	stopService := services.NewStopService(db)
	itineraryService := services.NewItineraryService(db)
	checklistService := services.NewChecklistService(db)
	budgetService := services.NewBudgetService(db)
	packingService := services.NewPackingService(db)
	csvService := services.NewCSVService(db)
	suggestionService := services.NewSuggestionService(db, resolver)

	// Initialize handlers
	tripHandler := handlers.NewTripHandler(tripService)
	stopHandler := handlers.NewStopHandler(stopService)
	itineraryHandler := handlers.NewItineraryHandler(itineraryService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	packingHandler := handlers.NewPackingHandler(packingService)
	csvHandler := handlers.NewCSVHandler(csvService)
	suggestHandler := handlers.NewSuggestHandler(suggestionService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Trip routes
	trips := v1.Group("/trips")
	trips.POST("", tripHandler.CreateTrip)
	trips.GET("", tripHandler.GetTrips)
	trips.POST("/import", csvHandler.ImportNewTrip)
	trips.GET("/:id", tripHandler.GetTrip)
	trips.PUT("/:id", tripHandler.UpdateTrip)
	trips.DELETE("/:id", tripHandler.DeleteTrip)

	// Stops
	trips.POST("/:id/stops", stopHandler.AddStop)
	trips.GET("/:id/stops", stopHandler.GetStops)
	trips.DELETE("/:id/stops/:stop_id", stopHandler.DeleteStop)

	// Itinerary days
	trips.GET("/:id/days/:day_id", itineraryHandler.GetDay)
	trips.PUT("/:id/days", itineraryHandler.UpdateDays)
	trips.POST("/:id/generate", itineraryHandler.Generate)

	// Checklist items
	trips.POST("/:id/days/:day_id/items", checklistHandler.AddItem)
	trips.PATCH("/:id/items/:item_id", checklistHandler.UpdateItem)
	trips.DELETE("/:id/items/:item_id", checklistHandler.HideItem)

	// Budget
	trips.GET("/:id/budget", budgetHandler.GetBudget)
	trips.POST("/:id/budget", budgetHandler.AddBudgetItem)
	trips.PATCH("/:id/budget/:item_id", budgetHandler.UpdateBudgetItem)
	trips.DELETE("/:id/budget/:item_id", budgetHandler.DeleteBudgetItem)

	// Packing list
	trips.POST("/:id/packing/seed", packingHandler.SeedPackingList)
	trips.GET("/:id/packing", packingHandler.GetPackingList)
	trips.POST("/:id/packing", packingHandler.AddPackingItem)
	trips.PATCH("/:id/packing/:item_id", packingHandler.UpdatePackingItem)
	trips.DELETE("/:id/packing/:item_id", packingHandler.DeletePackingItem)

	// CSV merge and export
	trips.POST("/:id/import", csvHandler.ImportIntoTrip)
	trips.GET("/:id/export", csvHandler.ExportTrip)

	// Suggestions and destination content
	trips.POST("/:id/suggestions/seed", suggestHandler.SeedSuggestions)
	trips.GET("/:id/weather", suggestHandler.GetWeather)
	trips.GET("/:id/foodie", suggestHandler.GetFoodieHighlights)
	trips.GET("/:id/recipe", suggestHandler.GetRecipe)

	log.Infof("Starting Tripkit backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
