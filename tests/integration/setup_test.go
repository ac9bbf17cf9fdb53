package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripkit/internal/handlers"
	"tripkit/internal/logger"
	"tripkit/internal/middleware"
	"tripkit/internal/models"
	"tripkit/internal/services"
	"tripkit/internal/suggest"
	"tripkit/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Trip{},
		&models.ItineraryDay{},
		&models.Stop{},
		&models.ChecklistItem{},
		&models.BudgetItem{},
		&models.PackingItem{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	resolver := suggest.New(suggest.Config{})

	// Services
	tripService := services.NewTripService(db)
	stopService := services.NewStopService(db)
	itineraryService := services.NewItineraryService(db)
	checklistService := services.NewChecklistService(db)
	budgetService := services.NewBudgetService(db)
	packingService := services.NewPackingService(db)
	csvService := services.NewCSVService(db)
	suggestionService := services.NewSuggestionService(db, resolver)

	// Handlers
	tripHandler := handlers.NewTripHandler(tripService)
	stopHandler := handlers.NewStopHandler(stopService)
	itineraryHandler := handlers.NewItineraryHandler(itineraryService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	packingHandler := handlers.NewPackingHandler(packingService)
	csvHandler := handlers.NewCSVHandler(csvService)
	suggestHandler := handlers.NewSuggestHandler(suggestionService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	trips := v1.Group("/trips")
	trips.POST("", tripHandler.CreateTrip)
	trips.GET("", tripHandler.GetTrips)
	trips.POST("/import", csvHandler.ImportNewTrip)
	trips.GET("/:id", tripHandler.GetTrip)
	trips.PUT("/:id", tripHandler.UpdateTrip)
	trips.DELETE("/:id", tripHandler.DeleteTrip)

	trips.POST("/:id/stops", stopHandler.AddStop)
	trips.GET("/:id/stops", stopHandler.GetStops)
	trips.DELETE("/:id/stops/:stop_id", stopHandler.DeleteStop)

	trips.GET("/:id/days/:day_id", itineraryHandler.GetDay)
	trips.PUT("/:id/days", itineraryHandler.UpdateDays)
	trips.POST("/:id/generate", itineraryHandler.Generate)

	trips.POST("/:id/days/:day_id/items", checklistHandler.AddItem)
	trips.PATCH("/:id/items/:item_id", checklistHandler.UpdateItem)
	trips.DELETE("/:id/items/:item_id", checklistHandler.HideItem)

	trips.GET("/:id/budget", budgetHandler.GetBudget)
	trips.POST("/:id/budget", budgetHandler.AddBudgetItem)
	trips.PATCH("/:id/budget/:item_id", budgetHandler.UpdateBudgetItem)
	trips.DELETE("/:id/budget/:item_id", budgetHandler.DeleteBudgetItem)

	trips.POST("/:id/packing/seed", packingHandler.SeedPackingList)
	trips.GET("/:id/packing", packingHandler.GetPackingList)
	trips.POST("/:id/packing", packingHandler.AddPackingItem)
	trips.PATCH("/:id/packing/:item_id", packingHandler.UpdatePackingItem)
	trips.DELETE("/:id/packing/:item_id", packingHandler.DeletePackingItem)

	trips.POST("/:id/import", csvHandler.ImportIntoTrip)
	trips.GET("/:id/export", csvHandler.ExportTrip)

	trips.POST("/:id/suggestions/seed", suggestHandler.SeedSuggestions)
	trips.GET("/:id/weather", suggestHandler.GetWeather)
	trips.GET("/:id/foodie", suggestHandler.GetFoodieHighlights)
	trips.GET("/:id/recipe", suggestHandler.GetRecipe)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createTrip creates a trip through the API and returns its ID.
func (app *testApp) createTrip(t *testing.T, destination, startDate, endDate, travelStyle string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"destination":%q,"start_date":%q,"end_date":%q,"travel_style":%q}`,
		destination, startDate, endDate, travelStyle)
	rec := app.request("POST", "/api/v1/trips", body)
	if rec.Code != 201 {
		t.Fatalf("create trip failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	trip := result["trip"].(map[string]interface{})
	return trip["id"].(float64)
}
