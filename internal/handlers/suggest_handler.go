package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripkit/internal/services"
)

// SuggestHandler handles suggestion seeding and destination content
// requests.
type SuggestHandler struct {
	suggestionService services.SuggestionServicer
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(suggestionService services.SuggestionServicer) *SuggestHandler {
	return &SuggestHandler{suggestionService: suggestionService}
}

// SeedSuggestions handles seeding place/restaurant/hotel suggestions.
// @Summary     Seed suggestions
// @Description Add suggested places, restaurants, and hotels to every day, resolved per day location; idempotent
// @Tags        suggestions
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} map[string]int "Items added"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/suggestions/seed [post]
func (h *SuggestHandler) SeedSuggestions(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	added, err := h.suggestionService.SeedSuggestions(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items_added": added})
}

// GetWeather handles retrieving the trip forecast.
// @Summary     Get trip weather
// @Description Get one forecast summary per day for at most the first week of the trip
// @Tags        suggestions
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} map[string][]suggest.DailySummary "Forecast"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/weather [get]
func (h *SuggestHandler) GetWeather(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	forecast, err := h.suggestionService.GetWeather(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": forecast})
}

// GetFoodieHighlights handles retrieving foodie content.
// @Summary     Get foodie highlights
// @Description Get dishes to try, hidden gems, and a grocery list per stop city, or for the destination on single-city trips
// @Tags        suggestions
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} map[string]suggest.Highlights "Foodie highlights keyed by city"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/foodie [get]
func (h *SuggestHandler) GetFoodieHighlights(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	highlights, err := h.suggestionService.GetFoodieHighlights(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"highlights_by_city": highlights})
}

// GetRecipe handles retrieving a destination recipe.
// @Summary     Get local recipe
// @Description Get a simple destination-flavored recipe a traveler can cook where they stay
// @Tags        suggestions
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} suggest.Recipe "Recipe"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/recipe [get]
func (h *SuggestHandler) GetRecipe(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipe, err := h.suggestionService.GetRecipe(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}
