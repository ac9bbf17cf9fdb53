package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/services"
)

// ItineraryHandler handles itinerary day requests.
type ItineraryHandler struct {
	itineraryService services.ItineraryServicer
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(itineraryService services.ItineraryServicer) *ItineraryHandler {
	return &ItineraryHandler{itineraryService: itineraryService}
}

// UpdateDaysRequest represents the bulk day slot save payload.
type UpdateDaysRequest struct {
	Days []services.DayUpdate `json:"days" binding:"required,min=1,dive"`
}

// GetDay handles retrieving one enriched day view.
// @Summary     Get itinerary day
// @Description Get one day with grouped items, completion, location, and routing
// @Tags        itinerary
// @Accept      json
// @Produce     json
// @Param       id     path int true "Trip ID"
// @Param       day_id path int true "Day ID"
// @Success     200 {object} services.DayView "Day view"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Trip or day not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/days/{day_id} [get]
func (h *ItineraryHandler) GetDay(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	dayID, err := parsePathID(c, "day_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.itineraryService.GetDay(tripID, dayID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateDays handles saving slot edits for one or more days at once.
// @Summary     Update itinerary days
// @Description Save narrative slot edits for one or more days of the trip
// @Tags        itinerary
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Trip ID"
// @Param       request body UpdateDaysRequest true "Day slot edits"
// @Success     200 {object} map[string][]models.ItineraryDay "Saved days"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Trip or day not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/days [put]
func (h *ItineraryHandler) UpdateDays(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	days, err := h.itineraryService.UpdateDays(tripID, req.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// Generate handles filling empty day slots with templated text.
// @Summary     Generate itinerary text
// @Description Fill the trip's empty day slots with style-templated narrative; existing text survives
// @Tags        itinerary
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} map[string]int "Days touched"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/generate [post]
func (h *ItineraryHandler) Generate(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	touched, err := h.itineraryService.Generate(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days_updated": touched})
}
