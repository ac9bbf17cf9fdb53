package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/pagination"
	"tripkit/internal/services"
)

// TripHandler handles trip-related requests.
type TripHandler struct {
	tripService services.TripServicer
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService services.TripServicer) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest represents the request payload for creating a trip.
type CreateTripRequest struct {
	Destination string `json:"destination" binding:"required,min=1,max=200"`
	StartDate   string `json:"start_date" binding:"required,trip_date"`
	EndDate     string `json:"end_date" binding:"required,trip_date"`
	TravelStyle string `json:"travel_style" binding:"omitempty,max=100"`
}

// UpdateTripRequest represents the request payload for updating a trip.
// Destination and travel style are kept when omitted; dates are always
// required because the day set is reconciled against them.
type UpdateTripRequest struct {
	Destination string `json:"destination" binding:"omitempty,min=1,max=200"`
	StartDate   string `json:"start_date" binding:"required,trip_date"`
	EndDate     string `json:"end_date" binding:"required,trip_date"`
	TravelStyle string `json:"travel_style" binding:"omitempty,max=100"`
}

// CreateTrip handles the creation of a new trip.
// @Summary     Create a trip
// @Description Create a trip with one itinerary day per date in the range
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       request body CreateTripRequest true "Trip details"
// @Success     201 {object} models.Trip "Trip created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	trip, err := h.tripService.CreateTrip(req.Destination, req.StartDate, req.EndDate, req.TravelStyle)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// GetTrips handles listing trips.
// @Summary     Get trips
// @Description Get a paginated trip list with derived planning status per trip
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.TripSummary] "Paginated trips"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [get]
func (h *TripHandler) GetTrips(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.tripService.GetTrips(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrip handles retrieving the full trip view.
// @Summary     Get trip detail
// @Description Get a trip with every day enriched: grouped items, completion, location, and routing
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} services.TripDetail "Trip detail"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.tripService.GetTripDetail(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateTrip handles updating a trip and reconciling its days.
// @Summary     Update trip
// @Description Update trip fields and reconcile the day set against the new date range
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Trip ID"
// @Param       request body UpdateTripRequest true "Updated trip details"
// @Success     200 {object} models.Trip "Updated trip"
// @Failure     400 {object} ErrorResponse "Invalid input or trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	trip, err := h.tripService.UpdateTrip(tripID, req.Destination, req.StartDate, req.EndDate, req.TravelStyle)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// DeleteTrip handles deleting a trip.
// @Summary     Delete trip
// @Description Delete a trip and its days, items, stops, budget, and packing list (soft delete)
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} MessageResponse "Trip deleted"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tripService.DeleteTrip(tripID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}
