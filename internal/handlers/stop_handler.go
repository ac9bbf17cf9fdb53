package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/services"
)

// StopHandler handles multi-city stop requests.
type StopHandler struct {
	stopService services.StopServicer
}

// NewStopHandler creates a new StopHandler.
func NewStopHandler(stopService services.StopServicer) *StopHandler {
	return &StopHandler{stopService: stopService}
}

// AddStopRequest represents the request payload for adding a stop.
type AddStopRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	StartDate string `json:"start_date" binding:"required,trip_date"`
	EndDate   string `json:"end_date" binding:"required,trip_date"`
}

// AddStop handles adding a stop to a trip.
// @Summary     Add a stop
// @Description Add a multi-city stop covering a sub-range of the trip's dates
// @Tags        stops
// @Accept      json
// @Produce     json
// @Param       id      path int            true "Trip ID"
// @Param       request body AddStopRequest true "Stop details"
// @Success     201 {object} models.Stop "Stop created"
// @Failure     400 {object} ErrorResponse "Invalid input or stop outside trip dates"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/stops [post]
func (h *StopHandler) AddStop(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stop, err := h.stopService.AddStop(tripID, req.Name, req.StartDate, req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"stop": stop})
}

// GetStops handles listing a trip's stops.
// @Summary     Get stops
// @Description Get the trip's stops ordered by start date
// @Tags        stops
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} map[string][]models.Stop "Stops"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/stops [get]
func (h *StopHandler) GetStops(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	stops, err := h.stopService.GetTripStops(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stops": stops})
}

// DeleteStop handles deleting a stop.
// @Summary     Delete stop
// @Description Delete a stop by ID (soft delete)
// @Tags        stops
// @Accept      json
// @Produce     json
// @Param       id      path int true "Trip ID"
// @Param       stop_id path int true "Stop ID"
// @Success     200 {object} MessageResponse "Stop deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Stop not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/stops/{stop_id} [delete]
func (h *StopHandler) DeleteStop(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	stopID, err := parsePathID(c, "stop_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.stopService.DeleteStop(tripID, stopID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stop deleted successfully"})
}
