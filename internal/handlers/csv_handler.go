package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/services"
)

// CSVHandler handles itinerary CSV import and export requests.
type CSVHandler struct {
	csvService services.CSVServicer
}

// NewCSVHandler creates a new CSVHandler.
func NewCSVHandler(csvService services.CSVServicer) *CSVHandler {
	return &CSVHandler{csvService: csvService}
}

// ImportNewTrip handles originating a trip from an uploaded CSV.
// @Summary     Import new trip
// @Description Create a whole trip from a CSV file: the date range, days, items, and stops all derive from the rows
// @Tags        csv
// @Accept      multipart/form-data
// @Produce     json
// @Param       file         formData file   true  "Itinerary CSV"
// @Param       destination  formData string false "Trip destination (defaults to Imported Trip)"
// @Param       travel_style formData string false "Travel style"
// @Success     201 {object} models.Trip "Trip created"
// @Failure     400 {object} ErrorResponse "Missing file or no valid rows"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/import [post]
func (h *CSVHandler) ImportNewTrip(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "A CSV file upload named 'file' is required"))
		return
	}
	defer file.Close()

	trip, err := h.csvService.ImportNewTrip(file, c.PostForm("destination"), c.PostForm("travel_style"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// ImportIntoTrip handles merging an uploaded CSV into an existing trip.
// @Summary     Import into trip
// @Description Append CSV rows to an existing trip's days; rows outside the trip dates are dropped and the range never changes
// @Tags        csv
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path     int  true "Trip ID"
// @Param       file formData file true "Itinerary CSV"
// @Success     200 {object} map[string]int "Items added"
// @Failure     400 {object} ErrorResponse "Missing file, no valid rows, or all rows out of range"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/import [post]
func (h *CSVHandler) ImportIntoTrip(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "A CSV file upload named 'file' is required"))
		return
	}
	defer file.Close()

	added, err := h.csvService.ImportIntoTrip(tripID, file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items_added": added})
}

// ExportTrip handles downloading a trip's itinerary as CSV.
// @Summary     Export trip
// @Description Download the trip's visible itinerary as a CSV attachment
// @Tags        csv
// @Produce     text/csv
// @Param       id path int true "Trip ID"
// @Success     200 {string} string "CSV document"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/export [get]
func (h *CSVHandler) ExportTrip(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=trip_"+strconv.FormatUint(uint64(tripID), 10)+"_itinerary.csv")
	if err := h.csvService.ExportTrip(tripID, c.Writer); err != nil {
		// Headers may already be out; reset them before the error body.
		c.Header("Content-Type", "application/json")
		c.Header("Content-Disposition", "")
		respondWithError(c, err)
		return
	}
}
