package services

import (
	"errors"
	"io"

	"gorm.io/gorm"

	"tripkit/internal/dates"
	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
	"tripkit/internal/planner"
	"tripkit/internal/tripcsv"
)

// DefaultImportDestination names trips originated from a CSV upload
// that carries no destination.
const DefaultImportDestination = "Imported Trip"

// csvService handles itinerary CSV import and export.
type csvService struct {
	db *gorm.DB
}

// NewCSVService creates a new CSVServicer.
func NewCSVService(db *gorm.DB) CSVServicer {
	return &csvService{db: db}
}

// ImportNewTrip originates a whole trip from a CSV document: the trip
// range spans the min and max row dates, every date in between gets a
// day, rows become checklist items on their day, and distinct cities
// become stops.
func (s *csvService) ImportNewTrip(r io.Reader, destination, travelStyle string) (*models.Trip, error) {
	rows, err := tripcsv.Parse(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	start, end, ok := tripcsv.DateBounds(rows)
	if !ok {
		return nil, apperrors.ErrNoValidCSVRows
	}

	if destination == "" {
		destination = DefaultImportDestination
	}
	if travelStyle == "" {
		travelStyle = models.DefaultTravelStyle
	}

	trip := &models.Trip{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		TravelStyle: travelStyle,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}

		dayIDByDate := make(map[string]uint)
		for i, date := range dates.RangeStrings(start, end) {
			day := models.ItineraryDay{TripID: trip.ID, DayNumber: i + 1, Date: date}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
			dayIDByDate[date] = day.ID
		}

		if err := createRowItems(tx, rows, dayIDByDate); err != nil {
			return err
		}

		for _, span := range tripcsv.DeriveStops(rows) {
			stop := models.Stop{
				TripID:    trip.ID,
				Name:      span.Name,
				StartDate: span.StartDate,
				EndDate:   span.EndDate,
			}
			if err := tx.Create(&stop).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return trip, nil
}

// ImportIntoTrip appends CSV rows to an existing trip's days. Rows
// outside the trip's dates are dropped; the trip range never changes.
// Matching items are appended, not merged, so re-importing the same
// file duplicates. Cities in the surviving rows become additional
// stops, appended alongside any existing ones. Returns the number of
// items added.
func (s *csvService) ImportIntoTrip(tripID uint, r io.Reader) (int, error) {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrTripNotFound
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows, err := tripcsv.Parse(r)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return 0, apperrors.ErrNoValidCSVRows
	}
	rows = tripcsv.FilterInRange(rows, trip.StartDate, trip.EndDate)
	if len(rows) == 0 {
		return 0, apperrors.ErrCSVOutOfRange
	}

	var days []models.ItineraryDay
	if err := s.db.Where("trip_id = ?", tripID).Find(&days).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	dayIDByDate := make(map[string]uint, len(days))
	for _, day := range days {
		dayIDByDate[day.Date] = day.ID
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := createRowItems(tx, rows, dayIDByDate); err != nil {
			return err
		}
		for _, span := range tripcsv.DeriveStops(rows) {
			stop := models.Stop{
				TripID:    tripID,
				Name:      span.Name,
				StartDate: span.StartDate,
				EndDate:   span.EndDate,
			}
			if err := tx.Create(&stop).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(rows), nil
}

// ExportTrip writes the trip's visible itinerary as CSV, days in
// day-number order, with each row's city resolved through the stops.
func (s *csvService) ExportTrip(tripID uint, w io.Writer) error {
	var trip models.Trip
	err := s.db.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Days.Items", "hidden = ?", false).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("start_date, id") }).
		First(&trip, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTripNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	days := make([]tripcsv.ExportDay, 0, len(trip.Days))
	for _, day := range trip.Days {
		days = append(days, tripcsv.ExportDay{Date: day.Date, Items: day.Items})
	}
	index := planner.LocationIndex(trip.Stops)
	if err := tripcsv.Write(w, days, index, trip.Destination); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// createRowItems turns parsed rows into checklist items on their
// date's day. Rows for dates with no day are skipped.
func createRowItems(tx *gorm.DB, rows []tripcsv.Row, dayIDByDate map[string]uint) error {
	for _, row := range rows {
		dayID, ok := dayIDByDate[row.Date]
		if !ok {
			continue
		}
		item := models.ChecklistItem{
			DayID:    dayID,
			Category: row.Category,
			Name:     row.Name,
			Checked:  row.Selected,
			Slot:     row.Slot,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
