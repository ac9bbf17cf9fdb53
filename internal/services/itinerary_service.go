package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
	"tripkit/internal/planner"
	"tripkit/internal/suggest"
)

// itineraryService handles itinerary day logic.
type itineraryService struct {
	db *gorm.DB
}

// NewItineraryService creates a new ItineraryServicer.
func NewItineraryService(db *gorm.DB) ItineraryServicer {
	return &itineraryService{db: db}
}

// GetDay returns one enriched day view.
func (s *itineraryService) GetDay(tripID, dayID uint) (*DayView, error) {
	var trip models.Trip
	err := s.db.
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("start_date, id") }).
		First(&trip, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var day models.ItineraryDay
	err = s.db.Preload("Items").Where("id = ? AND trip_id = ?", dayID, tripID).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDayNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	index := planner.LocationIndex(trip.Stops)
	location := planner.LocationFor(index, day.Date, trip.Destination)
	view := buildDayView(day, location, index[day.Date])
	return &view, nil
}

// UpdateDays saves slot edits for one or more days of a trip in one
// transaction. Updates addressing a day from another trip fail the
// whole batch.
func (s *itineraryService) UpdateDays(tripID uint, updates []DayUpdate) ([]models.ItineraryDay, error) {
	if _, err := s.tripExists(tripID); err != nil {
		return nil, err
	}

	var saved []models.ItineraryDay
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			var day models.ItineraryDay
			err := tx.Where("id = ? AND trip_id = ?", update.DayID, tripID).First(&day).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrDayNotFound
				}
				return err
			}

			day.MorningTitle = update.MorningTitle
			day.MorningDescription = update.MorningDescription
			day.MorningMapLink = update.MorningMapLink
			day.AfternoonTitle = update.AfternoonTitle
			day.AfternoonDescription = update.AfternoonDescription
			day.AfternoonMapLink = update.AfternoonMapLink
			day.EveningTitle = update.EveningTitle
			day.EveningDescription = update.EveningDescription
			day.EveningMapLink = update.EveningMapLink

			if err := tx.Save(&day).Error; err != nil {
				return err
			}
			saved = append(saved, day)
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return saved, nil
}

// Generate fills the trip's empty day slots with style-templated
// narrative text. Slots with existing text are left alone, so manual
// edits survive regeneration. Returns the number of days touched.
func (s *itineraryService) Generate(tripID uint) (int, error) {
	trip, err := s.tripExists(tripID)
	if err != nil {
		return 0, err
	}

	var days []models.ItineraryDay
	if err := s.db.Where("trip_id = ?", tripID).Order("day_number").Find(&days).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	text := suggest.ItineraryDayText(trip.Destination, trip.TravelStyle)
	touched := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := range days {
			day := &days[i]
			changed := false
			fill := func(field *string, value string) {
				if strings.TrimSpace(*field) == "" {
					*field = value
					changed = true
				}
			}
			fill(&day.MorningTitle, text.MorningTitle)
			fill(&day.MorningDescription, text.MorningDescription)
			fill(&day.AfternoonTitle, text.AfternoonTitle)
			fill(&day.AfternoonDescription, text.AfternoonDescription)
			fill(&day.EveningTitle, text.EveningTitle)
			fill(&day.EveningDescription, text.EveningDescription)

			if !changed {
				continue
			}
			if err := tx.Save(day).Error; err != nil {
				return err
			}
			touched++
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return touched, nil
}

func (s *itineraryService) tripExists(tripID uint) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}
