package services

import (
	"errors"

	"gorm.io/gorm"

	"tripkit/internal/dates"
	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
)

// stopService handles multi-city stop logic.
type stopService struct {
	db *gorm.DB
}

// NewStopService creates a new StopServicer.
func NewStopService(db *gorm.DB) StopServicer {
	return &stopService{db: db}
}

// AddStop creates a stop for the trip. The stop range must be a valid
// date range inside the trip's dates; it is checked here only, not
// again when the trip's dates change later.
func (s *stopService) AddStop(tripID uint, name, startDate, endDate string) (*models.Stop, error) {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Stop name is required")
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if !dates.Within(startDate, trip.StartDate, trip.EndDate) ||
		!dates.Within(endDate, trip.StartDate, trip.EndDate) {
		return nil, apperrors.ErrStopOutOfRange
	}

	stop := &models.Stop{
		TripID:    tripID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := s.db.Create(stop).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stop, nil
}

// GetTripStops returns the trip's stops ordered by start date. The
// order matters: later stops win on overlapping dates.
func (s *stopService) GetTripStops(tripID uint) ([]models.Stop, error) {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stops []models.Stop
	if err := s.db.Where("trip_id = ?", tripID).Order("start_date, id").Find(&stops).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stops, nil
}

// DeleteStop soft-deletes a stop if it belongs to the trip.
func (s *stopService) DeleteStop(tripID, stopID uint) error {
	var stop models.Stop
	if err := s.db.Where("id = ? AND trip_id = ?", stopID, tripID).First(&stop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&stop).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
