package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tripkit/internal/dates"
	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
	"tripkit/internal/pagination"
	"tripkit/internal/planner"
)

// tripService handles trip-level business logic.
type tripService struct {
	db *gorm.DB
}

// NewTripService creates a new TripServicer.
func NewTripService(db *gorm.DB) TripServicer {
	return &tripService{db: db}
}

// validateDateRange checks a YYYY-MM-DD range for format and order.
func validateDateRange(start, end string) error {
	if !dates.Valid(start) || !dates.Valid(end) {
		return apperrors.ErrInvalidDateFormat
	}
	if end < start {
		return apperrors.ErrEndBeforeStart
	}
	return nil
}

// buildDayView enriches a loaded day for display. The day's Items must
// be preloaded. stopLocation is the stop city covering the date, or ""
// when no stop covers it.
func buildDayView(day models.ItineraryDay, location, stopLocation string) DayView {
	groups := planner.GroupItems(day.Items)
	return DayView{
		Day:            day,
		Weekday:        dates.Weekday(day.Date),
		Location:       location,
		Items:          groups,
		FilteredHotels: planner.FilterHotels(groups[models.CategoryHotel], stopLocation),
		Completion:     planner.Completion(day, groups),
		DirectionsURL:  planner.DirectionsURL(groups, location),
	}
}

// CreateTrip creates a trip and one itinerary day per date in the
// range, numbered from 1.
func (s *tripService) CreateTrip(destination, startDate, endDate, travelStyle string) (*models.Trip, error) {
	if destination == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Destination is required")
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if travelStyle == "" {
		travelStyle = models.DefaultTravelStyle
	}

	trip := &models.Trip{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		TravelStyle: travelStyle,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		for i, date := range dates.RangeStrings(startDate, endDate) {
			day := models.ItineraryDay{
				TripID:    trip.ID,
				DayNumber: i + 1,
				Date:      date,
			}
			if err := tx.Create(&day).Error; err != nil {
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

// GetTrips returns a paginated trip list with derived planning status
// and an upcoming/past flag per trip, newest first. A trip counts as
// upcoming until the day after its end date.
func (s *tripService) GetTrips(page pagination.PageRequest) (*pagination.PageResponse[TripSummary], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Trip{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var trips []models.Trip
	err := s.db.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Days.Items").
		Order("id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&trips).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	today := dates.Format(time.Now())
	summaries := make([]TripSummary, 0, len(trips))
	for _, trip := range trips {
		itemsByDay := make(map[uint][]models.ChecklistItem, len(trip.Days))
		for _, day := range trip.Days {
			itemsByDay[day.ID] = day.Items
		}
		status := planner.PlanningStatus(trip.Days, itemsByDay)

		dayCount := len(trip.Days)
		trip.Days = nil
		summaries = append(summaries, TripSummary{
			Trip:     trip,
			Status:   status,
			DayCount: dayCount,
			Upcoming: trip.EndDate >= today,
		})
	}

	result := pagination.NewPageResponse(summaries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTripByID returns a trip by ID.
func (s *tripService) GetTripByID(tripID uint) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}

// GetTripDetail returns the full trip view: every day enriched with
// grouped items, completion, location, and routing, plus the stops and
// the derived planning status.
func (s *tripService) GetTripDetail(tripID uint) (*TripDetail, error) {
	var trip models.Trip
	err := s.db.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Days.Items").
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("start_date, id") }).
		First(&trip, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	index := planner.LocationIndex(trip.Stops)
	itemsByDay := make(map[uint][]models.ChecklistItem, len(trip.Days))
	days := make([]DayView, 0, len(trip.Days))
	for _, day := range trip.Days {
		itemsByDay[day.ID] = day.Items
		location := planner.LocationFor(index, day.Date, trip.Destination)
		days = append(days, buildDayView(day, location, index[day.Date]))
	}
	status := planner.PlanningStatus(trip.Days, itemsByDay)

	stops := trip.Stops
	trip.Days = nil
	trip.Stops = nil
	return &TripDetail{Trip: trip, Stops: stops, Days: days, Status: status}, nil
}

// UpdateTrip updates a trip's fields and reconciles its day set against
// the new date range: days whose date survives keep their identity and
// content, missing dates get fresh days, and out-of-range days are
// removed together with their checklist items.
func (s *tripService) UpdateTrip(tripID uint, destination, startDate, endDate, travelStyle string) (*models.Trip, error) {
	trip, err := s.GetTripByID(tripID)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	if destination != "" {
		trip.Destination = destination
	}
	if travelStyle != "" {
		trip.TravelStyle = travelStyle
	}
	trip.StartDate = startDate
	trip.EndDate = endDate

	newStart, _ := dates.Parse(startDate)
	newEnd, _ := dates.Parse(endDate)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.ItineraryDay
		if err := tx.Where("trip_id = ?", tripID).Find(&existing).Error; err != nil {
			return err
		}

		upserts, deleteIDs := planner.Reconcile(existing, newStart, newEnd)
		for _, plan := range upserts {
			if plan.ID != 0 {
				err := tx.Model(&models.ItineraryDay{}).
					Where("id = ?", plan.ID).
					Update("day_number", plan.DayNumber).Error
				if err != nil {
					return err
				}
				continue
			}
			day := models.ItineraryDay{TripID: tripID, DayNumber: plan.DayNumber, Date: plan.Date}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		}
		if len(deleteIDs) > 0 {
			if err := tx.Where("day_id IN ?", deleteIDs).Delete(&models.ChecklistItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", deleteIDs).Delete(&models.ItineraryDay{}).Error; err != nil {
				return err
			}
		}

		return tx.Save(trip).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return trip, nil
}

// DeleteTrip soft-deletes a trip and everything hanging off it.
func (s *tripService) DeleteTrip(tripID uint) error {
	trip, err := s.GetTripByID(tripID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var dayIDs []uint
		err := tx.Model(&models.ItineraryDay{}).
			Where("trip_id = ?", tripID).
			Pluck("id", &dayIDs).Error
		if err != nil {
			return err
		}
		if len(dayIDs) > 0 {
			if err := tx.Where("day_id IN ?", dayIDs).Delete(&models.ChecklistItem{}).Error; err != nil {
				return err
			}
		}
		for _, model := range []interface{}{
			&models.ItineraryDay{}, &models.Stop{}, &models.BudgetItem{}, &models.PackingItem{},
		} {
			if err := tx.Where("trip_id = ?", tripID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(trip).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
