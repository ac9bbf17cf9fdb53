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

// suggestionService seeds destination suggestions onto itinerary days
// and serves weather, foodie, and recipe content.
type suggestionService struct {
	db       *gorm.DB
	resolver *suggest.Resolver
}

// NewSuggestionService creates a new SuggestionServicer.
func NewSuggestionService(db *gorm.DB, resolver *suggest.Resolver) SuggestionServicer {
	return &suggestionService{db: db, resolver: resolver}
}

// SeedSuggestions adds suggested places, restaurants, and hotels to
// every day of the trip, resolved per day against that day's location.
// Seeding is idempotent on (day, category, name): existing items,
// hidden ones included, are never duplicated or resurrected. Returns
// the number of items added.
func (s *suggestionService) SeedSuggestions(tripID uint) (int, error) {
	trip, err := s.getTripWithDays(tripID)
	if err != nil {
		return 0, err
	}

	index := planner.LocationIndex(trip.Stops)

	// One lookup per distinct location, not per day.
	byLocation := make(map[string]suggest.Suggestions)
	suggestionsFor := func(location string) suggest.Suggestions {
		if cached, ok := byLocation[location]; ok {
			return cached
		}
		result := s.resolver.DaySuggestions(location, trip.TravelStyle)
		byLocation[location] = result
		return result
	}

	added := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, day := range trip.Days {
			type key struct {
				category models.ItemCategory
				name     string
			}
			seen := make(map[key]bool, len(day.Items))
			for _, item := range day.Items {
				seen[key{item.Category, item.Name}] = true
			}

			location := planner.LocationFor(index, day.Date, trip.Destination)
			for category, names := range suggestionsFor(location) {
				for _, name := range names {
					if seen[key{category, name}] {
						continue
					}
					item := models.ChecklistItem{DayID: day.ID, Category: category, Name: name}
					if err := tx.Create(&item).Error; err != nil {
						return err
					}
					seen[key{category, name}] = true
					added++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return added, nil
}

// GetWeather returns the trip forecast, one summary per day for at
// most the first week.
func (s *suggestionService) GetWeather(tripID uint) ([]suggest.DailySummary, error) {
	trip, err := s.getTripWithDays(tripID)
	if err != nil {
		return nil, err
	}
	dayDates := make([]string, 0, len(trip.Days))
	for _, day := range trip.Days {
		dayDates = append(dayDates, day.Date)
	}
	return s.resolver.WeatherForecast(trip.Destination, dayDates), nil
}

// GetFoodieHighlights returns dishes, hidden gems, and a grocery list
// per city. Multi-stop trips get one entry per distinct stop name;
// trips without stops fall back to the destination.
func (s *suggestionService) GetFoodieHighlights(tripID uint) (map[string]suggest.Highlights, error) {
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

	byCity := make(map[string]suggest.Highlights)
	for _, stop := range trip.Stops {
		city := strings.TrimSpace(stop.Name)
		if city == "" {
			continue
		}
		if _, ok := byCity[city]; ok {
			continue
		}
		byCity[city] = s.resolver.FoodieHighlights(city, trip.TravelStyle)
	}
	if len(byCity) == 0 {
		byCity[trip.Destination] = s.resolver.FoodieHighlights(trip.Destination, trip.TravelStyle)
	}
	return byCity, nil
}

// GetRecipe returns a simple destination-flavored recipe.
func (s *suggestionService) GetRecipe(tripID uint) (*suggest.Recipe, error) {
	trip, err := s.getTrip(tripID)
	if err != nil {
		return nil, err
	}
	recipe := suggest.LocalRecipe(trip.Destination)
	return &recipe, nil
}

func (s *suggestionService) getTrip(tripID uint) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}

func (s *suggestionService) getTripWithDays(tripID uint) (*models.Trip, error) {
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
	return &trip, nil
}
