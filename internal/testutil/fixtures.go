package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"tripkit/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTrip creates a trip with the given date range and a unique
// destination.
func CreateTestTrip(t *testing.T, db *gorm.DB, start, end string) *models.Trip {
	t.Helper()
	return CreateTestTripTo(t, db, fmt.Sprintf("Test City %d", nextID()), start, end)
}

// CreateTestTripTo creates a trip to the given destination.
func CreateTestTripTo(t *testing.T, db *gorm.DB, destination, start, end string) *models.Trip {
	t.Helper()

	trip := &models.Trip{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		TravelStyle: models.DefaultTravelStyle,
	}
	if err := db.Create(trip).Error; err != nil {
		t.Fatalf("failed to create test trip: %v", err)
	}
	return trip
}

// CreateTestDay creates an itinerary day for the trip.
func CreateTestDay(t *testing.T, db *gorm.DB, tripID uint, dayNumber int, date string) *models.ItineraryDay {
	t.Helper()

	day := &models.ItineraryDay{
		TripID:    tripID,
		DayNumber: dayNumber,
		Date:      date,
	}
	if err := db.Create(day).Error; err != nil {
		t.Fatalf("failed to create test day: %v", err)
	}
	return day
}

// CreateTestStop creates a stop covering [start, end] for the trip.
func CreateTestStop(t *testing.T, db *gorm.DB, tripID uint, name, start, end string) *models.Stop {
	t.Helper()

	stop := &models.Stop{
		TripID:    tripID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
	}
	if err := db.Create(stop).Error; err != nil {
		t.Fatalf("failed to create test stop: %v", err)
	}
	return stop
}

// CreateTestItem creates a checklist item on the given day.
func CreateTestItem(t *testing.T, db *gorm.DB, dayID uint, category models.ItemCategory, name string, checked bool, slot *string) *models.ChecklistItem {
	t.Helper()

	item := &models.ChecklistItem{
		DayID:    dayID,
		Category: category,
		Name:     name,
		Checked:  checked,
		Slot:     slot,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateTestBudgetItem creates a budget line for the trip.
func CreateTestBudgetItem(t *testing.T, db *gorm.DB, tripID uint, label string, estimated, actual float64) *models.BudgetItem {
	t.Helper()

	item := &models.BudgetItem{
		TripID:        tripID,
		Label:         label,
		EstimatedCost: estimated,
		ActualCost:    actual,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test budget item: %v", err)
	}
	return item
}

// SlotPtr returns a pointer to the given slot value, for fixtures.
func SlotPtr(slot string) *string {
	return &slot
}
