package services

import (
	"io"

	"tripkit/internal/models"
	"tripkit/internal/pagination"
	"tripkit/internal/planner"
	"tripkit/internal/suggest"
)

// TripSummary is one row of the trip list: the trip plus derived
// planning data. Upcoming is true while the trip's end date has not
// passed, so clients can split the list into upcoming and past trips.
type TripSummary struct {
	models.Trip
	Status   models.PlanningStatus `json:"status"`
	DayCount int                   `json:"day_count"`
	Upcoming bool                  `json:"upcoming"`
}

// DayView is one itinerary day enriched for display: its visible items
// grouped by category, completion score, resolved location, and the
// driving route for the day when one can be built. FilteredHotels
// narrows the day's hotels to the stop city when a stop covers the
// date; days no stop covers keep all hotels.
type DayView struct {
	Day            models.ItineraryDay     `json:"day"`
	Weekday        string                  `json:"weekday"`
	Location       string                  `json:"location"`
	Items          planner.ItemGroups      `json:"items"`
	FilteredHotels []models.ChecklistItem  `json:"filtered_hotels"`
	Completion     planner.CompletionStats `json:"completion"`
	DirectionsURL  string                  `json:"directions_url,omitempty"`
}

// TripDetail is the full trip view: every day enriched, the stops, and
// the derived planning status.
type TripDetail struct {
	Trip   models.Trip           `json:"trip"`
	Stops  []models.Stop         `json:"stops"`
	Days   []DayView             `json:"days"`
	Status models.PlanningStatus `json:"status"`
}

// TripServicer defines the contract for trip-level business logic.
type TripServicer interface {
	CreateTrip(destination, startDate, endDate, travelStyle string) (*models.Trip, error)
	GetTrips(page pagination.PageRequest) (*pagination.PageResponse[TripSummary], error)
	GetTripByID(tripID uint) (*models.Trip, error)
	GetTripDetail(tripID uint) (*TripDetail, error)
	UpdateTrip(tripID uint, destination, startDate, endDate, travelStyle string) (*models.Trip, error)
	DeleteTrip(tripID uint) error
}

// StopServicer defines the contract for multi-city stop logic.
type StopServicer interface {
	AddStop(tripID uint, name, startDate, endDate string) (*models.Stop, error)
	GetTripStops(tripID uint) ([]models.Stop, error)
	DeleteStop(tripID, stopID uint) error
}

// DayFields carries the editable narrative slots of an itinerary day.
type DayFields struct {
	MorningTitle         string `json:"morning_title"`
	MorningDescription   string `json:"morning_description"`
	MorningMapLink       string `json:"morning_map_link"`
	AfternoonTitle       string `json:"afternoon_title"`
	AfternoonDescription string `json:"afternoon_description"`
	AfternoonMapLink     string `json:"afternoon_map_link"`
	EveningTitle         string `json:"evening_title"`
	EveningDescription   string `json:"evening_description"`
	EveningMapLink       string `json:"evening_map_link"`
}

// DayUpdate addresses one day's slot edit within a bulk save.
type DayUpdate struct {
	DayID uint `json:"day_id"`
	DayFields
}

// ItineraryServicer defines the contract for itinerary day logic.
type ItineraryServicer interface {
	GetDay(tripID, dayID uint) (*DayView, error)
	UpdateDays(tripID uint, updates []DayUpdate) ([]models.ItineraryDay, error)
	Generate(tripID uint) (int, error)
}

// ChecklistServicer defines the contract for checklist item logic.
type ChecklistServicer interface {
	AddItem(tripID, dayID uint, category models.ItemCategory, name string, slot *string) (*models.ChecklistItem, error)
	UpdateItem(tripID, itemID uint, checked *bool, slot *string) (*models.ChecklistItem, error)
	HideItem(tripID, itemID uint) error
}

// BudgetSummary aggregates a trip's budget lines.
type BudgetSummary struct {
	Items          []models.BudgetItem `json:"items"`
	TotalEstimated float64             `json:"total_estimated"`
	TotalActual    float64             `json:"total_actual"`
	Remaining      float64             `json:"remaining"`
	Percentage     float64             `json:"percentage"`
}

// BudgetServicer defines the contract for trip budget logic.
type BudgetServicer interface {
	AddBudgetItem(tripID uint, label string, estimated, actual float64) (*models.BudgetItem, error)
	UpdateBudgetItem(tripID, itemID uint, label string, estimated, actual *float64) (*models.BudgetItem, error)
	DeleteBudgetItem(tripID, itemID uint) error
	GetBudget(tripID uint) (*BudgetSummary, error)
}

// PackingServicer defines the contract for packing list logic.
type PackingServicer interface {
	SeedPackingList(tripID uint) (int, error)
	GetPackingList(tripID uint) (map[string][]models.PackingItem, error)
	AddPackingItem(tripID uint, category, label string) (*models.PackingItem, error)
	UpdatePackingItem(tripID, itemID uint, checked *bool, label string) (*models.PackingItem, error)
	DeletePackingItem(tripID, itemID uint) error
}

// CSVServicer defines the contract for itinerary CSV import/export.
type CSVServicer interface {
	ImportNewTrip(r io.Reader, destination, travelStyle string) (*models.Trip, error)
	ImportIntoTrip(tripID uint, r io.Reader) (int, error)
	ExportTrip(tripID uint, w io.Writer) error
}

// SuggestionServicer defines the contract for suggestion seeding and
// destination content lookups.
type SuggestionServicer interface {
	SeedSuggestions(tripID uint) (int, error)
	GetWeather(tripID uint) ([]suggest.DailySummary, error)
	GetFoodieHighlights(tripID uint) (map[string]suggest.Highlights, error)
	GetRecipe(tripID uint) (*suggest.Recipe, error)
}
