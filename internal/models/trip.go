package models

// PlanningStatus summarizes how far along a trip's itinerary is.
type PlanningStatus string

const (
	StatusPlanning      PlanningStatus = "Planning"
	StatusMostlyPlanned PlanningStatus = "Mostly planned"
	StatusReady         PlanningStatus = "Ready"
)

// DefaultTravelStyle is used when a trip is created without a style.
const DefaultTravelStyle = "Flexible"

// Trip is the top-level planning unit: a destination with an inclusive
// date range. Dates are stored as YYYY-MM-DD strings; every itinerary
// invariant keys on the date string.
type Trip struct {
	Base
	Destination string `gorm:"not null" json:"destination"`
	StartDate   string `gorm:"not null" json:"start_date"`
	EndDate     string `gorm:"not null" json:"end_date"`
	TravelStyle string `gorm:"not null;default:'Flexible'" json:"travel_style"`

	// Relationships
	Days         []ItineraryDay `gorm:"foreignKey:TripID" json:"days,omitempty"`
	Stops        []Stop         `gorm:"foreignKey:TripID" json:"stops,omitempty"`
	BudgetItems  []BudgetItem   `gorm:"foreignKey:TripID" json:"budget_items,omitempty"`
	PackingItems []PackingItem  `gorm:"foreignKey:TripID" json:"packing_items,omitempty"`
}
