package models

// ItineraryDay is one calendar day of a trip. DayNumber is the 1-based
// rank of Date within the trip's range, contiguous and strictly
// increasing with date. Each day carries three narrative time-of-day
// slots.
type ItineraryDay struct {
	Base
	TripID    uint   `gorm:"not null;index" json:"trip_id"`
	DayNumber int    `gorm:"not null" json:"day_number"`
	Date      string `gorm:"not null" json:"date"`

	MorningTitle       string `json:"morning_title"`
	MorningDescription string `json:"morning_description"`
	MorningMapLink     string `json:"morning_map_link"`

	AfternoonTitle       string `json:"afternoon_title"`
	AfternoonDescription string `json:"afternoon_description"`
	AfternoonMapLink     string `json:"afternoon_map_link"`

	EveningTitle       string `json:"evening_title"`
	EveningDescription string `json:"evening_description"`
	EveningMapLink     string `json:"evening_map_link"`

	// Relationships
	Items []ChecklistItem `gorm:"foreignKey:DayID" json:"items,omitempty"`
}
