package models

// Stop names a city/location active over a sub-range of a trip's dates,
// for multi-city trips. Stops may overlap; the stop-to-date mapping is
// last-write-wins in list order. The stop range is validated against
// the trip range at creation only.
type Stop struct {
	Base
	TripID    uint   `gorm:"not null;index" json:"trip_id"`
	Name      string `gorm:"not null" json:"name"`
	StartDate string `gorm:"not null" json:"start_date"`
	EndDate   string `gorm:"not null" json:"end_date"`
}
