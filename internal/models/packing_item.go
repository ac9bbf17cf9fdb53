package models

// PackingItem is one packing-list entry for a trip. Suggested items are
// seeded idempotently, keyed by (category, label) within the trip;
// users can add their own on top.
type PackingItem struct {
	Base
	TripID   uint   `gorm:"not null;index" json:"trip_id"`
	Category string `gorm:"not null" json:"category"`
	Label    string `gorm:"not null" json:"label"`
	Checked  bool   `gorm:"not null;default:false" json:"checked"`
}
