package models

// ItemCategory classifies a checklist item.
type ItemCategory string

const (
	CategoryPlace      ItemCategory = "place"
	CategoryRestaurant ItemCategory = "restaurant"
	CategoryHotel      ItemCategory = "hotel"
)

// Place slots (time of day).
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Restaurant slots (meals).
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnack     = "snack"
)

// ValidSlot reports whether slot is allowed for the given category.
// Hotels never carry a slot.
func ValidSlot(category ItemCategory, slot string) bool {
	switch category {
	case CategoryPlace:
		return slot == SlotMorning || slot == SlotAfternoon || slot == SlotEvening
	case CategoryRestaurant:
		return slot == SlotBreakfast || slot == SlotLunch || slot == SlotDinner || slot == SlotSnack
	}
	return false
}

// ChecklistItem is a place/restaurant/hotel candidate attached to an
// itinerary day. Hidden items are soft-hidden: excluded from all
// aggregation, routing, and export, but retained in storage.
type ChecklistItem struct {
	Base
	DayID    uint         `gorm:"not null;index" json:"day_id"`
	Category ItemCategory `gorm:"not null" json:"category"`
	Name     string       `gorm:"not null" json:"name"`
	Checked  bool         `gorm:"not null;default:false" json:"checked"`
	Slot     *string      `json:"slot,omitempty"`
	Hidden   bool         `gorm:"not null;default:false" json:"hidden"`

	// SearchURL is a computed Google Maps search link for the item's
	// name, filled when items are grouped for display. Never stored.
	SearchURL string `gorm:"-" json:"search_url,omitempty"`
}
