package planner

import (
	"net/url"
	"strings"

	"tripkit/internal/models"
)

// ItemGroups partitions a day's visible checklist items by category.
// Absent categories are present with empty slices so view code can
// iterate without nil checks.
type ItemGroups map[models.ItemCategory][]models.ChecklistItem

// GroupItems partitions items by category, skipping hidden ones. Each
// grouped item gets its maps search link filled in.
func GroupItems(items []models.ChecklistItem) ItemGroups {
	groups := ItemGroups{
		models.CategoryPlace:      {},
		models.CategoryRestaurant: {},
		models.CategoryHotel:      {},
	}
	for _, item := range items {
		if item.Hidden {
			continue
		}
		item.SearchURL = SearchURL(item.Name)
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// CompletionStats reports how planned-out a single day is.
type CompletionStats struct {
	SlotsFilled int `json:"slots_filled"`
	TotalSlots  int `json:"total_slots"`
	MealsPicked int `json:"meals_picked"`
	TotalMeals  int `json:"total_meals"`
	Percent     int `json:"percent"`
}

// Completion scores a day: filled time-of-day descriptions plus
// distinct breakfast/lunch/dinner meals with a checked restaurant pick.
// Snack picks never count. The denominator is fixed at 6.
func Completion(day models.ItineraryDay, groups ItemGroups) CompletionStats {
	slotsFilled := 0
	for _, desc := range []string{day.MorningDescription, day.AfternoonDescription, day.EveningDescription} {
		if strings.TrimSpace(desc) != "" {
			slotsFilled++
		}
	}

	mealFlags := map[string]bool{
		models.SlotBreakfast: false,
		models.SlotLunch:     false,
		models.SlotDinner:    false,
	}
	for _, item := range groups[models.CategoryRestaurant] {
		if !item.Checked || item.Slot == nil {
			continue
		}
		slot := strings.ToLower(*item.Slot)
		if _, ok := mealFlags[slot]; ok {
			mealFlags[slot] = true
		}
	}
	mealsPicked := 0
	for _, picked := range mealFlags {
		if picked {
			mealsPicked++
		}
	}

	const totalSlots, totalMeals = 3, 3
	denom := totalSlots + totalMeals
	percent := int(float64(slotsFilled+mealsPicked)/float64(denom)*100 + 0.5)

	return CompletionStats{
		SlotsFilled: slotsFilled,
		TotalSlots:  totalSlots,
		MealsPicked: mealsPicked,
		TotalMeals:  totalMeals,
		Percent:     percent,
	}
}

// FilterHotels narrows a day's checked hotel items to those whose name
// mentions the resolved location (case-insensitive substring). With no
// resolved location, all hotels are kept.
func FilterHotels(hotels []models.ChecklistItem, location string) []models.ChecklistItem {
	if location == "" {
		return hotels
	}
	loc := strings.ToLower(location)
	var out []models.ChecklistItem
	for _, h := range hotels {
		if strings.Contains(strings.ToLower(h.Name), loc) {
			out = append(out, h)
		}
	}
	return out
}

// SearchURL builds a Google Maps search deep link for a place name.
func SearchURL(name string) string {
	if name == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name)
}

// DirectionsURL builds a driving directions deep link for one day:
// hotel -> breakfast spot(s) -> checked places -> back to the hotel.
// The first checked hotel is both origin and destination. Returns ""
// when the day has no checked hotel or no waypoints.
func DirectionsURL(groups ItemGroups, city string) string {
	var hotel *models.ChecklistItem
	for i, h := range groups[models.CategoryHotel] {
		if h.Checked {
			hotel = &groups[models.CategoryHotel][i]
			break
		}
	}
	if hotel == nil {
		// No starting/ending hotel for this day.
		return ""
	}

	var waypoints []string
	for _, item := range groups[models.CategoryRestaurant] {
		if item.Checked && item.Slot != nil && strings.EqualFold(*item.Slot, models.SlotBreakfast) {
			waypoints = append(waypoints, item.Name+", "+city)
		}
	}
	for _, item := range groups[models.CategoryPlace] {
		if item.Checked {
			waypoints = append(waypoints, item.Name+", "+city)
		}
	}
	if len(waypoints) == 0 {
		// Nothing to route through.
		return ""
	}

	hotelLocation := hotel.Name + ", " + city
	parts := []string{
		"https://www.google.com/maps/dir/?api=1",
		"origin=" + url.QueryEscape(hotelLocation),
		"destination=" + url.QueryEscape(hotelLocation),
		// Google Maps expects waypoints joined by pipe characters.
		"waypoints=" + url.QueryEscape(strings.Join(waypoints, "|")),
		"travelmode=driving",
	}
	return strings.Join(parts, "&")
}

// DayHasActivity reports whether a day carries any planning signal:
// a non-blank slot description or a checked visible checklist item.
func DayHasActivity(day models.ItineraryDay, items []models.ChecklistItem) bool {
	for _, desc := range []string{day.MorningDescription, day.AfternoonDescription, day.EveningDescription} {
		if strings.TrimSpace(desc) != "" {
			return true
		}
	}
	for _, item := range items {
		if !item.Hidden && item.Checked {
			return true
		}
	}
	return false
}

// PlanningStatus derives a trip-level status from the share of days
// with activity. A trip with no days is always Planning.
func PlanningStatus(days []models.ItineraryDay, itemsByDay map[uint][]models.ChecklistItem) models.PlanningStatus {
	if len(days) == 0 {
		return models.StatusPlanning
	}
	active := 0
	for _, day := range days {
		if DayHasActivity(day, itemsByDay[day.ID]) {
			active++
		}
	}
	if active == 0 {
		return models.StatusPlanning
	}
	ratio := float64(active) / float64(len(days))
	switch {
	case ratio < 0.5:
		return models.StatusPlanning
	case ratio < 0.9:
		return models.StatusMostlyPlanned
	default:
		return models.StatusReady
	}
}
