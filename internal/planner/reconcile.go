// Package planner holds the pure itinerary logic: reconciling day sets
// against an edited date range, mapping dates to multi-city stops, and
// aggregating per-day checklist items into view data.
package planner

import (
	"time"

	"tripkit/internal/dates"
	"tripkit/internal/models"
)

// DayPlan is one row of a reconciled itinerary. ID is zero for days
// that do not exist yet.
type DayPlan struct {
	ID        uint
	DayNumber int
	Date      string
}

// Reconcile walks newStart..newEnd inclusive and produces the updated
// day set for a trip: existing days whose date is still in range are
// reused (identity preserved, day number renumbered), missing dates get
// new placeholders, and days falling outside the range are scheduled
// for deletion. Day numbers in the result are contiguous 1..N ordered
// by date. The caller validates the range; newEnd before newStart
// yields no upserts and schedules every existing day for deletion.
func Reconcile(existing []models.ItineraryDay, newStart, newEnd time.Time) (upserts []DayPlan, deleteIDs []uint) {
	byDate := make(map[string]models.ItineraryDay, len(existing))
	for _, day := range existing {
		byDate[day.Date] = day
	}

	used := make(map[uint]bool, len(existing))
	dayNumber := 1
	for _, current := range dates.Range(newStart, newEnd) {
		date := dates.Format(current)
		if day, ok := byDate[date]; ok {
			used[day.ID] = true
			upserts = append(upserts, DayPlan{ID: day.ID, DayNumber: dayNumber, Date: date})
		} else {
			upserts = append(upserts, DayPlan{DayNumber: dayNumber, Date: date})
		}
		dayNumber++
	}

	for _, day := range existing {
		if !used[day.ID] {
			deleteIDs = append(deleteIDs, day.ID)
		}
	}
	return upserts, deleteIDs
}
