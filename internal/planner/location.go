package planner

import (
	"tripkit/internal/dates"
	"tripkit/internal/models"
)

// LocationIndex maps each date covered by a stop to that stop's name.
// Stops are processed in list order, so later stops overwrite earlier
// ones on overlapping dates (last-write-wins). Callers typically pass
// stops ordered by start date.
func LocationIndex(stops []models.Stop) map[string]string {
	index := make(map[string]string)
	for _, stop := range stops {
		for _, date := range dates.RangeStrings(stop.StartDate, stop.EndDate) {
			index[date] = stop.Name
		}
	}
	return index
}

// LocationFor resolves the location name for a date, falling back to
// the trip destination for dates no stop covers.
func LocationFor(index map[string]string, date, destination string) string {
	if name, ok := index[date]; ok {
		return name
	}
	return destination
}
