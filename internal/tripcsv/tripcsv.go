// Package tripcsv reads and writes the itinerary CSV interchange
// format: date,time_of_day,category,name,city,meal,selected.
package tripcsv

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"tripkit/internal/dates"
	"tripkit/internal/models"
)

// Header is the exact column order for both import and export.
var Header = []string{"date", "time_of_day", "category", "name", "city", "meal", "selected"}

// Row is one normalized itinerary row. Date and Name are always
// non-blank; Category is one of place/restaurant/hotel; Slot is the
// effective slot after the per-category rules, nil when none applies.
type Row struct {
	Date     string
	Name     string
	Category models.ItemCategory
	City     string
	Slot     *string
	Selected bool
}

// falseTokens are the only values parsed as unselected. Everything
// else, including empty, means selected.
var falseTokens = map[string]bool{"0": true, "false": true, "no": true, "n": true}

// ParseSelected parses the boolean-ish selected column.
func ParseSelected(raw string) bool {
	return !falseTokens[strings.ToLower(strings.TrimSpace(raw))]
}

// EffectiveSlot applies the per-category slot vocabulary: places take a
// time of day, restaurants take a meal, hotels never carry a slot.
// Unrecognized values drop to nil.
func EffectiveSlot(category models.ItemCategory, timeOfDay, meal string) *string {
	switch category {
	case models.CategoryPlace:
		if models.ValidSlot(models.CategoryPlace, timeOfDay) {
			return &timeOfDay
		}
	case models.CategoryRestaurant:
		if models.ValidSlot(models.CategoryRestaurant, meal) {
			return &meal
		}
	}
	return nil
}

// Parse reads rows from r, silently discarding rows with a blank date
// or name or a malformed date, and normalizing the rest: time_of_day,
// category, and meal are lower-cased, unrecognized categories coerce to
// place, and selected follows ParseSelected. Column order does not
// matter; the header row names the columns.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		date := field(record, "date")
		name := field(record, "name")
		if date == "" || name == "" || !dates.Valid(date) {
			continue
		}

		timeOfDay := strings.ToLower(field(record, "time_of_day"))
		meal := strings.ToLower(field(record, "meal"))
		category := models.ItemCategory(strings.ToLower(field(record, "category")))
		switch category {
		case models.CategoryPlace, models.CategoryRestaurant, models.CategoryHotel:
		default:
			category = models.CategoryPlace
		}

		rows = append(rows, Row{
			Date:     date,
			Name:     name,
			Category: category,
			City:     field(record, "city"),
			Slot:     EffectiveSlot(category, timeOfDay, meal),
			Selected: ParseSelected(field(record, "selected")),
		})
	}
	return rows, nil
}

// DateBounds returns the min and max date across rows. ok is false for
// an empty row set.
func DateBounds(rows []Row) (min, max string, ok bool) {
	for _, row := range rows {
		if !ok {
			min, max, ok = row.Date, row.Date, true
			continue
		}
		if row.Date < min {
			min = row.Date
		}
		if row.Date > max {
			max = row.Date
		}
	}
	return min, max, ok
}

// FilterInRange keeps only rows whose date is inside [start, end].
func FilterInRange(rows []Row, start, end string) []Row {
	var out []Row
	for _, row := range rows {
		if dates.Within(row.Date, start, end) {
			out = append(out, row)
		}
	}
	return out
}

// StopSpan is a derived multi-city stop: a city with the min/max dates
// of the rows that mention it.
type StopSpan struct {
	Name      string
	StartDate string
	EndDate   string
}

// DeriveStops groups rows by non-blank city into (min, max) date
// spans, in first-appearance order.
func DeriveStops(rows []Row) []StopSpan {
	spanByCity := make(map[string]*StopSpan)
	var order []string
	for _, row := range rows {
		if row.City == "" {
			continue
		}
		span, ok := spanByCity[row.City]
		if !ok {
			spanByCity[row.City] = &StopSpan{Name: row.City, StartDate: row.Date, EndDate: row.Date}
			order = append(order, row.City)
			continue
		}
		if row.Date < span.StartDate {
			span.StartDate = row.Date
		}
		if row.Date > span.EndDate {
			span.EndDate = row.Date
		}
	}
	out := make([]StopSpan, 0, len(order))
	for _, city := range order {
		out = append(out, *spanByCity[city])
	}
	return out
}

// ExportDay pairs a day's date with its visible items for export.
type ExportDay struct {
	Date  string
	Items []models.ChecklistItem
}

// Write emits the CSV document for the given days, ordered as passed
// (callers order by day number; items keep insertion order). City is
// resolved per date through the stop index, defaulting to the trip
// destination. Hidden items are the caller's concern; Write emits
// every item it is given.
func Write(w io.Writer, days []ExportDay, locationIndex map[string]string, destination string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, day := range days {
		city := destination
		if name, ok := locationIndex[day.Date]; ok {
			city = name
		}
		for _, item := range day.Items {
			slot := ""
			if item.Slot != nil {
				slot = *item.Slot
			}
			timeOfDay, meal := "", ""
			switch item.Category {
			case models.CategoryPlace:
				if models.ValidSlot(models.CategoryPlace, slot) {
					timeOfDay = slot
				}
			case models.CategoryRestaurant:
				if models.ValidSlot(models.CategoryRestaurant, slot) {
					meal = slot
				}
			}
			selected := "0"
			if item.Checked {
				selected = "1"
			}
			record := []string{day.Date, timeOfDay, string(item.Category), item.Name, city, meal, selected}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
