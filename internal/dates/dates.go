// Package dates handles the YYYY-MM-DD calendar dates used throughout
// the itinerary logic. Dates are carried as strings at rest and parsed
// strictly at the edges.
package dates

import "time"

// Layout is the only accepted date format.
const Layout = "2006-01-02"

// Parse parses a strict YYYY-MM-DD date.
func Parse(text string) (time.Time, error) {
	return time.Parse(Layout, text)
}

// Format renders a date back to YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Valid reports whether text is a well-formed YYYY-MM-DD date.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// Range returns the inclusive sequence of dates from start to end,
// empty when end is before start.
func Range(start, end time.Time) []time.Time {
	var out []time.Time
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		out = append(out, current)
	}
	return out
}

// RangeStrings is Range over already-formatted date strings. Malformed
// bounds yield an empty sequence.
func RangeStrings(start, end string) []string {
	s, err := Parse(start)
	if err != nil {
		return nil
	}
	e, err := Parse(end)
	if err != nil {
		return nil
	}
	var out []string
	for _, d := range Range(s, e) {
		out = append(out, Format(d))
	}
	return out
}

// Weekday returns the English weekday name for a date string, or ""
// when the date is malformed.
func Weekday(text string) string {
	t, err := Parse(text)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// Within reports whether date falls inside [start, end] inclusive.
// All three are YYYY-MM-DD strings, which compare correctly as text.
func Within(date, start, end string) bool {
	return date >= start && date <= end
}
