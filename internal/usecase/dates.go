package usecase

import (
	"strings"
	"time"
)

// ISODateLayout is the canonical date format of every fused itinerary
const ISODateLayout = "2006-01-02"

// Accepted input layouts, in resolution order. US month-first is tried
// before day-first; within one schedule build the formats are never mixed.
var acceptedDateLayouts = []string{
	ISODateLayout,
	"01/02/2006",
	"02/01/2006",
}

// parseFlexibleDate tries the accepted layouts in order
func parseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeDate rewrites a parseable date as ISO; unparseable input passes
// through trimmed so no information is dropped.
func normalizeDate(value string) string {
	if t, ok := parseFlexibleDate(value); ok {
		return t.Format(ISODateLayout)
	}
	return strings.TrimSpace(value)
}

// sameDay compares a raw date string against a calendar day, tolerating
// any accepted input format.
func sameDay(value string, day time.Time) bool {
	t, ok := parseFlexibleDate(value)
	if !ok {
		return false
	}
	return t.Year() == day.Year() && t.Month() == day.Month() && t.Day() == day.Day()
}
