// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"
)

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// GetMonthBounds returns the first and last calendar day of the month containing date.
// The month is taken from date's own location; the bounds are calendar days at UTC midnight,
// the same form transaction dates are stored in.
func GetMonthBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// GeneratePeriodLabel generates a human-readable label for the month containing date (e.g., "Mar 2025").
func GeneratePeriodLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}
