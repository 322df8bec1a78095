package plan

import (
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

// Occurrences is the number of weekly appointments materialized per plan.
const Occurrences = 4

// OccurrenceDates returns the first Occurrences dates, one week apart,
// starting at the first day on or after today that falls on weekday.
func OccurrenceDates(today time.Time, weekday time.Weekday) []string {
	first := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for first.Weekday() != weekday {
		first = first.AddDate(0, 0, 1)
	}

	dates := make([]string, 0, Occurrences)
	for i := 0; i < Occurrences; i++ {
		dates = append(dates, first.AddDate(0, 0, 7*i).Format(timezone.DateLayout))
	}
	return dates
}
