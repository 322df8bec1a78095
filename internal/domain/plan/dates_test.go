package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOccurrenceDates_SameWeekdayStartsToday(t *testing.T) {
	wednesday := time.Date(2026, 10, 14, 18, 30, 0, 0, time.UTC)

	got := OccurrenceDates(wednesday, time.Wednesday)
	assert.Equal(t, []string{"2026-10-14", "2026-10-21", "2026-10-28", "2026-11-04"}, got)
}

func TestOccurrenceDates_LaterWeekday(t *testing.T) {
	wednesday := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	got := OccurrenceDates(wednesday, time.Saturday)
	assert.Equal(t, []string{"2026-10-17", "2026-10-24", "2026-10-31", "2026-11-07"}, got)
}

func TestOccurrenceDates_EarlierWeekdayWrapsToNextWeek(t *testing.T) {
	wednesday := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	got := OccurrenceDates(wednesday, time.Monday)
	assert.Equal(t, "2026-10-19", got[0])
	assert.Len(t, got, Occurrences)
}

func TestOccurrenceDates_CrossesYear(t *testing.T) {
	got := OccurrenceDates(time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC), time.Tuesday)
	assert.Equal(t, []string{"2026-12-22", "2026-12-29", "2027-01-05", "2027-01-12"}, got)
}
