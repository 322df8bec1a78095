package appointment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

var (
	ErrInvalidClock = errors.New("clock: expected HH:MM between 00:00 and 23:59")
	ErrOutOfDay     = errors.New("clock: minutes outside a single day")
)

// TimeToMinutes parses "HH:MM" into minutes since midnight.
func TimeToMinutes(hm string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hm), ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		return 0, ErrInvalidClock
	}

	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrInvalidClock
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0, ErrInvalidClock
	}

	return hours*60 + mins, nil
}

// MinutesToTime formats minutes since midnight as zero-padded "HH:MM".
// Totals that cross midnight are rejected instead of producing hour 24+.
func MinutesToTime(mins int) (string, error) {
	if mins < 0 || mins >= MinutesPerDay {
		return "", ErrOutOfDay
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60), nil
}

// IsClock reports whether s is a well-formed "HH:MM".
func IsClock(s string) bool {
	_, err := TimeToMinutes(s)
	return err == nil
}
