package appointment

import (
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

var dayLabels = [7]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// DayLabel is the display name of a weekday index; it is never parsed back.
func DayLabel(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return dayLabels[weekday]
}

// DefaultSchedule is used for barbers that never configured their week.
func DefaultSchedule() models.Schedule {
	return models.Schedule{
		{Weekday: 0, Active: false, Start: "09:00", End: "13:00"},
		{Weekday: 1, Active: true, Start: "09:00", End: "19:00"},
		{Weekday: 2, Active: true, Start: "09:00", End: "19:00"},
		{Weekday: 3, Active: true, Start: "09:00", End: "19:00"},
		{Weekday: 4, Active: true, Start: "09:00", End: "19:00"},
		{Weekday: 5, Active: true, Start: "09:00", End: "20:00"},
		{Weekday: 6, Active: true, Start: "09:00", End: "18:00"},
	}
}

// DayFor picks the schedule record for weekday, matched by index.
// A missing schedule, or a schedule without that weekday, falls back to
// the default template.
func DayFor(schedule models.Schedule, weekday time.Weekday) models.ScheduleDay {
	for _, d := range schedule {
		if d.Weekday == int(weekday) {
			return d
		}
	}
	for _, d := range DefaultSchedule() {
		if d.Weekday == int(weekday) {
			return d
		}
	}
	return models.ScheduleDay{Weekday: int(weekday)}
}

// WorkingWindow is the opening window of a barber on a given day.
type WorkingWindow struct {
	Active bool
	Open   string
	Close  string
	Lunch  *Window
}

func WindowFor(barber *models.Barber, date time.Time) WorkingWindow {
	day := DayFor(barber.Schedule, date.Weekday())

	w := WorkingWindow{
		Active: day.Active,
		Open:   day.Start,
		Close:  day.End,
	}
	if barber.LunchStart != "" && barber.LunchEnd != "" {
		w.Lunch = &Window{Start: barber.LunchStart, End: barber.LunchEnd}
	}
	return w
}

// ValidateSchedule checks a week being saved by an admin: weekdays 0..6,
// each at most once, and active days with a well-formed start < end.
func ValidateSchedule(schedule models.Schedule) error {
	seen := make(map[int]bool, len(schedule))

	for _, d := range schedule {
		if d.Weekday < 0 || d.Weekday > 6 || seen[d.Weekday] {
			return httperr.ErrValidation("schedule.weekday")
		}
		seen[d.Weekday] = true

		if !d.Active {
			continue
		}
		start, err := TimeToMinutes(d.Start)
		if err != nil {
			return httperr.ErrValidation("schedule.start")
		}
		end, err := TimeToMinutes(d.End)
		if err != nil || end <= start {
			return httperr.ErrValidation("schedule.end")
		}
	}

	return nil
}
