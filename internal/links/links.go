package links

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	calendarBase = "https://calendar.google.com/calendar/render"
	whatsAppBase = "https://wa.me/"

	calendarLayout = "20060102T150405"
)

// encode escapes like a browser's encodeURIComponent (spaces as %20).
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

type CalendarEvent struct {
	Title    string
	Start    time.Time
	Duration time.Duration
	Details  string
	Location string
}

// GoogleCalendar builds an "add event" template link. Times are written
// as floating local time, so the event lands at the shop's wall clock.
func GoogleCalendar(ev CalendarEvent) string {
	end := ev.Start.Add(ev.Duration)
	return fmt.Sprintf("%s?action=TEMPLATE&text=%s&dates=%s/%s&details=%s&location=%s",
		calendarBase,
		encode(ev.Title),
		ev.Start.Format(calendarLayout),
		end.Format(calendarLayout),
		encode(ev.Details),
		encode(ev.Location),
	)
}

// WhatsApp builds a click-to-chat link; phone is reduced to its digits.
func WhatsApp(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if text == "" {
		return whatsAppBase + digits
	}
	return whatsAppBase + digits + "?text=" + encode(text)
}

// BrazilianDate turns "2026-10-14" into "14/10/2026".
func BrazilianDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
