package links

import (
	"fmt"
	"time"
)

// Shop is the contact data printed on booking links.
type Shop struct {
	Name     string
	Address  string
	WhatsApp string
}

type Booking struct {
	ClientName  string
	ServiceName string
	BarberName  string
	BarberPhone string
	Date        string
	Time        string
	Start       time.Time
	Duration    time.Duration
}

type BookingLinks struct {
	Calendar string `json:"calendar_url"`
	WhatsApp string `json:"whatsapp_url"`
}

// ForBooking builds the post-booking calendar and WhatsApp links. The
// message goes to the barber's phone when known, else to the shop.
func (s Shop) ForBooking(b Booking) BookingLinks {
	phone := b.BarberPhone
	if phone == "" {
		phone = s.WhatsApp
	}

	return BookingLinks{
		Calendar: GoogleCalendar(CalendarEvent{
			Title:    "Corte: " + b.ServiceName,
			Start:    b.Start,
			Duration: b.Duration,
			Details:  fmt.Sprintf("Agendamento com %s confirmado.", b.BarberName),
			Location: s.Name + " - " + s.Address,
		}),
		WhatsApp: WhatsApp(phone, fmt.Sprintf(
			"Fala mestre! Confirmei meu agendamento pelo sistema para o dia %s às %s. Nome: %s.",
			BrazilianDate(b.Date), b.Time, b.ClientName,
		)),
	}
}

// Support is the fallback contact shown when a request fails unexpectedly.
func (s Shop) Support() string {
	return WhatsApp(s.WhatsApp, "Deu erro no site, quero agendar!")
}
