package client

import (
	"sort"
	"strings"

	appointment "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// Client is a derived view; it is never stored.
type Client struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Phone       string               `json:"phone"`
	TotalVisits int                  `json:"total_visits"`
	TotalSpent  float64              `json:"total_spent"`
	Cancelled   int                  `json:"cancelled"`
	LastVisit   string               `json:"last_visit,omitempty"`
	History     []models.Appointment `json:"history"`
}

// PriceLookup returns the live catalog price of a service.
type PriceLookup func(serviceID string) (float64, bool)

// Key groups walk-ins without a phone by name.
func Key(ap models.Appointment) string {
	if ap.Phone == "" || ap.Phone == models.PhoneNotAvailable {
		return "avulso-" + strings.ToLower(strings.TrimSpace(ap.ClientName))
	}
	return ap.Phone
}

// Aggregate folds appointments into one record per client, sorted by
// total spent, highest first. Pauses are not clients and are skipped.
func Aggregate(appointments []models.Appointment, price PriceLookup) []Client {
	byKey := make(map[string]*Client)
	order := make([]string, 0)

	for _, ap := range appointments {
		if appointment.Source(ap.Source) == appointment.SourceSystemBlock {
			continue
		}

		key := Key(ap)
		c, ok := byKey[key]
		if !ok {
			c = &Client{ID: key, Name: ap.ClientName, Phone: ap.Phone}
			byKey[key] = c
			order = append(order, key)
		}
		c.History = append(c.History, ap)

		switch appointment.Status(ap.Status) {
		case appointment.StatusDone:
			c.TotalVisits++
			c.TotalSpent += priceOf(ap, price)
			if ap.Date > c.LastVisit {
				c.LastVisit = ap.Date
			}
		case appointment.StatusCancelled:
			c.Cancelled++
		}
	}

	out := make([]Client, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent > out[j].TotalSpent
	})
	return out
}

// priceOf prefers the live price and falls back to the price captured at
// booking time for services that no longer exist.
func priceOf(ap models.Appointment, price PriceLookup) float64 {
	if price != nil {
		if p, ok := price(ap.ServiceID); ok {
			return p
		}
	}
	return ap.ServicePrice
}

// Filter keeps clients whose name or phone contains the search text.
func Filter(clients []Client, search string) []Client {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return clients
	}

	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), search) || strings.Contains(c.Phone, search) {
			out = append(out, c)
		}
	}
	return out
}
