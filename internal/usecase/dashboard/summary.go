package dashboard

import (
	"context"
	"time"

	appointment "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

type Summary struct {
	Since            string               `json:"since"`
	ProjectedRevenue float64              `json:"projected_revenue"`
	Confirmed        int                  `json:"confirmed"`
	Cancelled        int                  `json:"cancelled"`
	ActivePauses     []models.Appointment `json:"active_pauses"`
}

// Summarize computes the month-to-date figures. Revenue counts every
// non-cancelled booking at the live service price, falling back to the
// stored one; pauses carry no revenue.
func Summarize(since string, appointments []models.Appointment, prices map[string]float64) Summary {
	s := Summary{Since: since, ActivePauses: []models.Appointment{}}

	for _, ap := range appointments {
		isPause := appointment.Source(ap.Source) == appointment.SourceSystemBlock

		switch {
		case appointment.Status(ap.Status) == appointment.StatusCancelled:
			s.Cancelled++
		case isPause:
			s.ActivePauses = append(s.ActivePauses, ap)
		default:
			s.Confirmed++
			if p, ok := prices[ap.ServiceID]; ok {
				s.ProjectedRevenue += p
			} else {
				s.ProjectedRevenue += ap.ServicePrice
			}
		}
	}
	return s
}

type GetSummary struct {
	repo    appointment.Repository
	catalog catalog.Repository
	now     func() time.Time
}

func NewGetSummary(repo appointment.Repository, catalog catalog.Repository, tz string) *GetSummary {
	return &GetSummary{
		repo:    repo,
		catalog: catalog,
		now:     func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *GetSummary) Execute(ctx context.Context) (*Summary, error) {
	since := timezone.FirstOfMonth(uc.now())

	list, err := uc.repo.ListAppointments(ctx, appointment.Filter{FromDate: since})
	if err != nil {
		return nil, err
	}

	services, err := uc.catalog.ListServices(ctx, false)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(services))
	for _, svc := range services {
		prices[svc.ID] = svc.Price
	}

	s := Summarize(since, list, prices)
	return &s, nil
}
