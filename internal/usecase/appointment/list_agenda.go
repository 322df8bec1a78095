package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

type AgendaFilter struct {
	Search   string
	Status   string
	BarberID string
}

// ListAgenda is the admin view: everything from the first day of the
// current month on, ordered by date and time.
type ListAgenda struct {
	repo  domain.Repository
	clock shopClock
}

func NewListAgenda(repo domain.Repository, tz string) *ListAgenda {
	return &ListAgenda{repo: repo, clock: newShopClock(tz)}
}

func (uc *ListAgenda) Execute(
	ctx context.Context,
	f AgendaFilter,
) ([]models.Appointment, error) {

	if f.Status != "" && !domain.Status(f.Status).Valid() {
		return nil, httperr.ErrValidation("status")
	}

	return uc.repo.ListAppointments(ctx, domain.Filter{
		FromDate: timezone.FirstOfMonth(uc.clock.now()),
		BarberID: f.BarberID,
		Status:   f.Status,
		Search:   f.Search,
	})
}
