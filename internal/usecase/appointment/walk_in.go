package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

type WalkInInput struct {
	ServiceID  string
	BarberID   string
	ClientName string
}

// RegisterWalkIn records a service already delivered at the counter. It
// is stamped "now" and skips the slot check: the chair was free.
type RegisterWalkIn struct {
	repo    domain.Repository
	catalog catalog.Repository
	audit   *audit.Dispatcher
	clock   shopClock
}

func NewRegisterWalkIn(
	repo domain.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
	tz string,
) *RegisterWalkIn {
	return &RegisterWalkIn{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
		clock:   newShopClock(tz),
	}
}

func (uc *RegisterWalkIn) Execute(
	ctx context.Context,
	userID string,
	in WalkInInput,
) (*models.Appointment, error) {

	if in.ServiceID == "" {
		return nil, httperr.ErrValidation("service_id")
	}
	if in.BarberID == "" {
		return nil, httperr.ErrValidation("barber_id")
	}

	service, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		name = domain.WalkInClientName
	}

	now := uc.clock.now()
	ap := &models.Appointment{
		ClientName:   name,
		Phone:        models.PhoneNotAvailable,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		BarberID:     barber.ID,
		BarberName:   barber.Name,
		Date:         now.Format(timezone.DateLayout),
		Time:         now.Format(timezone.ClockLayout),
		Status:       string(domain.StatusDone),
		Source:       string(domain.SourceWalkIn),
		CreatedAt:    now,
		CompletedAt:  &now,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "walk_in_registered",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
