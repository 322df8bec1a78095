package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

type PauseInput struct {
	BarberID string
	Date     string
	Start    string
	End      string
}

// CreatePause blocks [Start, End) on a barber's day with a system-block
// row. Existing bookings inside the range are left untouched.
type CreatePause struct {
	repo    domain.Repository
	catalog catalog.Repository
	audit   *audit.Dispatcher
	clock   shopClock
}

func NewCreatePause(
	repo domain.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreatePause {
	return &CreatePause{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
		clock:   newShopClock(tz),
	}
}

func (uc *CreatePause) Execute(
	ctx context.Context,
	userID string,
	in PauseInput,
) (*models.Appointment, error) {

	if !timezone.IsDate(in.Date) {
		return nil, httperr.ErrValidation("date")
	}
	start, err := domain.TimeToMinutes(in.Start)
	if err != nil {
		return nil, httperr.ErrValidation("start")
	}
	end, err := domain.TimeToMinutes(in.End)
	if err != nil || end <= start {
		return nil, httperr.ErrValidation("end")
	}

	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientName:  fmt.Sprintf("PAUSA: %s às %s", in.Start, in.End),
		Phone:       models.PhoneNotAvailable,
		ServiceID:   domain.PauseServiceID,
		ServiceName: domain.PauseServiceName,
		BarberID:    barber.ID,
		BarberName:  barber.Name,
		Date:        in.Date,
		Time:        in.Start,
		EndTime:     in.End,
		Status:      string(domain.StatusDone),
		Source:      string(domain.SourceSystemBlock),
		CreatedAt:   uc.clock.now(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "pause_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"start": in.Start, "end": in.End},
	})

	return ap, nil
}

// ReleasePause cancels a system-block row, freeing its slots. Any other
// source is refused so the pause route cannot cancel a booking.
type ReleasePause struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock shopClock
}

func NewReleasePause(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ReleasePause {
	return &ReleasePause{
		repo:  repo,
		audit: audit,
		clock: newShopClock(tz),
	}
}

func (uc *ReleasePause) Execute(
	ctx context.Context,
	userID string,
	pauseID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, pauseID)
	if err != nil {
		return nil, err
	}

	if domain.Source(ap.Source) != domain.SourceSystemBlock {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	if err := domain.Cancel(ap, uc.clock.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "pause_released",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
