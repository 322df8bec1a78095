package appointment

import (
	"context"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/validators"
)

// CancelOwn lets a client cancel a booking found through the phone
// lookup. The phone must match the appointment's.
type CancelOwn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock shopClock
}

func NewCancelOwn(repo domain.Repository, audit *audit.Dispatcher, tz string) *CancelOwn {
	return &CancelOwn{repo: repo, audit: audit, clock: newShopClock(tz)}
}

func (uc *CancelOwn) Execute(
	ctx context.Context,
	appointmentID string,
	phone string,
) (*models.Appointment, error) {

	digits := validators.PhoneDigits(phone)
	if len(digits) < validators.MinPhoneDigits {
		return nil, httperr.ErrValidation("phone")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.Phone != digits {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := domain.Cancel(ap, uc.clock.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled_by_client",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
