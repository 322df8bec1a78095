package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/links"
	"github.com/BruksfildServices01/cutcorp-booking/internal/metrics"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
	"github.com/BruksfildServices01/cutcorp-booking/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookInput struct {
	ClientName string
	Phone      string
	ServiceID  string
	BarberID   string
	Date       string
	Time       string
}

type BookResult struct {
	Appointment *models.Appointment `json:"appointment"`
	Links       links.BookingLinks  `json:"links"`
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment is the public booking flow. The slot check and the
// insert are two separate steps: two clients racing for the same slot
// can both pass the check. The optional unique index on the table is
// what closes that window.
type BookAppointment struct {
	repo    domain.Repository
	catalog catalog.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	shop    links.Shop
	clock   shopClock
}

func NewBookAppointment(
	repo domain.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	shop links.Shop,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
		metrics: m,
		shop:    shop,
		clock:   newShopClock(tz),
	}
}

func validateBooking(in *BookInput) error {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.Phone = validators.PhoneDigits(in.Phone)

	switch {
	case in.ClientName == "":
		return httperr.ErrValidation("client_name")
	case len(in.Phone) < validators.MinPhoneDigits:
		return httperr.ErrValidation("phone")
	case in.ServiceID == "":
		return httperr.ErrValidation("service_id")
	case in.BarberID == "":
		return httperr.ErrValidation("barber_id")
	case !timezone.IsDate(in.Date):
		return httperr.ErrValidation("date")
	case !domain.IsClock(in.Time):
		return httperr.ErrValidation("time")
	}
	return nil
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*BookResult, error) {

	res, err := uc.book(ctx, in)
	uc.metrics.Booking(outcomeOf(err))
	return res, err
}

func (uc *BookAppointment) book(ctx context.Context, in BookInput) (*BookResult, error) {

	// --------------------------------------------------
	// 1️⃣ Validação local
	// --------------------------------------------------
	if err := validateBooking(&in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Serviço e barbeiro
	// --------------------------------------------------
	service, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrValidation("service_id")
	}

	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrValidation("barber_id")
	}

	// --------------------------------------------------
	// 3️⃣ Conflito de horário
	// --------------------------------------------------
	existing, err := uc.repo.ListAtSlot(ctx, barber.ID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	for _, ap := range existing {
		if domain.IsBlocking(ap) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	// --------------------------------------------------
	// 4️⃣ Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName:   in.ClientName,
		Phone:        in.Phone,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		BarberID:     barber.ID,
		BarberName:   barber.Name,
		Date:         in.Date,
		Time:         in.Time,
		Status:       string(domain.InitialStatus()),
		Source:       string(domain.SourceClientBooking),
		CreatedAt:    uc.clock.now(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"barber_id": barber.ID, "date": ap.Date, "time": ap.Time},
	})

	start, _ := time.ParseInLocation(
		timezone.DateLayout+" "+timezone.ClockLayout,
		ap.Date+" "+ap.Time,
		timezone.Location(uc.clock.tz),
	)

	return &BookResult{
		Appointment: ap,
		Links: uc.shop.ForBooking(links.Booking{
			ClientName:  ap.ClientName,
			ServiceName: ap.ServiceName,
			BarberName:  ap.BarberName,
			BarberPhone: barber.Phone,
			Date:        ap.Date,
			Time:        ap.Time,
			Start:       start,
			Duration:    time.Duration(service.DurationMin) * time.Minute,
		}),
	}, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeBooked
	case httperr.IsBusiness(err, httperr.CodeSlotTaken):
		return metrics.OutcomeSlotTaken
	}
	if _, ok := httperr.AsBusiness(err); ok {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeFailed
}
