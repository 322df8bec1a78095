package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

type AvailabilityInput struct {
	BarberID  string
	ServiceID string
	Date      string
}

type Availability struct {
	Date   string   `json:"date"`
	DayOff bool     `json:"day_off"`
	Slots  []string `json:"slots"`
}

// ResolveExcludedSlots reads the barber's live commitments for the day and
// flattens them into start times that must not be offered.
func ResolveExcludedSlots(
	ctx context.Context,
	repo domain.Repository,
	barberID string,
	date string,
) (map[string]struct{}, error) {

	appointments, err := repo.ListActiveForBarberDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	return domain.ExcludedStartTimes(appointments)
}

type GetAvailability struct {
	repo    domain.Repository
	catalog catalog.Repository
	tz      string
}

func NewGetAvailability(
	repo domain.Repository,
	catalog catalog.Repository,
	tz string,
) *GetAvailability {
	return &GetAvailability{repo: repo, catalog: catalog, tz: tz}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*Availability, error) {

	// --------------------------------------------------
	// 1️⃣ Entrada
	// --------------------------------------------------
	day, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("date")
	}

	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrValidation("barber_id")
	}

	service, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrValidation("service_id")
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrValidation("duration_min")
	}

	// --------------------------------------------------
	// 2️⃣ Expediente do dia
	// --------------------------------------------------
	window := domain.WindowFor(barber, day)
	if !window.Active {
		return &Availability{Date: in.Date, DayOff: true, Slots: []string{}}, nil
	}

	// --------------------------------------------------
	// 3️⃣ Horários ocupados + bloqueios
	// --------------------------------------------------
	excluded, err := ResolveExcludedSlots(ctx, uc.repo, barber.ID, in.Date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Geração
	// --------------------------------------------------
	slots, err := domain.GenerateSlots(domain.SlotConfig{
		Open:        window.Open,
		Close:       window.Close,
		DurationMin: service.DurationMin,
		Lunch:       window.Lunch,
		Excluded:    excluded,
	})
	if err != nil {
		return nil, err
	}

	return &Availability{Date: in.Date, Slots: slots}, nil
}
