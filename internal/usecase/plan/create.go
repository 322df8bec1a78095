package plan

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	appointment "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/plan"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
	"github.com/BruksfildServices01/cutcorp-booking/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreatePlanInput struct {
	ClientName string
	Phone      string
	BarberID   string
	ServiceID  string
	Weekday    int
	Time       string
}

type CreatePlanResult struct {
	Plan         *models.MonthlyPlan  `json:"plan"`
	Appointments []models.Appointment `json:"appointments"`
}

// ======================================================
// USE CASE
// ======================================================

// CreatePlan signs a client up for a fixed weekly slot and materializes
// the next four occurrences. Occurrences skip the booking conflict check:
// the admin is placing a standing reservation.
type CreatePlan struct {
	repo    domain.Repository
	catalog catalog.Repository
	audit   *audit.Dispatcher
	tz      string
	now     func() time.Time
}

func NewCreatePlan(
	repo domain.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreatePlan {
	return &CreatePlan{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
		tz:      tz,
		now:     func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *CreatePlan) Execute(
	ctx context.Context,
	userID string,
	in CreatePlanInput,
) (*CreatePlanResult, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, httperr.ErrValidation("client_name")
	}
	phone := validators.PhoneDigits(in.Phone)
	if len(phone) < validators.MinPhoneDigits {
		return nil, httperr.ErrValidation("phone")
	}
	if in.Weekday < 0 || in.Weekday > 6 {
		return nil, httperr.ErrValidation("weekday")
	}
	if !appointment.IsClock(in.Time) {
		return nil, httperr.ErrValidation("time")
	}

	service, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Datas das 4 semanas
	// --------------------------------------------------
	now := uc.now()
	dates := domain.OccurrenceDates(now, time.Weekday(in.Weekday))

	plan := &models.MonthlyPlan{
		ClientName:  name,
		Phone:       phone,
		BarberID:    barber.ID,
		BarberName:  barber.Name,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Weekday:     in.Weekday,
		Time:        in.Time,
		Active:      true,
		StartDate:   dates[0],
		CreatedAt:   now,
	}

	occurrences := make([]models.Appointment, 0, len(dates))
	for _, d := range dates {
		occurrences = append(occurrences, models.Appointment{
			ClientName:   name,
			Phone:        phone,
			ServiceID:    service.ID,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			BarberID:     barber.ID,
			BarberName:   barber.Name,
			Date:         d,
			Time:         in.Time,
			Status:       string(appointment.StatusPending),
			Source:       string(appointment.SourceRecurringPlan),
			CreatedAt:    now,
		})
	}

	// --------------------------------------------------
	// 3️⃣ Gravação atômica
	// --------------------------------------------------
	if err := uc.repo.CreatePlanWithAppointments(ctx, plan, occurrences); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "plan_created",
		Entity:   "monthly_plan",
		EntityID: &plan.ID,
		Metadata: map[string]any{"dates": dates},
	})

	return &CreatePlanResult{Plan: plan, Appointments: occurrences}, nil
}
