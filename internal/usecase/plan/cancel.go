package plan

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	appointment "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/plan"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

type CancelPlanResult struct {
	Plan *models.MonthlyPlan `json:"plan"`
	// OpenAppointments are occurrences still pending or scheduled; they
	// keep their slots until someone cancels them by hand.
	OpenAppointments []models.Appointment `json:"open_appointments"`
}

type CancelPlan struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelPlan(repo domain.Repository, audit *audit.Dispatcher, tz string) *CancelPlan {
	return &CancelPlan{
		repo:  repo,
		audit: audit,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

// Execute deactivates the plan only.
func (uc *CancelPlan) Execute(
	ctx context.Context,
	userID string,
	planID string,
) (*CancelPlanResult, error) {

	plan, err := uc.repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.Active {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	now := uc.now()
	plan.Active = false
	plan.CancelledAt = &now

	if err := uc.repo.UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}

	linked, err := uc.repo.ListPlanAppointments(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	open := make([]models.Appointment, 0, len(linked))
	for _, ap := range linked {
		if appointment.CanComplete(appointment.Status(ap.Status)) == nil {
			open = append(open, ap)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "plan_cancelled",
		Entity:   "monthly_plan",
		EntityID: &plan.ID,
		Metadata: map[string]int{"open_appointments": len(open)},
	})

	return &CancelPlanResult{Plan: plan, OpenAppointments: open}, nil
}
