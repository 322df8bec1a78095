package plan

import (
	"context"

	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type Repository interface {
	// CreatePlanWithAppointments writes the plan and its occurrences
	// atomically: either every row lands or none does.
	CreatePlanWithAppointments(
		ctx context.Context,
		p *models.MonthlyPlan,
		occurrences []models.Appointment,
	) error

	GetPlan(ctx context.Context, id string) (*models.MonthlyPlan, error)
	UpdatePlan(ctx context.Context, p *models.MonthlyPlan) error
	ListActivePlans(ctx context.Context) ([]models.MonthlyPlan, error)
	ListPlanAppointments(ctx context.Context, planID string) ([]models.Appointment, error)
}
