package plan

import (
	"context"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/plan"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type ListActivePlans struct {
	repo domain.Repository
}

func NewListActivePlans(repo domain.Repository) *ListActivePlans {
	return &ListActivePlans{repo: repo}
}

func (uc *ListActivePlans) Execute(ctx context.Context) ([]models.MonthlyPlan, error) {
	return uc.repo.ListActivePlans(ctx)
}
