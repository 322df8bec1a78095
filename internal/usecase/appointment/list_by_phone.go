package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	"github.com/BruksfildServices01/cutcorp-booking/internal/validators"
)

type ListByPhone struct {
	repo domain.Repository
}

func NewListByPhone(repo domain.Repository) *ListByPhone {
	return &ListByPhone{repo: repo}
}

func (uc *ListByPhone) Execute(ctx context.Context, phone string) ([]models.Appointment, error) {
	digits := validators.PhoneDigits(phone)
	if len(digits) < validators.MinPhoneDigits {
		return nil, httperr.ErrValidation("phone")
	}
	return uc.repo.ListByPhone(ctx, digits)
}
