package auth

import (
	"context"

	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
}
