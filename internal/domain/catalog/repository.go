package catalog

import (
	"context"

	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id string) error

	// -------- Barbers --------
	ListBarbers(ctx context.Context, onlyActive bool) ([]models.Barber, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber) error
	UpdateBarber(ctx context.Context, b *models.Barber) error
	DeleteBarber(ctx context.Context, id string) error
}
