package catalog

import (
	"context"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type ServiceInput struct {
	Name        string
	Price       float64
	DurationMin int
}

// Services groups the service catalog operations.
type Services struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewServices(repo domain.Repository, audit *audit.Dispatcher) *Services {
	return &Services{repo: repo, audit: audit}
}

// List returns active services for the public, all of them for admins.
func (uc *Services) List(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, onlyActive)
}

func (uc *Services) Create(ctx context.Context, userID string, in ServiceInput) (*models.Service, error) {
	s := &models.Service{
		Name:        in.Name,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Active:      true,
	}
	if err := domain.NormalizeService(s); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
	})
	return s, nil
}

func (uc *Services) SetActive(ctx context.Context, userID, id string, active bool) (*models.Service, error) {
	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Active = active
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_toggled",
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]bool{"active": active},
	})
	return s, nil
}

// Delete removes the service. Past appointments keep the denormalized
// name and price.
func (uc *Services) Delete(ctx context.Context, userID, id string) error {
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})
	return nil
}
