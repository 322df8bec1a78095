package repository

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/plan"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// ======================================================
// Appointments
// ======================================================

// CachedAppointmentRepository serves the per barber/day commitments
// through the cache. ListAtSlot always reads the store: the booking guard
// must see the latest rows.
type CachedAppointmentRepository struct {
	domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

var _ domain.Repository = (*CachedAppointmentRepository)(nil)

func NewCachedAppointmentRepository(
	inner domain.Repository,
	c cache.Cache,
	ttl time.Duration,
) *CachedAppointmentRepository {
	return &CachedAppointmentRepository{Repository: inner, cache: c, ttl: ttl}
}

func (r *CachedAppointmentRepository) ListActiveForBarberDate(
	ctx context.Context,
	barberID string,
	date string,
) ([]models.Appointment, error) {
	return cache.Fetch(ctx, r.cache, cache.SlotsKey(barberID, date), r.ttl,
		func(ctx context.Context) ([]models.Appointment, error) {
			return r.Repository.ListActiveForBarberDate(ctx, barberID, date)
		})
}

func (r *CachedAppointmentRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.Repository.CreateAppointment(ctx, ap); err != nil {
		return err
	}
	r.invalidate(ctx, ap)
	return nil
}

func (r *CachedAppointmentRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.Repository.UpdateAppointment(ctx, ap); err != nil {
		return err
	}
	r.invalidate(ctx, ap)
	return nil
}

// invalidate drops the day's cached rows. A Fetch that loaded before the
// write can still store its stale result after this delete; it then lives
// until the TTL. Availability may show a taken slot for that long, but the
// booking guard reads ListAtSlot from the store and still refuses it.
func (r *CachedAppointmentRepository) invalidate(ctx context.Context, ap *models.Appointment) {
	_ = r.cache.Delete(ctx, cache.SlotsKey(ap.BarberID, ap.Date))
}

// ======================================================
// Catalog
// ======================================================

type CachedCatalogRepository struct {
	catalog.Repository
	cache cache.Cache
	ttl   time.Duration
}

var _ catalog.Repository = (*CachedCatalogRepository)(nil)

func NewCachedCatalogRepository(
	inner catalog.Repository,
	c cache.Cache,
	ttl time.Duration,
) *CachedCatalogRepository {
	return &CachedCatalogRepository{Repository: inner, cache: c, ttl: ttl}
}

// ListServices caches the public (active-only) listing; admin reads go
// straight to the store.
func (r *CachedCatalogRepository) ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	if !onlyActive {
		return r.Repository.ListServices(ctx, false)
	}
	return cache.Fetch(ctx, r.cache, cache.ServicesKey(), r.ttl,
		func(ctx context.Context) ([]models.Service, error) {
			return r.Repository.ListServices(ctx, true)
		})
}

func (r *CachedCatalogRepository) ListBarbers(ctx context.Context, onlyActive bool) ([]models.Barber, error) {
	if !onlyActive {
		return r.Repository.ListBarbers(ctx, false)
	}
	return cache.Fetch(ctx, r.cache, cache.BarbersKey(), r.ttl,
		func(ctx context.Context) ([]models.Barber, error) {
			return r.Repository.ListBarbers(ctx, true)
		})
}

func (r *CachedCatalogRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.services(ctx, r.Repository.CreateService(ctx, s))
}

func (r *CachedCatalogRepository) UpdateService(ctx context.Context, s *models.Service) error {
	return r.services(ctx, r.Repository.UpdateService(ctx, s))
}

func (r *CachedCatalogRepository) DeleteService(ctx context.Context, id string) error {
	return r.services(ctx, r.Repository.DeleteService(ctx, id))
}

func (r *CachedCatalogRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	return r.barbers(ctx, r.Repository.CreateBarber(ctx, b))
}

func (r *CachedCatalogRepository) UpdateBarber(ctx context.Context, b *models.Barber) error {
	return r.barbers(ctx, r.Repository.UpdateBarber(ctx, b))
}

func (r *CachedCatalogRepository) DeleteBarber(ctx context.Context, id string) error {
	return r.barbers(ctx, r.Repository.DeleteBarber(ctx, id))
}

func (r *CachedCatalogRepository) services(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, cache.ServicesKey())
	return nil
}

func (r *CachedCatalogRepository) barbers(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, cache.BarbersKey())
	return nil
}

// ======================================================
// Plans
// ======================================================

// CachedPlanRepository drops the cached days a new plan writes into.
type CachedPlanRepository struct {
	plan.Repository
	cache cache.Cache
}

var _ plan.Repository = (*CachedPlanRepository)(nil)

func NewCachedPlanRepository(inner plan.Repository, c cache.Cache) *CachedPlanRepository {
	return &CachedPlanRepository{Repository: inner, cache: c}
}

func (r *CachedPlanRepository) CreatePlanWithAppointments(
	ctx context.Context,
	p *models.MonthlyPlan,
	occurrences []models.Appointment,
) error {
	if err := r.Repository.CreatePlanWithAppointments(ctx, p, occurrences); err != nil {
		return err
	}

	keys := make([]string, 0, len(occurrences))
	for _, ap := range occurrences {
		keys = append(keys, cache.SlotsKey(ap.BarberID, ap.Date))
	}
	_ = r.cache.Delete(ctx, keys...)
	return nil
}
