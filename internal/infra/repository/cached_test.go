package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// fakeAppointments implements only what the decorator touches; any other
// call panics on the nil embedded interface.
type fakeAppointments struct {
	domain.Repository
	listCalls int
	atSlot    int
	rows      []models.Appointment
}

func (f *fakeAppointments) ListActiveForBarberDate(context.Context, string, string) ([]models.Appointment, error) {
	f.listCalls++
	return f.rows, nil
}

func (f *fakeAppointments) ListAtSlot(context.Context, string, string, string) ([]models.Appointment, error) {
	f.atSlot++
	return f.rows, nil
}

func (f *fakeAppointments) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.rows = append(f.rows, *ap)
	return nil
}

func TestCachedAppointments_ReadThroughAndInvalidate(t *testing.T) {
	ctx := context.Background()
	inner := &fakeAppointments{}
	repo := NewCachedAppointmentRepository(inner, cache.NewMemory(), time.Minute)

	_, err := repo.ListActiveForBarberDate(ctx, "b1", "2026-10-14")
	require.NoError(t, err)
	_, err = repo.ListActiveForBarberDate(ctx, "b1", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.listCalls)

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		BarberID: "b1", Date: "2026-10-14", Time: "09:00", Status: "scheduled",
	}))

	list, err := repo.ListActiveForBarberDate(ctx, "b1", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.listCalls)
	assert.Len(t, list, 1)
}

func TestCachedAppointments_SlotCheckIsNeverCached(t *testing.T) {
	ctx := context.Background()
	inner := &fakeAppointments{}
	repo := NewCachedAppointmentRepository(inner, cache.NewMemory(), time.Minute)

	_, _ = repo.ListAtSlot(ctx, "b1", "2026-10-14", "09:00")
	_, _ = repo.ListAtSlot(ctx, "b1", "2026-10-14", "09:00")
	assert.Equal(t, 2, inner.atSlot)
}

type fakeCatalog struct {
	catalog.Repository
	listCalls int
	services  []models.Service
}

func (f *fakeCatalog) ListServices(_ context.Context, onlyActive bool) ([]models.Service, error) {
	f.listCalls++
	return f.services, nil
}

func (f *fakeCatalog) CreateService(_ context.Context, s *models.Service) error {
	f.services = append(f.services, *s)
	return nil
}

func TestCachedCatalog_ServicesInvalidatedOnWrite(t *testing.T) {
	ctx := context.Background()
	inner := &fakeCatalog{}
	repo := NewCachedCatalogRepository(inner, cache.NewMemory(), time.Minute)

	_, _ = repo.ListServices(ctx, true)
	_, _ = repo.ListServices(ctx, true)
	assert.Equal(t, 1, inner.listCalls)

	// admin listing bypasses the cache
	_, _ = repo.ListServices(ctx, false)
	assert.Equal(t, 2, inner.listCalls)

	require.NoError(t, repo.CreateService(ctx, &models.Service{ID: "s1", Name: "CORTE"}))

	list, _ := repo.ListServices(ctx, true)
	assert.Equal(t, 3, inner.listCalls)
	assert.Len(t, list, 1)
}
