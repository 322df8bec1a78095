package appointment

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// fakeRepo is an in-memory appointment store. The optional hooks let a
// test intercept a single call.
type fakeRepo struct {
	mu   sync.Mutex
	rows []models.Appointment
	seq  int

	ListAtSlotFunc func(ctx context.Context, barberID, date, hm string) ([]models.Appointment, error)
	CreateFunc     func(ctx context.Context, ap *models.Appointment) error
	lastFilter     domain.Filter
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) ListActiveForBarberDate(_ context.Context, barberID, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.rows {
		if ap.BarberID == barberID && ap.Date == date && domain.IsBlocking(ap) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAtSlot(ctx context.Context, barberID, date, hm string) ([]models.Appointment, error) {
	if f.ListAtSlotFunc != nil {
		return f.ListAtSlotFunc(ctx, barberID, date, hm)
	}
	return f.atSlot(barberID, date, hm), nil
}

func (f *fakeRepo) atSlot(barberID, date, hm string) []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.rows {
		if ap.BarberID == barberID && ap.Date == date && ap.Time == hm {
			out = append(out, ap)
		}
	}
	return out
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, ap)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	if ap.ID == "" {
		ap.ID = "ap-" + strconv.Itoa(f.seq)
	}
	f.rows = append(f.rows, *ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ap := range f.rows {
		if ap.ID == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == ap.ID {
			f.rows[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) ListAppointments(_ context.Context, filter domain.Filter) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	var out []models.Appointment
	for _, ap := range f.rows {
		if ap.Date >= filter.FromDate {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByPhone(_ context.Context, phone string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.rows {
		if ap.Phone == phone {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date+out[i].Time < out[j].Date+out[j].Time })
	return out, nil
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// fakeCatalog serves a fixed set of services and barbers.
type fakeCatalog struct {
	catalog.Repository
	services map[string]models.Service
	barbers  map[string]models.Barber
}

func (f *fakeCatalog) GetService(_ context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &s, nil
}

func (f *fakeCatalog) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &b, nil
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{
		services: map[string]models.Service{
			"corte":   {ID: "corte", Name: "CORTE", Price: 50, DurationMin: 30, Active: true},
			"barba":   {ID: "barba", Name: "BARBA", Price: 30, DurationMin: 45, Active: true},
			"broken":  {ID: "broken", Name: "SEM DURAÇÃO", Price: 10, DurationMin: 0, Active: true},
			"retired": {ID: "retired", Name: "LUZES", Price: 90, DurationMin: 60, Active: false},
		},
		barbers: map[string]models.Barber{
			"joao": {
				ID: "joao", Name: "JOÃO", Active: true,
				Schedule: models.Schedule{
					{Weekday: 3, Active: true, Start: "09:00", End: "12:00"},
					{Weekday: 0, Active: false, Start: "09:00", End: "13:00"},
				},
			},
			"pedro": {ID: "pedro", Name: "PEDRO", Active: false},
		},
	}
}

func fixedClock(tz string, at time.Time) shopClock {
	return shopClock{tz: tz, now: func() time.Time { return at }}
}
