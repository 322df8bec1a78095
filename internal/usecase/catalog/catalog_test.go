package catalog

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type memCatalog struct {
	services map[string]models.Service
	barbers  map[string]models.Barber
}

var _ domain.Repository = (*memCatalog)(nil)

func newMem() *memCatalog {
	return &memCatalog{services: map[string]models.Service{}, barbers: map[string]models.Barber{}}
}

func (m *memCatalog) ListServices(_ context.Context, onlyActive bool) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		if !onlyActive || s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memCatalog) GetService(_ context.Context, id string) (*models.Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &s, nil
}

func (m *memCatalog) CreateService(_ context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = "svc-" + strings.ToLower(s.Name)
	}
	m.services[s.ID] = *s
	return nil
}

func (m *memCatalog) UpdateService(_ context.Context, s *models.Service) error {
	m.services[s.ID] = *s
	return nil
}

func (m *memCatalog) DeleteService(_ context.Context, id string) error {
	if _, ok := m.services[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	delete(m.services, id)
	return nil
}

func (m *memCatalog) ListBarbers(_ context.Context, onlyActive bool) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range m.barbers {
		if !onlyActive || b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memCatalog) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	b, ok := m.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &b, nil
}

func (m *memCatalog) CreateBarber(_ context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = "barber-" + strings.ToLower(b.Name)
	}
	m.barbers[b.ID] = *b
	return nil
}

func (m *memCatalog) UpdateBarber(_ context.Context, b *models.Barber) error {
	m.barbers[b.ID] = *b
	return nil
}

func (m *memCatalog) DeleteBarber(_ context.Context, id string) error {
	delete(m.barbers, id)
	return nil
}

type fakeUploader struct {
	key, contentType string
	size             int
}

func (f *fakeUploader) Upload(_ context.Context, key, contentType string, body []byte) (string, error) {
	f.key, f.contentType, f.size = key, contentType, len(body)
	return "https://cdn.example.com/" + key, nil
}

func TestServices_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMem()
	uc := NewServices(repo, nil)

	s, err := uc.Create(ctx, "admin", ServiceInput{Name: "corte", Price: 45, DurationMin: 30})
	require.NoError(t, err)
	assert.Equal(t, "CORTE", s.Name)
	assert.True(t, s.Active)

	_, err = uc.SetActive(ctx, "admin", s.ID, false)
	require.NoError(t, err)

	public, _ := uc.List(ctx, true)
	assert.Empty(t, public)
	all, _ := uc.List(ctx, false)
	assert.Len(t, all, 1)

	require.NoError(t, uc.Delete(ctx, "admin", s.ID))
	assert.True(t, httperr.IsBusiness(uc.Delete(ctx, "admin", s.ID), httperr.CodeNotFound))

	_, err = uc.Create(ctx, "admin", ServiceInput{Name: "x", Price: 10, DurationMin: 0})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestBarbers_CreateUsesTemplateWeek(t *testing.T) {
	uc := NewBarbers(newMem(), nil, nil)

	b, err := uc.Create(context.Background(), "admin", BarberInput{Name: "joão", Specialty: "degradê"})
	require.NoError(t, err)
	assert.Equal(t, "JOÃO", b.Name)
	assert.Equal(t, "DEGRADÊ", b.Specialty)
	assert.Len(t, b.Schedule, 7)
	assert.False(t, b.Schedule[0].Active)
}

func TestBarbers_ScheduleAndLunch(t *testing.T) {
	ctx := context.Background()
	repo := newMem()
	uc := NewBarbers(repo, nil, nil)
	b, _ := uc.Create(ctx, "admin", BarberInput{Name: "joão"})

	week := models.Schedule{{Weekday: 2, Active: true, Start: "10:00", End: "18:00"}}
	got, err := uc.SetSchedule(ctx, "admin", b.ID, week)
	require.NoError(t, err)
	assert.Equal(t, week, got.Schedule)

	_, err = uc.SetSchedule(ctx, "admin", b.ID, models.Schedule{{Weekday: 9}})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	assert.Equal(t, week, repo.barbers[b.ID].Schedule)

	got, err = uc.SetLunch(ctx, "admin", b.ID, "12:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, "12:00", got.LunchStart)

	_, err = uc.SetLunch(ctx, "admin", b.ID, "13:00", "12:00")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

	got, err = uc.SetLunch(ctx, "admin", b.ID, "", "")
	require.NoError(t, err)
	assert.Empty(t, got.LunchStart)
}

func TestBarbers_UploadPhoto(t *testing.T) {
	ctx := context.Background()
	repo := newMem()
	up := &fakeUploader{}
	uc := NewBarbers(repo, nil, up)
	b, _ := uc.Create(ctx, "admin", BarberInput{Name: "joão"})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 800, 600))))

	got, err := uc.UploadPhoto(ctx, "admin", b.ID, buf.Bytes())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.key, "barbers/"))
	assert.True(t, strings.HasSuffix(up.key, ".webp"))
	assert.Equal(t, "image/webp", up.contentType)
	assert.Equal(t, "https://cdn.example.com/"+up.key, got.PhotoURL)
	assert.Equal(t, got.PhotoURL, repo.barbers[b.ID].PhotoURL)

	_, err = uc.UploadPhoto(ctx, "admin", b.ID, []byte("nope"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidImage))
}

func TestBarbers_UploadsDisabled(t *testing.T) {
	uc := NewBarbers(newMem(), nil, nil)

	_, err := uc.UploadPhoto(context.Background(), "admin", "any", []byte("x"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUploadsDisabled))
}
