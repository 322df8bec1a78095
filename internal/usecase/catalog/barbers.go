package catalog

import (
	"bytes"
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	appointment "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/imaging"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/storage"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type BarberInput struct {
	Name      string
	Specialty string
	Phone     string
}

// Barbers groups the barber catalog operations. uploader may be nil when
// blob storage is not configured.
type Barbers struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	uploader storage.Uploader
}

func NewBarbers(repo domain.Repository, audit *audit.Dispatcher, uploader storage.Uploader) *Barbers {
	return &Barbers{repo: repo, audit: audit, uploader: uploader}
}

func (uc *Barbers) List(ctx context.Context, onlyActive bool) ([]models.Barber, error) {
	return uc.repo.ListBarbers(ctx, onlyActive)
}

func (uc *Barbers) Get(ctx context.Context, id string) (*models.Barber, error) {
	return uc.repo.GetBarber(ctx, id)
}

func (uc *Barbers) Create(ctx context.Context, userID string, in BarberInput) (*models.Barber, error) {
	b := &models.Barber{
		Name:      in.Name,
		Specialty: in.Specialty,
		Phone:     in.Phone,
		Active:    true,
		Schedule:  appointment.DefaultSchedule(),
	}
	if err := domain.NormalizeBarber(b); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBarber(ctx, b); err != nil {
		return nil, err
	}

	uc.dispatch(userID, "barber_created", b.ID, nil)
	return b, nil
}

func (uc *Barbers) SetActive(ctx context.Context, userID, id string, active bool) (*models.Barber, error) {
	return uc.update(ctx, userID, id, "barber_toggled", func(b *models.Barber) error {
		b.Active = active
		return nil
	})
}

// SetSchedule replaces the whole week. Only the weekdays given are kept;
// the rest fall back to the default template on read.
func (uc *Barbers) SetSchedule(ctx context.Context, userID, id string, schedule models.Schedule) (*models.Barber, error) {
	if err := appointment.ValidateSchedule(schedule); err != nil {
		return nil, err
	}
	return uc.update(ctx, userID, id, "barber_schedule_updated", func(b *models.Barber) error {
		b.Schedule = schedule
		return nil
	})
}

// SetLunch sets or, with both values empty, clears the lunch break.
func (uc *Barbers) SetLunch(ctx context.Context, userID, id, start, end string) (*models.Barber, error) {
	if start != "" || end != "" {
		s, err := appointment.TimeToMinutes(start)
		if err != nil {
			return nil, httperr.ErrValidation("lunch_start")
		}
		e, err := appointment.TimeToMinutes(end)
		if err != nil || e <= s {
			return nil, httperr.ErrValidation("lunch_end")
		}
	}
	return uc.update(ctx, userID, id, "barber_lunch_updated", func(b *models.Barber) error {
		b.LunchStart, b.LunchEnd = start, end
		return nil
	})
}

func (uc *Barbers) Delete(ctx context.Context, userID, id string) error {
	if err := uc.repo.DeleteBarber(ctx, id); err != nil {
		return err
	}
	uc.dispatch(userID, "barber_deleted", id, nil)
	return nil
}

// UploadPhoto transcodes the image to a 512px WebP, stores it and saves
// the public URL on the barber.
func (uc *Barbers) UploadPhoto(ctx context.Context, userID, id string, img []byte) (*models.Barber, error) {
	if uc.uploader == nil {
		return nil, httperr.ErrBusiness(httperr.CodeUploadsDisabled)
	}

	barber, err := uc.repo.GetBarber(ctx, id)
	if err != nil {
		return nil, err
	}

	webp, err := imaging.ToWebP(bytes.NewReader(img))
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}

	url, err := uc.uploader.Upload(ctx, "barbers/"+uuid.NewString()+".webp", imaging.ContentType, webp)
	if err != nil {
		return nil, err
	}

	barber.PhotoURL = url
	if err := uc.repo.UpdateBarber(ctx, barber); err != nil {
		return nil, err
	}

	uc.dispatch(userID, "barber_photo_updated", barber.ID, map[string]string{"url": url})
	return barber, nil
}

func (uc *Barbers) update(
	ctx context.Context,
	userID, id, action string,
	mutate func(b *models.Barber) error,
) (*models.Barber, error) {

	b, err := uc.repo.GetBarber(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(b); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBarber(ctx, b); err != nil {
		return nil, err
	}

	uc.dispatch(userID, action, b.ID, nil)
	return b, nil
}

func (uc *Barbers) dispatch(userID, action, id string, meta any) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "barber",
		EntityID: &id,
		Metadata: meta,
	})
}
