package appointment

import (
	"context"

	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// Filter narrows the admin agenda listing. Empty fields do not filter.
type Filter struct {
	FromDate string
	BarberID string
	Status   string
	Search   string
}

type Repository interface {
	// -------- Slot engine --------
	ListActiveForBarberDate(
		ctx context.Context,
		barberID string,
		date string,
	) ([]models.Appointment, error)

	// ListAtSlot returns every appointment at the exact slot, any status.
	ListAtSlot(
		ctx context.Context,
		barberID string,
		date string,
		time string,
	) ([]models.Appointment, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointments(
		ctx context.Context,
		filter Filter,
	) ([]models.Appointment, error)

	ListByPhone(
		ctx context.Context,
		phone string,
	) ([]models.Appointment, error)
}
