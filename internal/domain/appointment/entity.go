package appointment

import (
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDone)
	ap.CompletedAt = &now
	return nil
}

// IsBlocking reports whether the appointment still holds its slot.
func IsBlocking(ap models.Appointment) bool {
	return Status(ap.Status) != StatusCancelled
}
