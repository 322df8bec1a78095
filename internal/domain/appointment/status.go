package appointment

import "github.com/BruksfildServices01/cutcorp-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Appointment Source
// ===============================

type Source string

const (
	SourceClientBooking Source = "client-booking"
	SourceWalkIn        Source = "walk-in"
	SourceSystemBlock   Source = "system-block"
	SourceRecurringPlan Source = "recurring-plan"
)

// Placeholders written for pauses.
const (
	PauseServiceID   = "pause-block"
	PauseServiceName = "HORÁRIO BLOQUEADO"
	WalkInClientName = "Cliente Avulso"
)

// ===============================
// Validations
// ===============================

// CanCancel: anything not yet cancelled can be cancelled, pauses included.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete: only open appointments can be marked as done.
func CanComplete(current Status) error {
	if current != StatusScheduled && current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
