package models

import (
	"time"

	"gorm.io/gorm"
)

// PhoneNotAvailable marks walk-ins and system blocks, which carry no phone.
const PhoneNotAvailable = "N/A"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Phone      string `gorm:"size:20;index" json:"phone"`

	ServiceID    string  `gorm:"size:36" json:"service_id"`
	ServiceName  string  `gorm:"size:100" json:"service_name"`
	ServicePrice float64 `json:"service_price"`

	BarberID   string `gorm:"size:36;index:idx_appointments_barber_date" json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	Date    string `gorm:"size:10;index:idx_appointments_barber_date" json:"date"`
	Time    string `gorm:"size:5" json:"time"`
	EndTime string `gorm:"size:5" json:"end_time,omitempty"`

	Status string  `gorm:"size:20;default:'scheduled'" json:"status"`
	Source string  `gorm:"size:20" json:"source"`
	PlanID *string `gorm:"size:36;index" json:"plan_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	a.ID = newID(a.ID)
	return nil
}
