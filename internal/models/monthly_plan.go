package models

import (
	"time"

	"gorm.io/gorm"
)

type MonthlyPlan struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Phone      string `gorm:"size:20" json:"phone"`

	BarberID    string `gorm:"size:36" json:"barber_id"`
	BarberName  string `gorm:"size:100" json:"barber_name"`
	ServiceID   string `gorm:"size:36" json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`

	// Weekday follows time.Weekday: 0 = Sunday .. 6 = Saturday.
	Weekday   int    `json:"weekday"`
	Time      string `gorm:"size:5" json:"time"`
	Active    bool   `gorm:"default:true;index" json:"active"`
	StartDate string `gorm:"size:10" json:"start_date"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func (MonthlyPlan) TableName() string {
	return "monthly_plans"
}

func (p *MonthlyPlan) BeforeCreate(*gorm.DB) error {
	p.ID = newID(p.ID)
	return nil
}
