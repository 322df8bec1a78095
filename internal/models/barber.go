package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ScheduleDay is one weekday record of a barber's working week.
// Weekday follows time.Weekday: 0 = Sunday .. 6 = Saturday.
type ScheduleDay struct {
	Weekday int    `json:"weekday"`
	Active  bool   `json:"active"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type Schedule []ScheduleDay

func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Schedule) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("schedule: unsupported type %T", value)
	}

	if len(raw) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(raw, s)
}

func (Schedule) GormDataType() string {
	return "jsonb"
}

type Barber struct {
	ID        string   `gorm:"primaryKey;size:36" json:"id"`
	Name      string   `gorm:"size:100;not null" json:"name"`
	Specialty string   `gorm:"size:100" json:"specialty"`
	Phone     string   `gorm:"size:20" json:"phone"`
	Active    bool     `gorm:"default:true" json:"active"`
	PhotoURL  string   `gorm:"size:500" json:"photo_url,omitempty"`
	Schedule  Schedule `json:"schedule,omitempty"`

	LunchStart string `gorm:"size:5" json:"lunch_start,omitempty"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(*gorm.DB) error {
	b.ID = newID(b.ID)
	return nil
}
