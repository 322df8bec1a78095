package catalog

import (
	"strings"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// NormalizeService upper-cases the display name and checks price/duration.
func NormalizeService(s *models.Service) error {
	s.Name = strings.ToUpper(strings.TrimSpace(s.Name))
	if s.Name == "" {
		return httperr.ErrValidation("name")
	}
	if s.Price < 0 {
		return httperr.ErrValidation("price")
	}
	if s.DurationMin <= 0 {
		return httperr.ErrValidation("duration_min")
	}
	return nil
}

func NormalizeBarber(b *models.Barber) error {
	b.Name = strings.ToUpper(strings.TrimSpace(b.Name))
	b.Specialty = strings.ToUpper(strings.TrimSpace(b.Specialty))
	b.Phone = strings.TrimSpace(b.Phone)
	if b.Name == "" {
		return httperr.ErrValidation("name")
	}
	return nil
}
