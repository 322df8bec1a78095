package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

// Register adds the booking rules to gin's validator engine:
//
//	hhmm   "HH:MM" between 00:00 and 23:59
//	ymd    "YYYY-MM-DD"
//	phone  at least 10 digits
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"hhmm": func(fl validator.FieldLevel) bool {
			return appointment.IsClock(fl.Field().String())
		},
		"ymd": func(fl validator.FieldLevel) bool {
			return timezone.IsDate(fl.Field().String())
		},
		"phone": func(fl validator.FieldLevel) bool {
			return IsPhoneValid(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
