package httperr

import "errors"

// Business error codes shared by use cases and handlers.
const (
	CodeSlotTaken        = "slot_taken"
	CodeValidation       = "validation_failed"
	CodeSecurityDenied   = "security_denied"
	CodeNotFound         = "not_found"
	CodeInvalidState     = "invalid_state"
	CodeUploadsDisabled  = "uploads_disabled"
	CodePersistence      = "persistence_failure"
	CodeInvalidImage     = "invalid_image"
	CodeInvalidToken     = "invalid_token"
	CodeInvalidLogin     = "invalid_credentials"
	CodeConfirmationText = "invalid_confirmation"
)

type BusinessError struct {
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrValidation reports a missing or malformed input field.
func ErrValidation(field string) error {
	return BusinessError{Code: CodeValidation, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError, if it is one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
