package models

import (
	"github.com/google/uuid"
)

// newID returns a fresh document id when the caller did not set one.
func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
