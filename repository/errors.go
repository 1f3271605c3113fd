// Package repository holds the entity store: interfaces over the persisted
// collections plus their GORM and in-memory implementations. The error values
// here are shared across repositories and services so that controllers can
// translate them into HTTP responses in one place.
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced booking or technician id does
// not resolve. Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an atomic status update loses a race with a
// concurrent writer. The caller should re-fetch the booking before retrying.
// Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflicting concurrent update")

// ValidationError reports a rejected input field. The failed operation leaves
// the store unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
