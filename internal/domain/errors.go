package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an article does not exist or is not
	// visible on the requested read path.
	ErrNotFound = errors.New("article not found")

	// ErrEmptyUpdate is returned when an update payload carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrMissingRequiredField is wrapped by validation failures on creation.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidParameter is wrapped by validation failures on request parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// NewValidationError creates a ValidationError wrapping the given cause.
func NewValidationError(field, reason string, cause error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: cause}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err belongs to the validation class of
// failures (bad request parameters, missing fields, empty update).
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrEmptyUpdate) ||
		errors.Is(err, ErrMissingRequiredField) ||
		errors.Is(err, ErrInvalidParameter)
}
