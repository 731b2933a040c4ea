package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned (wrapped) whenever projection
// parameters are rejected before any period is computed.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ValidationError names the offending parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfiguration }

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
