package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports a missing required configuration value.
	ErrConfiguration = errors.New("paysera: configuration error")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("paysera: validation error")
	// ErrMalformedCallback reports an absent callback payload or one without a signature.
	ErrMalformedCallback = errors.New("paysera: invalid callback data")
)

// ValidationError names the payment request field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is a required field"
	}
	return fmt.Sprintf("paysera: %q %s", e.Field, reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
