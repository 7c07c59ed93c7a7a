package validate

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is the broad category every validation failure belongs to.
// Callers that only care whether a value was rejected can match it with
// errors.Is without inspecting the concrete *ValidationError.
var ErrInvalidValue = errors.New("invalid value")

// ValidationError describes a single failed check. It is constructed fresh
// per failure, never stored, and never retains the validated value beyond
// the rendered message.
type ValidationError struct {
	Message string
}

// NewValidationError builds a *ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// Unwrap ties every validation failure to the ErrInvalidValue category.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	return errors.As(err, &ve)
}
