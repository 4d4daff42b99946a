package valueobject

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSimulationInput is the sentinel wrapped by every validation
// failure raised while building a credit simulation, so callers can match
// with errors.Is regardless of which fields failed.
var ErrInvalidSimulationInput = errors.New("invalid simulation input")

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every field failure found in one pass over the
// input. It wraps ErrInvalidSimulationInput.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Add appends a field failure.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any failure was collected.
func (v *ValidationErrors) HasErrors() bool { return len(v.Errors) > 0 }

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ErrInvalidSimulationInput.Error()
	}
	parts := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		parts = append(parts, e.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSimulationInput.Error(), strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrInvalidSimulationInput.
func (v *ValidationErrors) Unwrap() error { return ErrInvalidSimulationInput }
