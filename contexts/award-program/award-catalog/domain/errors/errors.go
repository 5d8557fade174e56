package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("award validation failed")
	ErrAwardNotFound = errors.New("award not found")
	ErrConflict      = errors.New("award conflict")
)

// FieldError is a single user-correctable failure on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every invalid field of a request so forms can be
// corrected in one pass. It unwraps to ErrValidation for errors.Is mapping.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field.Field, field.Message))
	}
	return "award validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
