package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("project validation failed")
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectLocked marks a mutation against a project that already left
	// the pending state. Conflict, not forbidden: the caller owns the project
	// but the lifecycle no longer admits edits.
	ErrProjectLocked = errors.New("project is no longer pending")
	ErrConflict      = errors.New("project conflict")
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
	return "project validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
