package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("account validation failed")
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken marks a registration against an email that already has an
	// account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown emails and wrong passwords so
	// a login probe cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
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
	return "account validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
