// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Entity errors.
	ErrNotFound        = errors.New("not found")
	ErrProtectedEntity = errors.New("protected entity")

	// Validation errors.
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidNumber = errors.New("invalid numeric input")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// MissingFieldError reports a validation failure for a specific form field.
// The field name is the user-facing label, not an internal identifier.
func MissingFieldError(field string) error {
	return &UserError{
		UserMessage: fmt.Sprintf("please fill in %q", field),
		Err:         ErrMissingField,
	}
}

// IsValidation reports whether err is a validation failure that should keep
// the form open for correction rather than abort the session.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidNumber)
}
