package users

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login attempt
	// Deliberately does not say whether the email or the password was wrong
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthorized indicates the caller may not modify this profile
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
