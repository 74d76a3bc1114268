package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound covers both a missing post and a post the viewer may
	// not see. The two are deliberately indistinguishable at every surface:
	// a distinct "forbidden" answer would leak that a hidden post exists.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthor indicates a non-author tried to modify a post they can see
	ErrNotAuthor = errors.New("only the author can modify this post")

	// ErrForeignGroup indicates an audience group not owned by the author
	ErrForeignGroup = errors.New("audience group does not belong to the author")
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
