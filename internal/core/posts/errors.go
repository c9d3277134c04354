package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when no post exists with the requested id
	ErrPostNotFound = errors.New("post not found")

	// ErrForbidden is returned when a post exists but is hidden from the actor
	// (an unpublished draft viewed by someone other than the author or an admin).
	// Deliberately distinct from ErrPostNotFound: the caller learns the id is
	// taken but nothing about the content.
	ErrForbidden = errors.New("not authorized to view this post")

	// ErrNotAuthorized is returned for disallowed mutations: editing another
	// author's post, editing a published post, or deleting without ownership
	// or admin privilege
	ErrNotAuthorized = errors.New("not authorized to modify this post")
)

// ValidationError represents a caller-fixable input error with field context
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
