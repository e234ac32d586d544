package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrIndexResolution  = errors.New("sorted view index does not resolve to an entry")
	ErrCourseNotFound   = errors.New("course not found")
	ErrHomeworkNotFound = errors.New("homework not found")
)

// ValidationError reports a rejected field on an add or edit command.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IndexResolutionError wraps ErrIndexResolution with the offending index.
func IndexResolutionError(index, size int) error {
	return fmt.Errorf("%w: index %d, view size %d", ErrIndexResolution, index, size)
}
