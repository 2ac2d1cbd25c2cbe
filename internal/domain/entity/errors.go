package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every layer. Repositories and use cases wrap
// them with context; handlers map them to status codes with errors.Is.
var (
	// ErrNotFound: no article, user, settings row or subscriber with that key.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput covers malformed identifiers and empty patches.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed is matched by every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConflict: a username or subscriber email is already taken.
	ErrConflict = errors.New("already exists")

	// ErrStorageUnavailable: the backend is unreachable or its breaker is open.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError names the client-facing field that failed and why,
// e.g. {Field: "imageUrl", Message: "is required"}.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match any ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
