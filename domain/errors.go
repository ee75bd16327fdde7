package domain

import "errors"

// Sentinel errors returned by the domain services. Callers match them with
// errors.Is; services wrap them with context.
var (
	// ErrForbidden is returned when the requester lacks the role required for an operation
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned when a write would violate a uniqueness rule
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput is returned for malformed or out-of-range arguments
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOperation is returned for requests that are well formed but not allowed
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotFound is returned when a mutation targets a record that does not exist
	ErrNotFound = errors.New("not found")
)
