package entity

import "errors"

// The HTTP layer maps these to status codes; use cases wrap them with
// context via fmt.Errorf("...: %w", err) and callers match with errors.Is.
var (
	// ErrNotFound means the id resolved to nothing in the store.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the entity exists but the viewer may not see or
	// own it. Kept distinct from ErrNotFound so "exists but hidden" is never
	// reported as emptiness.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation means the input was malformed or oversized.
	ErrValidation = errors.New("validation failed")
)
