package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a notebook or note lookup by ID failed.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available, typically
	// because a required adapter was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrCorruptDocument indicates the stored document could not be parsed
	// or violates the containment invariant.
	ErrCorruptDocument = errors.New("corrupt document")
)
