package entity

import "errors"

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("entity not found")

	// ErrUnexpectedShape indicates that a response payload did not have
	// any of the shapes the decoder accepts.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)
