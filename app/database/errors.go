package database

import "errors"

var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidPIN means the supplied PIN matched neither the stored
	// PIN nor the master override.
	ErrInvalidPIN = errors.New("invalid pin")
)
