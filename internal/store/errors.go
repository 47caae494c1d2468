package store

import "errors"

// Errors returned when a resolved database configuration cannot be turned
// into driver pool settings.
var (
	// ErrInvalidPoolSize is returned when MaxConnections is zero or smaller
	// than MinConnections.
	ErrInvalidPoolSize = errors.New("invalid pool size")

	// ErrParsingDatabaseURL is returned when the driver rejects the
	// connection string.
	ErrParsingDatabaseURL = errors.New("error parsing database url")
)
