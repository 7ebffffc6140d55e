package storage

import "errors"

// Common client storage errors
var (
	// ErrRowNotFound indicates that no cached row exists for the key
	ErrRowNotFound = errors.New("row not found")

	// ErrSessionNotFound indicates that no login session is stored
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
