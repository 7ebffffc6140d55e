package storage

import "errors"

// Common storage errors
var (
	// ErrAccountNotFound indicates that the account was not found in storage
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists indicates that an account with this username already exists
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrTokenNotFound indicates that the refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrRowNotFound indicates that no row exists under the requested key
	ErrRowNotFound = errors.New("row not found")
)
