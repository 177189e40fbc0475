// Package common defines shared constants and sentinel errors used across
// the server, transports and client of gophauth. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound          = errors.New("not found")
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrorValidation       = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStoreUnavailable   = errors.New("store unavailable")

	// Auth errors. ErrInvalidToken is what the codec reports for any bad
	// token; ErrUnauthenticated is what callers of protected operations see.
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthenticated = errors.New("unauthenticated")
)
