// Package common defines shared constants and sentinel errors used across
// client and server layers of todokeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors, surfaced to the client as bad input.
	ErrorInvalidInput      = errors.New("invalid input")
	ErrorDuplicateIdentity = errors.New("email already registered")

	// Auth errors. Neither one says which check failed.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorUnauthenticated    = errors.New("unauthenticated")

	// Token codec errors. Kept internal to the auth path and never returned to callers.
	ErrInvalidToken     = errors.New("invalid token")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrMalformedToken   = errors.New("malformed token")
	ErrTokenExpired     = errors.New("token expired")
)
