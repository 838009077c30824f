// Package common defines shared sentinel errors used across the service and
// repository layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Conflict errors. Terminal for the request; retrying without changing
	// input cannot succeed.
	ErrorContactTaken   = errors.New("contact already registered")
	ErrorAlreadyClaimed = errors.New("perk already claimed")

	// Auth errors. Signature, format, and expiry failures all fold into
	// ErrInvalidToken past the verifier boundary.
	ErrInvalidToken = errors.New("invalid token")
)
