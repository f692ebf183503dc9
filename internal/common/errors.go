// Package common defines shared constants and sentinel errors used across
// the portal client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")

	// Validation errors (client-side, raised before any network call).
	ErrValidation  = errors.New("validation error")
	ErrUnknownRole = errors.New("unknown role")
)
