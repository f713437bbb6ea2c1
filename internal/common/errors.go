// Package common defines shared constants and sentinel errors used across
// the stores, services and transports of Taskboard. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrVersionConflict = errors.New("version conflict")
	ErrValidation      = errors.New("validation error")

	// Auth contract errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Task contract errors.
	ErrTaskNotFound = errors.New("task not found")
	ErrUnknownUser  = errors.New("unknown user")

	// Description generation failed or is not configured. Never returned
	// from the suggester itself.
	ErrGenerationUnavailable = errors.New("generation unavailable")

	// Remote backend could not be reached.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
