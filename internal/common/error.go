// Package common defines shared constants and sentinel errors used across
// the news-portal server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Registration conflicts (duplicate username or email).
	ErrorConflict = errors.New("already registered")

	// Identifier validation (externally supplied ids that are not
	// well-formed object keys).
	ErrBadFormat = errors.New("bad id format")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
