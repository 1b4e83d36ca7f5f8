// Package common contains shared constants, sentinel errors, and small
// helpers used across SkillExchange client components. Callers should use
// errors.Is to match the sentinel values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors (client-side, raised before any network call).
	ErrFieldRequired    = errors.New("field required")
	ErrInvalidMobile    = errors.New("mobile number must be 10 digits")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
