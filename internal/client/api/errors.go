package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates a transport-level failure: connection error,
	// DNS failure, timeout, or an unreadable response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired indicates the refresh attempt itself failed.
	// Local session state has already been discarded when it is returned.
	ErrSessionExpired = errors.New("session expired")

	// ErrProfileNotFound indicates the requested user has no profile yet.
	// This is a valid state, not a failure the caller should alert on.
	ErrProfileNotFound = errors.New("profile not found")
)

// Error is an application-level failure: the server answered with a
// success:false envelope or a bare error status. Where a more specific
// condition applies (401, missing profile) it also matches the corresponding
// sentinel via errors.Is.
type Error struct {
	Status  int
	Message string

	sentinel error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

func (e *Error) Unwrap() error { return e.sentinel }
