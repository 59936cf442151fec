package common

import "errors"

// Callers should use errors.Is to match these values.
var (
	// ErrNotLoggedIn is returned by operations that require a stored
	// credential when none is present. It is raised locally, before any
	// network call is made.
	ErrNotLoggedIn = errors.New("you must be logged in")

	// ErrInvalidToken marks a stored token whose payload could not be
	// decoded. Treated as "viewer unknown", never as a hard failure.
	ErrInvalidToken = errors.New("invalid token")
)
