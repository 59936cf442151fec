package client

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached or did not answer in time. The feed falls back to the
	// local cache on it.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotFound is returned for 404 responses on single-post lookups.
	ErrNotFound = errors.New("post not found")
)

// ValidationError carries the server's structured per-field error list,
// already folded into one message per field. Callers rebuild the form
// error map from Fields; no general error is set for this kind.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// MessageError carries a single server-reported message, shown to the user
// as a general banner.
type MessageError struct {
	Message string
}

func (e *MessageError) Error() string { return e.Message }
