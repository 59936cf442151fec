// Package common contains shared constants and sentinel errors used across
// blogcli components.
package common

const (
	// TokenKey and UserKey are the metadata keys under which the bearer
	// token and the server-returned user descriptor are persisted locally.
	// Presence of TokenKey is the sole "is logged in" signal.
	TokenKey = "token"
	UserKey  = "user"

	// ClientIDKey stores the uuid identifying this client installation.
	// It is generated on first run and sent with every request.
	ClientIDKey = "client_id"

	// AuthHeaderName carries the bearer token on authenticated requests.
	AuthHeaderName = "Authorization"

	// ClientIDHeaderName carries the client installation id.
	ClientIDHeaderName = "X-Client-Id"

	// DefaultImage is the image reference rendered for posts without one.
	DefaultImage = "default-image.jpg"
)
