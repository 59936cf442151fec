package session

import (
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DecodeUsername extracts the username claim from the token's payload
// segment without verifying the signature. This is pure data extraction
// for UI owner-gating, never trust verification: a malformed token yields
// an error and the caller degrades to an unknown viewer.
func DecodeUsername(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", fmt.Errorf("%w: no username claim", common.ErrInvalidToken)
	}
	return username, nil
}
