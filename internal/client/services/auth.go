// Package services contains application services for the blogcli client.
// This file defines the authentication service: signup, login, logout and
// viewer identity resolution from the stored credential.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/session"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Signup / Login: authenticate against the server and persist the
//     returned credential (token + user descriptor) locally.
//   - Logout: delete the stored credential.
//   - CurrentUsername: best-effort decode of the stored token's payload;
//     returns "" when logged out or when the token cannot be decoded.
//   - IsLoggedIn: presence of the stored token.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, req client.SignupRequest) error
	Login(ctx context.Context, req client.LoginRequest) error
	Logout(ctx context.Context) error
	CurrentUsername(ctx context.Context) string
	IsLoggedIn(ctx context.Context) bool
}

type authService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(c client.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: c, store: store, log: log}
}

func (a *authService) Signup(ctx context.Context, req client.SignupRequest) error {
	resp, err := a.client.Signup(ctx, req)
	if err != nil {
		return err
	}
	if err := a.store.Save(ctx, resp.Token, resp.User); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, req client.LoginRequest) error {
	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := a.store.Save(ctx, resp.Token, resp.User); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// CurrentUsername decodes the stored token locally, with no network call.
// A decode failure is logged and leaves the viewer unknown, so owner-gated
// actions simply never match.
func (a *authService) CurrentUsername(ctx context.Context) string {
	token, err := a.store.Token(ctx)
	if err != nil || token == "" {
		return ""
	}

	username, err := session.DecodeUsername(token)
	if err != nil {
		a.log.Warn(ctx, "could not decode stored token", "error", err)
		return ""
	}
	return username
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.store.IsLoggedIn(ctx)
}
