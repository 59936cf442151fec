// Package session owns the locally persisted credential: the bearer token
// and the user descriptor returned at login/signup, plus the client
// installation id. Presence of the token is the sole "is logged in" signal.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blogcli/internal/common"
	"github.com/google/uuid"
)

type Store struct {
	meta metadata.Repository
}

func NewStore(meta metadata.Repository) *Store {
	return &Store{meta: meta}
}

// Save persists the credential pair written at login/signup.
func (s *Store) Save(ctx context.Context, token string, user models.User) error {
	if err := s.meta.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user descriptor: %w", err)
	}
	if err := s.meta.Set(ctx, common.UserKey, data); err != nil {
		return fmt.Errorf("saving user descriptor: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.meta.Get(ctx, common.TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// User returns the stored user descriptor, or nil when logged out.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	v, err := s.meta.Get(ctx, common.UserKey)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("decoding user descriptor: %w", err)
	}
	return &u, nil
}

// IsLoggedIn reports whether a token is currently stored.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// Clear removes the credential, i.e. logs the user out.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.meta.Delete(ctx, common.TokenKey); err != nil {
		return err
	}
	return s.meta.Delete(ctx, common.UserKey)
}

// ClientID returns the persisted installation id, generating and storing
// one on first use.
func (s *Store) ClientID(ctx context.Context) (string, error) {
	v, err := s.meta.Get(ctx, common.ClientIDKey)
	if err != nil {
		return "", err
	}
	if len(v) > 0 {
		return string(v), nil
	}

	id := uuid.NewString()
	if err := s.meta.Set(ctx, common.ClientIDKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}
