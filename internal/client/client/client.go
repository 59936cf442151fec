package client

import (
	"context"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
)

// SignupRequest is the JSON body of POST /api/users/.
type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the JSON body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both signup and login: the bearer token plus
// the user descriptor, persisted together as the local credential.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// PostInput is the multipart payload for creating or updating a post.
// Image is optional; when nil only the text fields are sent.
type PostInput struct {
	Title   string
	Content string
	Image   *models.Attachment
}

// Client is the remote API surface used by the application services.
// Authenticated calls take the bearer token explicitly; the credential
// itself lives in the session store, not here.
type Client interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, token string, input PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, token, id string, input PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, token, id string) error
}
