package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/client/repositories/posts"
	"github.com/dmitrijs2005/blogcli/internal/client/session"
	"github.com/dmitrijs2005/blogcli/internal/common"
	"github.com/dmitrijs2005/blogcli/internal/dbx"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

// PostService defines post operations for the CLI.
//
// Create, Update and Delete require a stored credential; when none is
// present they fail locally with common.ErrNotLoggedIn and perform no
// network call.
type PostService interface {
	Feed(ctx context.Context) ([]models.FeedItem, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, input client.PostInput) error
	Update(ctx context.Context, id string, input client.PostInput) error
	Delete(ctx context.Context, id string) error
}

type postService struct {
	client    client.Client
	store     *session.Store
	postsRepo posts.Repository
	db        *sql.DB
	log       logging.Logger
}

// NewPostService constructs a PostService. db may be nil in tests; the
// cache refresh then runs without a wrapping transaction.
func NewPostService(c client.Client, store *session.Store, repo posts.Repository, db *sql.DB, log logging.Logger) PostService {
	return &postService{client: c, store: store, postsRepo: repo, db: db, log: log}
}

// Flatten turns the users listing into a single feed: every post annotated
// with its owner's username, users and posts kept in fetch order.
func Flatten(users []models.User) []models.FeedItem {
	var items []models.FeedItem
	for _, u := range users {
		for _, p := range u.Posts {
			items = append(items, models.FeedItem{Post: p, AuthorName: u.Username})
		}
	}
	return items
}

// Feed fetches all users and flattens their posts. On success the offline
// cache is refreshed (best effort). When the server is unreachable the
// cached snapshot is served instead, if one exists.
func (s *postService) Feed(ctx context.Context) ([]models.FeedItem, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			cached, cacheErr := s.postsRepo.GetAll(ctx)
			if cacheErr == nil && len(cached) > 0 {
				s.log.Warn(ctx, "server unavailable, serving cached feed", "posts", len(cached))
				return cached, nil
			}
		}
		return nil, err
	}

	items := Flatten(users)

	if err := s.refreshCache(ctx, items); err != nil {
		s.log.Warn(ctx, "could not refresh feed cache", "error", err)
	}
	return items, nil
}

func (s *postService) refreshCache(ctx context.Context, items []models.FeedItem) error {
	if s.db == nil {
		return s.postsRepo.ReplaceAll(ctx, nil, items)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.postsRepo.ReplaceAll(ctx, tx, items)
	})
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.client.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching post: %w", err)
	}
	return post, nil
}

// token enforces the local credential precondition shared by the mutating
// operations.
func (s *postService) token(ctx context.Context) (string, error) {
	token, err := s.store.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", common.ErrNotLoggedIn
	}
	return token, nil
}

func (s *postService) Create(ctx context.Context, input client.PostInput) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	if _, err := s.client.CreatePost(ctx, token, input); err != nil {
		return err
	}
	return nil
}

func (s *postService) Update(ctx context.Context, id string, input client.PostInput) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	if _, err := s.client.UpdatePost(ctx, token, id, input); err != nil {
		return err
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	if err := s.client.DeletePost(ctx, token, id); err != nil {
		return err
	}
	if err := s.postsRepo.DeleteByID(ctx, id); err != nil {
		s.log.Warn(ctx, "could not drop cached post", "id", id, "error", err)
	}
	return nil
}
