// Package posts persists the offline feed cache: a flat, ordered snapshot
// of the last successfully fetched feed.
package posts

import (
	"context"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/dbx"
)

type Repository interface {
	// ReplaceAll swaps the cached snapshot for items, preserving order.
	ReplaceAll(ctx context.Context, tx dbx.DBTX, items []models.FeedItem) error
	// GetAll returns the cached snapshot in its original fetch order.
	GetAll(ctx context.Context) ([]models.FeedItem, error)
	// DeleteByID drops a single cached post (after a remote delete).
	DeleteByID(ctx context.Context, id string) error
}
