package posts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll runs inside the caller's transaction so a failed refresh never
// leaves the cache half-written.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, tx dbx.DBTX, items []models.FeedItem) error {
	if tx == nil {
		tx = r.db
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("failed to clear posts cache: %w", err)
	}
	for i, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO posts (id, title, content, image, author, position) VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, item.Title, item.Content, item.Image, item.AuthorName, i)
		if err != nil {
			return fmt.Errorf("failed to cache post %s: %w", item.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.FeedItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, image, author FROM posts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached posts: %w", err)
	}
	defer rows.Close()

	var result []models.FeedItem
	for rows.Next() {
		var item models.FeedItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.Image, &item.AuthorName); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete cached post: %w", err)
	}
	return nil
}
