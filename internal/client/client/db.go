package client

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/blogcli/internal/client/migrations"
	"github.com/dmitrijs2005/blogcli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blogcli/internal/client/repositories/posts"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local stores backed by one sqlite database.
// DB is exposed so services can wrap multi-statement work in dbx.WithTx.
type Repositories struct {
	Metadata metadata.Repository
	Posts    posts.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the local sqlite database at dsn,
// applies the embedded migrations and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Posts:    posts.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
