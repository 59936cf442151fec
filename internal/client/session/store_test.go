package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:session?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)

	return NewStore(metadata.NewSQLiteRepository(db))
}

func TestStore_SaveAndRead(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.False(t, s.IsLoggedIn(ctx))

	user := models.User{ID: "u1", Username: "alice", Email: "alice@example.org"}
	require.NoError(t, s.Save(ctx, "tok123", user))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.True(t, s.IsLoggedIn(ctx))

	got, err := s.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
}

func TestStore_Clear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok123", models.User{Username: "alice"}))
	require.NoError(t, s.Clear(ctx))

	assert.False(t, s.IsLoggedIn(ctx))

	user, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_ClientID_StableAcrossCalls(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	first, err := s.ClientID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := s.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
