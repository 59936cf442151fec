package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/common"
	"github.com/dmitrijs2005/blogcli/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostsRepo implements posts.Repository in memory.
type fakePostsRepo struct {
	Cached     []models.FeedItem
	GetErr     error
	ReplaceErr error
	DelErr     error

	Replaced  []models.FeedItem
	DeletedID string
}

func (f *fakePostsRepo) ReplaceAll(_ context.Context, _ dbx.DBTX, items []models.FeedItem) error {
	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}
	f.Replaced = append([]models.FeedItem(nil), items...)
	return nil
}

func (f *fakePostsRepo) GetAll(context.Context) ([]models.FeedItem, error) {
	return f.Cached, f.GetErr
}

func (f *fakePostsRepo) DeleteByID(_ context.Context, id string) error {
	f.DeletedID = id
	return f.DelErr
}

func usersFixture() []models.User {
	return []models.User{
		{Username: "a", Posts: []models.Post{
			{ID: "p1", Title: "t1", Content: "c1"},
			{ID: "p2", Title: "t2", Content: "c2"},
		}},
		{Username: "b", Posts: []models.Post{
			{ID: "p3", Title: "t3", Content: "c3"},
		}},
	}
}

func TestFlatten_OrderAndAnnotation(t *testing.T) {
	items := Flatten(usersFixture())

	require.Len(t, items, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, []string{"a", "a", "b"}, []string{items[0].AuthorName, items[1].AuthorName, items[2].AuthorName})
}

func TestFlatten_NoPosts(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]models.User{{Username: "a"}}))
}

func TestPostService_Feed_FlattensAndRefreshesCache(t *testing.T) {
	store := setupStore(t, "feedok")
	f := &fakeClient{Users: usersFixture()}
	repo := &fakePostsRepo{}
	svc := NewPostService(f, store, repo, nil, testLogger())

	items, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, items, repo.Replaced)
}

func TestPostService_Feed_UnavailableServesCache(t *testing.T) {
	store := setupStore(t, "feedcache")
	cached := []models.FeedItem{{Post: models.Post{ID: "p1", Title: "t1"}, AuthorName: "a"}}
	f := &fakeClient{ListErr: fmt.Errorf("%w: connection refused", client.ErrUnavailable)}
	repo := &fakePostsRepo{Cached: cached}
	svc := NewPostService(f, store, repo, nil, testLogger())

	items, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, items)
}

func TestPostService_Feed_UnavailableWithEmptyCacheFails(t *testing.T) {
	store := setupStore(t, "feednocache")
	f := &fakeClient{ListErr: fmt.Errorf("%w: connection refused", client.ErrUnavailable)}
	svc := NewPostService(f, store, &fakePostsRepo{}, nil, testLogger())

	_, err := svc.Feed(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestPostService_Feed_OtherErrorsPassThrough(t *testing.T) {
	store := setupStore(t, "feederr")
	boom := errors.New("boom")
	f := &fakeClient{ListErr: boom}
	repo := &fakePostsRepo{Cached: []models.FeedItem{{Post: models.Post{ID: "p1"}}}}
	svc := NewPostService(f, store, repo, nil, testLogger())

	_, err := svc.Feed(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestPostService_MutationsRequireCredential(t *testing.T) {
	store := setupStore(t, "noauth")
	f := &fakeClient{}
	svc := NewPostService(f, store, &fakePostsRepo{}, nil, testLogger())
	ctx := context.Background()

	input := client.PostInput{Title: "My title", Content: "Long enough body"}

	require.ErrorIs(t, svc.Create(ctx, input), common.ErrNotLoggedIn)
	require.ErrorIs(t, svc.Update(ctx, "p1", input), common.ErrNotLoggedIn)
	require.ErrorIs(t, svc.Delete(ctx, "p1"), common.ErrNotLoggedIn)

	// The precondition failed locally: no network call was made.
	assert.Zero(t, f.CreateCalls)
	assert.Zero(t, f.UpdateCalls)
	assert.Zero(t, f.DeleteCalls)
}

func TestPostService_Create_SendsTokenAndInput(t *testing.T) {
	store := setupStore(t, "createok")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok123", models.User{Username: "alice"}))

	f := &fakeClient{}
	svc := NewPostService(f, store, &fakePostsRepo{}, nil, testLogger())

	input := client.PostInput{
		Title:   "My title",
		Content: "Long enough body",
		Image:   &models.Attachment{Name: "cat.png", Data: []byte{1, 2}},
	}
	require.NoError(t, svc.Create(ctx, input))
	assert.Equal(t, "tok123", f.LastToken)
	assert.Equal(t, input, f.LastInput)
}

func TestPostService_Delete_DropsCachedCopy(t *testing.T) {
	store := setupStore(t, "deleteok")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok123", models.User{Username: "alice"}))

	f := &fakeClient{}
	repo := &fakePostsRepo{}
	svc := NewPostService(f, store, repo, nil, testLogger())

	require.NoError(t, svc.Delete(ctx, "p2"))
	assert.Equal(t, 1, f.DeleteCalls)
	assert.Equal(t, "p2", f.LastID)
	assert.Equal(t, "p2", repo.DeletedID)
}

func TestPostService_Delete_RemoteFailureKeepsCache(t *testing.T) {
	store := setupStore(t, "deletefail")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok123", models.User{Username: "alice"}))

	f := &fakeClient{DelErr: errors.New("forbidden")}
	repo := &fakePostsRepo{}
	svc := NewPostService(f, store, repo, nil, testLogger())

	require.Error(t, svc.Delete(ctx, "p2"))
	assert.Empty(t, repo.DeletedID)
}

func TestPostService_Get(t *testing.T) {
	store := setupStore(t, "getpost")
	want := &models.Post{ID: "p1", Title: "t1", Content: "c1"}
	f := &fakeClient{PostRet: want}
	svc := NewPostService(f, store, &fakePostsRepo{}, nil, testLogger())

	got, err := svc.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "p1", f.LastID)
}
