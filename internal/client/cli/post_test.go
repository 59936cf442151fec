package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/common"
)

func stubReadFile(t *testing.T, data []byte, err error) func() {
	t.Helper()
	orig := readFile
	readFile = func(string) ([]byte, error) { return data, err }
	return func() { readFile = orig }
}

func TestCreate_Success(t *testing.T) {
	restoreText := stubTextInputs(t, "My First Post", "")
	defer restoreText()

	post := &fakePostService{}
	a, buf := newTestApp(&fakeAuthService{loggedIn: true}, post, "This content is long enough\n\n")

	require.NoError(t, a.Create(context.Background()))

	require.Len(t, post.created, 1)
	assert.Equal(t, "My First Post", post.created[0].Title)
	assert.Equal(t, "This content is long enough", post.created[0].Content)
	assert.Nil(t, post.created[0].Image)
	assert.Contains(t, buf.String(), "Post created!")
}

func TestCreate_WithImage(t *testing.T) {
	restoreText := stubTextInputs(t, "My First Post", "photos/pic.png")
	defer restoreText()
	restoreRead := stubReadFile(t, []byte("imgdata"), nil)
	defer restoreRead()

	post := &fakePostService{}
	a, _ := newTestApp(&fakeAuthService{loggedIn: true}, post, "This content is long enough\n\n")

	require.NoError(t, a.Create(context.Background()))

	require.Len(t, post.created, 1)
	require.NotNil(t, post.created[0].Image)
	assert.Equal(t, "pic.png", post.created[0].Image.Name)
	assert.Equal(t, []byte("imgdata"), post.created[0].Image.Data)
}

func TestCreate_UnreadableImageAborts(t *testing.T) {
	restoreText := stubTextInputs(t, "My First Post", "missing.png")
	defer restoreText()
	restoreRead := stubReadFile(t, nil, errors.New("no such file"))
	defer restoreRead()

	post := &fakePostService{}
	a, buf := newTestApp(&fakeAuthService{loggedIn: true}, post, "This content is long enough\n\n")

	require.Error(t, a.Create(context.Background()))
	assert.Empty(t, post.created)
	assert.Contains(t, buf.String(), "reading image")
}

func TestCreate_NotLoggedIn(t *testing.T) {
	restoreText := stubTextInputs(t, "My First Post", "")
	defer restoreText()

	post := &fakePostService{createErr: common.ErrNotLoggedIn}
	a, buf := newTestApp(&fakeAuthService{}, post, "This content is long enough\n\n")

	require.Error(t, a.Create(context.Background()))
	assert.Contains(t, buf.String(), "You must be logged in")
}

func TestCreate_RepromptsShortTitle(t *testing.T) {
	restoreText := stubTextInputs(t, "ab", "A valid title", "")
	defer restoreText()

	post := &fakePostService{}
	a, buf := newTestApp(&fakeAuthService{loggedIn: true}, post, "This content is long enough\n\n")

	require.NoError(t, a.Create(context.Background()))

	require.Len(t, post.created, 1)
	assert.Equal(t, "A valid title", post.created[0].Title)
	assert.Contains(t, buf.String(), "Title must be at least 3 characters")
}

func TestEdit_KeepsValuesOnEmptyInput(t *testing.T) {
	// empty title input keeps the current one, empty image path keeps the image
	restoreText := stubTextInputs(t, "", "")
	defer restoreText()

	post := &fakePostService{
		getPost: &models.Post{ID: "p1", Title: "Old title", Content: "Old content long enough"},
	}
	a, buf := newTestApp(&fakeAuthService{loggedIn: true}, post, "")

	require.NoError(t, a.Edit(context.Background(), "p1"))

	assert.Equal(t, "p1", post.updatedID)
	assert.Equal(t, "Old title", post.updatedInput.Title)
	assert.Equal(t, "Old content long enough", post.updatedInput.Content)
	assert.Nil(t, post.updatedInput.Image)
	assert.Contains(t, buf.String(), "Post updated!")
}

func TestEdit_OverridesTitle(t *testing.T) {
	restoreText := stubTextInputs(t, "New title", "")
	defer restoreText()

	post := &fakePostService{
		getPost: &models.Post{ID: "p1", Title: "Old title", Content: "Old content long enough"},
	}
	a, _ := newTestApp(&fakeAuthService{loggedIn: true}, post, "")

	require.NoError(t, a.Edit(context.Background(), "p1"))

	assert.Equal(t, "New title", post.updatedInput.Title)
	assert.Equal(t, "Old content long enough", post.updatedInput.Content)
}

func TestEdit_NotFound(t *testing.T) {
	post := &fakePostService{getErr: client.ErrNotFound}
	a, buf := newTestApp(&fakeAuthService{loggedIn: true}, post, "")

	require.Error(t, a.Edit(context.Background(), "nope"))
	assert.Contains(t, buf.String(), "Post not found.")
}

func TestDelete_RemovesFromFeed(t *testing.T) {
	post := &fakePostService{}
	a, buf := newTestApp(&fakeAuthService{loggedIn: true}, post, "")
	a.feed = []models.FeedItem{
		{Post: models.Post{ID: "p1", Title: "one"}, AuthorName: "alice"},
		{Post: models.Post{ID: "p2", Title: "two"}, AuthorName: "alice"},
	}
	a.favorites["p1"] = true

	require.NoError(t, a.Delete(context.Background(), "p1"))

	assert.Equal(t, []string{"p1"}, post.deleted)
	require.Len(t, a.feed, 1)
	assert.Equal(t, "p2", a.feed[0].ID)
	assert.False(t, a.favorites["p1"])
	assert.Contains(t, buf.String(), "Post deleted.")
}

func TestDelete_FailureKeepsFeed(t *testing.T) {
	post := &fakePostService{deleteErr: errors.New("boom")}
	a, buf := newTestApp(&fakeAuthService{loggedIn: true}, post, "")
	a.feed = []models.FeedItem{
		{Post: models.Post{ID: "p1", Title: "one"}, AuthorName: "alice"},
	}

	require.Error(t, a.Delete(context.Background(), "p1"))

	assert.Len(t, a.feed, 1)
	assert.Contains(t, buf.String(), "Something went wrong. Please try again.")
}

func TestFav_Toggle(t *testing.T) {
	a, buf := newTestApp(&fakeAuthService{}, &fakePostService{}, "")
	a.feed = []models.FeedItem{
		{Post: models.Post{ID: "p1", Title: "one"}, AuthorName: "alice"},
	}

	require.NoError(t, a.Fav("p1"))
	assert.True(t, a.favorites["p1"])
	assert.Contains(t, buf.String(), "Added")

	buf.Reset()

	require.NoError(t, a.Fav("p1"))
	assert.False(t, a.favorites["p1"])
	assert.Contains(t, buf.String(), "Removed")
}

func TestFav_UnknownID(t *testing.T) {
	a, buf := newTestApp(&fakeAuthService{}, &fakePostService{}, "")

	require.NoError(t, a.Fav("nope"))
	assert.Contains(t, buf.String(), "run 'feed' first")
}
