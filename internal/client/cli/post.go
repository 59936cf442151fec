package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/forms"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/client/validation"
)

// readFile is a test seam for staging image attachments.
var readFile = os.ReadFile

// keepCurrent wraps a read func so that an empty input keeps the current
// value. Used by the edit flow, where fields come pre-filled.
func keepCurrent(current string, read func() (string, error)) func() (string, error) {
	return func() (string, error) {
		v, err := read()
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}
}

// promptAttachment asks for a local image path and stages the file content
// for multipart upload. An empty path means no attachment.
func (a *App) promptAttachment(prompt string) (*models.Attachment, error) {
	path, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return &models.Attachment{Name: filepath.Base(path), Data: data}, nil
}

// Create walks the user through the post form (title, multiline content,
// optional image) and submits a new post. On success the feed is rendered
// with the new post in place.
func (a *App) Create(ctx context.Context) error {
	f := forms.NewPostForm()

	if err := a.promptField(f, validation.FieldTitle, a.textPrompt("Enter title")); err != nil {
		return err
	}
	content := func() (string, error) {
		return GetMultiline(a.reader, "Enter content", a.out)
	}
	if err := a.promptField(f, validation.FieldContent, content); err != nil {
		return err
	}

	if !f.Validate() {
		a.printFormErrors(f)
		return nil
	}

	att, err := a.promptAttachment("Enter image path (leave empty for none)")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	input := client.PostInput{
		Title:   f.Value(validation.FieldTitle),
		Content: f.Value(validation.FieldContent),
		Image:   att,
	}

	if err := a.postService.Create(ctx, input); err != nil {
		a.reportError(f, err)
		return err
	}

	fmt.Fprintln(a.out, "Post created!")
	return a.Feed(ctx)
}

// Edit fetches the post by id, pre-fills the form with its current values
// (empty input keeps a value) and submits the changes. Omitting the image
// path keeps the current image.
func (a *App) Edit(ctx context.Context, id string) error {
	post, err := a.postService.Get(ctx, id)
	if err != nil {
		a.reportError(nil, err)
		return err
	}

	f := forms.NewPostForm()
	f.Set(validation.FieldTitle, post.Title)
	f.Set(validation.FieldContent, post.Content)

	title := keepCurrent(post.Title,
		a.textPrompt(fmt.Sprintf("Enter title [%s] (Enter to keep)", post.Title)))
	if err := a.promptField(f, validation.FieldTitle, title); err != nil {
		return err
	}
	content := keepCurrent(post.Content, func() (string, error) {
		return GetMultiline(a.reader, "Enter content (empty to keep current)", a.out)
	})
	if err := a.promptField(f, validation.FieldContent, content); err != nil {
		return err
	}

	if !f.Validate() {
		a.printFormErrors(f)
		return nil
	}

	att, err := a.promptAttachment("Enter image path (leave empty to keep current image)")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	input := client.PostInput{
		Title:   f.Value(validation.FieldTitle),
		Content: f.Value(validation.FieldContent),
		Image:   att,
	}

	if err := a.postService.Update(ctx, id, input); err != nil {
		a.reportError(f, err)
		return err
	}

	fmt.Fprintln(a.out, "Post updated!")
	return a.Feed(ctx)
}

// Delete removes the post by id. On success the post disappears from the
// current feed list; on failure it stays and the error is shown.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.postService.Delete(ctx, id); err != nil {
		a.reportError(nil, err)
		return err
	}

	a.removeFromFeed(id)
	delete(a.favorites, id)
	fmt.Fprintln(a.out, "Post deleted.")
	return nil
}

func (a *App) removeFromFeed(id string) {
	for i, item := range a.feed {
		if item.ID == id {
			a.feed = append(a.feed[:i], a.feed[i+1:]...)
			return
		}
	}
}

// Fav toggles the in-memory favorite marker on a post from the current
// feed. The marker is cosmetic and lives only for this run.
func (a *App) Fav(id string) error {
	for _, item := range a.feed {
		if item.ID == id {
			a.favorites[id] = !a.favorites[id]
			if a.favorites[id] {
				fmt.Fprintf(a.out, "Added %q to favorites.\n", item.Title)
			} else {
				fmt.Fprintf(a.out, "Removed %q from favorites.\n", item.Title)
			}
			return nil
		}
	}
	fmt.Fprintln(a.out, "No such post in the current feed; run 'feed' first.")
	return nil
}
