package cli

import (
	"context"
	"fmt"
)

// Feed fetches the post feed and renders one card per post, in fetch order.
// The viewer identity comes from the stored credential; when it cannot be
// resolved the cards simply omit the owner actions.
func (a *App) Feed(ctx context.Context) error {
	items, err := a.postService.Feed(ctx)
	if err != nil {
		a.log.Error(ctx, "loading feed", "error", err)
		a.reportError(nil, err)
		return err
	}

	a.feed = items

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No posts yet.")
		if a.isLoggedIn() {
			fmt.Fprintln(a.out, "Type 'create' to write the first one!")
		}
		return nil
	}

	viewer := a.authService.CurrentUsername(ctx)
	for _, item := range items {
		RenderCard(a.out, item, viewer, a.favorites[item.ID], a.config.UploadBasePath)
	}
	return nil
}
