package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
)

// avatarFor returns the one-character avatar for an author: the first
// character of the username, upper-cased. Unknown authors get "?".
func avatarFor(author string) string {
	r := []rune(author)
	if len(r) == 0 {
		return "?"
	}
	return strings.ToUpper(string(r[0]))
}

// RenderCard writes one feed card to w: author line with avatar and
// favorite marker, title, content, the resolved image reference. The
// edit/delete hint appears only when the viewer is the post's author;
// an empty viewer never matches.
func RenderCard(w io.Writer, item models.FeedItem, viewer string, favorite bool, uploadBase string) {
	fav := ""
	if favorite {
		fav = " *"
	}

	fmt.Fprintf(w, "[%s] %s%s\n", avatarFor(item.AuthorName), item.AuthorName, fav)
	fmt.Fprintf(w, "  %s  (id: %s)\n", item.Title, item.ID)
	fmt.Fprintf(w, "  %s\n", item.Content)
	fmt.Fprintf(w, "  image: %s\n", item.ImageURL(uploadBase))

	if viewer != "" && viewer == item.AuthorName {
		fmt.Fprintf(w, "  actions: edit %s | delete %s\n", item.ID, item.ID)
	}
	fmt.Fprintln(w)
}
