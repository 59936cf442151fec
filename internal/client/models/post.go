// Package models defines client-side data models used by the blogcli CLI.
package models

import (
	"path"
	"strings"

	"github.com/dmitrijs2005/blogcli/internal/common"
)

// Post is a single blog post as returned by the API.
type Post struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`

	// Title and Content are the user-entered post body fields.
	Title   string `json:"title"`
	Content string `json:"content"`

	// Image is either an absolute URL or a bare filename resolved against
	// the upload base path. Empty means "no image".
	Image string `json:"image,omitempty"`
}

// User is an account as returned by the users listing, with its posts nested.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Posts    []Post `json:"posts"`
}

// FeedItem is a Post annotated with the username of its owner. The feed is
// a flat, fetch-ordered list of these.
type FeedItem struct {
	Post
	AuthorName string `json:"authorName"`
}

// Attachment is a local image file staged for multipart upload.
type Attachment struct {
	// Name is the filename sent in the multipart part header.
	Name string
	// Data is the raw file content.
	Data []byte
}

// ImageURL resolves p's image reference for display: absolute URLs pass
// through, bare filenames are joined to uploadBase, and an absent image
// falls back to the default reference.
func (p *Post) ImageURL(uploadBase string) string {
	if p.Image == "" {
		return common.DefaultImage
	}
	if strings.HasPrefix(p.Image, "http://") || strings.HasPrefix(p.Image, "https://") {
		return p.Image
	}
	return strings.TrimRight(uploadBase, "/") + "/" + path.Clean(p.Image)
}
