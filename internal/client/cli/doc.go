// Package cli provides the interactive blogcli command-line client.
//
// It wires configuration, the local sqlite store, the HTTP API client and
// an interactive REPL. Typical flow: start the loop, sign up or log in,
// browse the feed and manage your own posts.
//
// Key features:
//   - Signup / Login / Logout with a locally persisted credential
//   - Feed browsing with an offline fallback to the cached posts
//   - Create / edit / delete your own posts, with optional image upload
//   - Per-field validation with inline error messages, matching the server's
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
