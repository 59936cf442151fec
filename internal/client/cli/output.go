package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/forms"
	"github.com/dmitrijs2005/blogcli/internal/common"
)

// genericErrorMsg is shown for failures the user cannot act on.
const genericErrorMsg = "Something went wrong. Please try again."

// printFormErrors prints the form's current error map, one line per message,
// in field display order. Keys outside the form's field list (as may arrive
// from the server) are printed after.
func (a *App) printFormErrors(f *forms.Form) {
	for _, field := range f.Fields() {
		for _, m := range f.FieldErrors(field) {
			fmt.Fprintf(a.out, "%s: %s\n", field, m)
		}
	}
	for field, msgs := range f.Errors() {
		if slices.Contains(f.Fields(), field) {
			continue
		}
		for _, m := range msgs {
			fmt.Fprintf(a.out, "%s: %s\n", field, m)
		}
	}
	if f.General != "" {
		fmt.Fprintln(a.out, f.General)
	}
}

// reportError renders a failed submit. Structured server errors are folded
// back into the form (when one is given) and shown inline next to their
// fields; a single server message becomes a banner; everything else falls
// back to the generic message.
func (a *App) reportError(f *forms.Form, err error) {
	var ve *client.ValidationError
	var me *client.MessageError

	switch {
	case errors.As(err, &ve):
		if f != nil {
			f.ApplyServerErrors(ve.Fields)
			a.printFormErrors(f)
			return
		}
		for field, msg := range ve.Fields {
			fmt.Fprintf(a.out, "%s: %s\n", field, msg)
		}

	case errors.As(err, &me):
		fmt.Fprintln(a.out, me.Message)

	case errors.Is(err, common.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "You must be logged in to do that.")

	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(a.out, "Post not found.")

	default:
		fmt.Fprintln(a.out, genericErrorMsg)
	}
}

// promptField reads values for one form field until the field's incremental
// check passes. Each failed attempt prints the field's message(s) and
// reprompts. Read errors (EOF, closed terminal) abort the whole flow.
func (a *App) promptField(f *forms.Form, field string, read func() (string, error)) error {
	for {
		v, err := read()
		if err != nil {
			return err
		}
		f.Set(field, v)
		msgs := f.FieldErrors(field)
		if len(msgs) == 0 {
			return nil
		}
		for _, m := range msgs {
			fmt.Fprintln(a.out, "  "+m)
		}
	}
}

func (a *App) textPrompt(prompt string) func() (string, error) {
	return func() (string, error) {
		return getSimpleText(a.reader, prompt, a.out)
	}
}

func (a *App) passwordPrompt(prompt string) func() (string, error) {
	return func() (string, error) {
		pw, err := getPassword(prompt, a.out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
}
