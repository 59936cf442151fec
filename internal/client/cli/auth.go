package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/forms"
	"github.com/dmitrijs2005/blogcli/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup walks the user through the signup form: username, email, password
// and confirmation, each reprompted until its check passes. After a final
// whole-form validation the account is created via the AuthService.
//
// Server-side field errors are shown inline next to their field names; a
// plain server message becomes a banner. On success the credential is
// already persisted by the service, so the feed is rendered right away.
func (a *App) Signup(ctx context.Context) error {
	f := forms.NewSignupForm()

	if err := a.promptField(f, validation.FieldUsername, a.textPrompt("Enter username")); err != nil {
		return err
	}
	if err := a.promptField(f, validation.FieldEmail, a.textPrompt("Enter email")); err != nil {
		return err
	}
	if err := a.promptField(f, validation.FieldPassword, a.passwordPrompt("Enter password")); err != nil {
		return err
	}
	if err := a.promptField(f, validation.FieldConfirmPassword, a.passwordPrompt("Confirm password")); err != nil {
		return err
	}

	if !f.Validate() {
		a.printFormErrors(f)
		return nil
	}

	req := client.SignupRequest{
		Username:        f.Value(validation.FieldUsername),
		Email:           f.Value(validation.FieldEmail),
		Password:        f.Value(validation.FieldPassword),
		ConfirmPassword: f.Value(validation.FieldConfirmPassword),
	}

	if err := a.authService.Signup(ctx, req); err != nil {
		a.reportError(f, err)
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	a.refreshIdentity(ctx)
	return a.Feed(ctx)
}

// Login prompts for email and password and tries to authenticate. On
// success the persisted credential becomes the viewer identity and the
// feed is rendered directly.
func (a *App) Login(ctx context.Context) error {
	f := forms.NewLoginForm()

	if err := a.promptField(f, validation.FieldEmail, a.textPrompt("Enter email")); err != nil {
		return err
	}
	if err := a.promptField(f, validation.FieldPassword, a.passwordPrompt("Enter password")); err != nil {
		return err
	}

	if !f.Validate() {
		a.printFormErrors(f)
		return nil
	}

	req := client.LoginRequest{
		Email:    f.Value(validation.FieldEmail),
		Password: f.Value(validation.FieldPassword),
	}

	if err := a.authService.Login(ctx, req); err != nil {
		a.reportError(f, err)
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	a.refreshIdentity(ctx)
	return a.Feed(ctx)
}

// Logout deletes the stored credential and resets the viewer identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.reportError(nil, err)
		return err
	}
	a.refreshIdentity(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the username decoded from the stored credential.
func (a *App) Whoami(ctx context.Context) error {
	name := a.authService.CurrentUsername(ctx)
	if name == "" {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintln(a.out, name)
	return nil
}
