// Package validation holds the canonical field validation rules for every
// form in the client. Both incremental (per-field) and submit-time
// validation call the same evaluators, so the two paths cannot drift.
//
// Rules are pure: field value in, zero or more human-readable messages out.
// An empty result means the value is valid.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonical field names, matching the API's error paths.
const (
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"

	// FieldGeneral is the reserved key for non-field-specific errors.
	FieldGeneral = "general"
)

const (
	titleMinLen    = 3
	contentMinLen  = 10
	usernameMinLen = 3
	usernameMaxLen = 20
	passwordMinLen = 6

	// specialChars is the fixed set accepted by the signup password rule.
	specialChars = "@$!%*?&"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// Title requires a non-empty value of at least 3 characters.
func Title(v string) []string {
	if v == "" {
		return []string{"Title is required"}
	}
	if utf8.RuneCountInString(v) < titleMinLen {
		return []string{"Title must be at least 3 characters"}
	}
	return nil
}

// Content requires a non-empty value of at least 10 characters.
func Content(v string) []string {
	if v == "" {
		return []string{"Content is required"}
	}
	if utf8.RuneCountInString(v) < contentMinLen {
		return []string{"Content must be at least 10 characters"}
	}
	return nil
}

// Username requires a non-empty value between 3 and 20 characters.
func Username(v string) []string {
	if v == "" {
		return []string{"Username is required"}
	}
	switch n := utf8.RuneCountInString(v); {
	case n < usernameMinLen:
		return []string{"Username must be at least 3 characters"}
	case n > usernameMaxLen:
		return []string{"Username must be at most 20 characters"}
	}
	return nil
}

// Email requires a non-empty value matching a standard email grammar.
// There is no TLD allow-list.
func Email(v string) []string {
	if v == "" {
		return []string{"Email is required"}
	}
	if !emailRe.MatchString(v) {
		return []string{"Please provide a valid email address"}
	}
	return nil
}

// LoginPassword only requires presence; login applies no shape checks.
func LoginPassword(v string) []string {
	if v == "" {
		return []string{"Password is required"}
	}
	return nil
}

// SignupPassword evaluates the five strength predicates independently and
// reports every failing one. The checks are not short-circuited: "abc"
// yields the length, uppercase, digit and special messages at once.
func SignupPassword(v string) []string {
	var msgs []string

	if utf8.RuneCountInString(v) < passwordMinLen {
		msgs = append(msgs, "Password must be at least 6 characters.")
	}
	if !strings.ContainsFunc(v, unicode.IsUpper) {
		msgs = append(msgs, "Password must contain at least one uppercase letter.")
	}
	if !strings.ContainsFunc(v, unicode.IsLower) {
		msgs = append(msgs, "Password must contain at least one lowercase letter.")
	}
	if !strings.ContainsFunc(v, unicode.IsDigit) {
		msgs = append(msgs, "Password must contain at least one number.")
	}
	if !strings.ContainsAny(v, specialChars) {
		msgs = append(msgs, "Password must contain at least one special character (@$!%*?&).")
	}

	return msgs
}

// ConfirmPassword requires presence and equality with the current password
// value at time of check.
func ConfirmPassword(confirm, password string) []string {
	if confirm == "" {
		return []string{"Please confirm your password"}
	}
	if confirm != password {
		return []string{"Passwords do not match"}
	}
	return nil
}
