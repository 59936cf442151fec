// Package forms implements the per-page form state container: current field
// values, the field error map, and one-shot success / general-failure
// messages. All validation goes through the rule set in the validation
// package, for both incremental (per-field) and submit-time checks.
package forms

import (
	"github.com/dmitrijs2005/blogcli/internal/client/validation"
)

// Errors maps a field name to its current validation messages. Every field
// carries at most one message, except the signup password field which holds
// one message per failed strength predicate. The reserved
// validation.FieldGeneral key carries non-field-specific server error text.
//
// Invariant: an entry exists iff the field's current value fails validation.
type Errors map[string][]string

// Set replaces the messages for field, removing the entry when msgs is empty.
func (e Errors) Set(field string, msgs []string) {
	if len(msgs) == 0 {
		delete(e, field)
		return
	}
	e[field] = msgs
}

// First returns the first message for field, or "" when the field is valid.
func (e Errors) First(field string) string {
	if msgs, ok := e[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e Errors) Has(field string) bool { return len(e[field]) > 0 }

// rule evaluates one field against the current form state.
type rule func(f *Form) []string

// Form holds the state of a single page's form.
type Form struct {
	fields []string
	rules  map[string]rule
	// paired lists fields to revalidate when the key field changes
	// (password changes re-check confirmPassword).
	paired map[string][]string

	values map[string]string
	errors Errors

	// Success and General are one-shot outcome messages, reset at the
	// start of every submit attempt.
	Success string
	General string
}

func newForm(fields []string, rules map[string]rule, paired map[string][]string) *Form {
	return &Form{
		fields: fields,
		rules:  rules,
		paired: paired,
		values: make(map[string]string, len(fields)),
		errors: make(Errors, len(fields)),
	}
}

// NewLoginForm builds the login page form: email + password, presence-only
// password check.
func NewLoginForm() *Form {
	return newForm(
		[]string{validation.FieldEmail, validation.FieldPassword},
		map[string]rule{
			validation.FieldEmail: func(f *Form) []string {
				return validation.Email(f.Value(validation.FieldEmail))
			},
			validation.FieldPassword: func(f *Form) []string {
				return validation.LoginPassword(f.Value(validation.FieldPassword))
			},
		},
		nil,
	)
}

// NewSignupForm builds the signup page form. The password field is checked
// against all five strength predicates; confirmPassword is compared against
// the password value current at time of check, so changing either field
// re-evaluates the pair.
func NewSignupForm() *Form {
	return newForm(
		[]string{
			validation.FieldUsername,
			validation.FieldEmail,
			validation.FieldPassword,
			validation.FieldConfirmPassword,
		},
		map[string]rule{
			validation.FieldUsername: func(f *Form) []string {
				return validation.Username(f.Value(validation.FieldUsername))
			},
			validation.FieldEmail: func(f *Form) []string {
				return validation.Email(f.Value(validation.FieldEmail))
			},
			validation.FieldPassword: func(f *Form) []string {
				return validation.SignupPassword(f.Value(validation.FieldPassword))
			},
			validation.FieldConfirmPassword: func(f *Form) []string {
				return validation.ConfirmPassword(
					f.Value(validation.FieldConfirmPassword),
					f.Value(validation.FieldPassword),
				)
			},
		},
		map[string][]string{
			validation.FieldPassword: {validation.FieldConfirmPassword},
		},
	)
}

// NewPostForm builds the create/edit post form: title + content. The image
// attachment is staged outside the form and is not validated.
func NewPostForm() *Form {
	return newForm(
		[]string{validation.FieldTitle, validation.FieldContent},
		map[string]rule{
			validation.FieldTitle: func(f *Form) []string {
				return validation.Title(f.Value(validation.FieldTitle))
			},
			validation.FieldContent: func(f *Form) []string {
				return validation.Content(f.Value(validation.FieldContent))
			},
		},
		nil,
	)
}

// Fields returns the form's field names in display order.
func (f *Form) Fields() []string { return f.fields }

// Value returns the current value of field.
func (f *Form) Value(field string) string { return f.values[field] }

// Errors returns the live error map.
func (f *Form) Errors() Errors { return f.errors }

// FieldErrors returns the current messages for field.
func (f *Form) FieldErrors(field string) []string { return f.errors[field] }

// Set updates one field and incrementally revalidates it, plus any paired
// fields. Entries for fields that become valid are removed immediately.
// A paired field the user has not filled in yet is left alone, so an
// untouched confirmPassword does not accumulate errors while the password
// is being typed.
func (f *Form) Set(field, value string) {
	f.values[field] = value

	if r, ok := f.rules[field]; ok {
		f.errors.Set(field, r(f))
	}

	for _, p := range f.paired[field] {
		if f.values[p] == "" {
			f.errors.Set(p, nil)
			continue
		}
		if r, ok := f.rules[p]; ok {
			f.errors.Set(p, r(f))
		}
	}
}

// Validate re-runs every rule against the current values, rebuilding the
// error map from scratch. It reports whether the form may be submitted.
func (f *Form) Validate() bool {
	for _, field := range f.fields {
		f.errors.Set(field, f.rules[field](f))
	}
	return len(f.errors) == 0
}

// ApplyServerErrors rebuilds the error map from a structured per-field error
// list returned by the server. Previous client-side entries are discarded;
// no general error is set.
func (f *Form) ApplyServerErrors(fields map[string]string) {
	f.errors = make(Errors, len(fields))
	for field, msg := range fields {
		f.errors.Set(field, []string{msg})
	}
}

// Reset clears values, errors and outcome messages, returning the form to
// its pristine state.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.fields))
	f.errors = make(Errors, len(f.fields))
	f.Success = ""
	f.General = ""
}
