package models

import (
	"fmt"
	"strings"
	"unicode"
)

// minPasswordLen mirrors the rule enforced by the registration form.
const minPasswordLen = 6

// ValidationError is a purely client-side failure detected before any
// network call is made. It never originates from the API client.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks a draft before submission: the title must be non-blank
// and the enum fields must carry known values.
func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !d.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", string(d.Priority))}
	}
	if !d.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", string(d.Status))}
	}
	return nil
}

// Registration carries the fields collected by the sign-up flow,
// including the repeated password used only for confirmation.
type Registration struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// Validate applies the sign-up rules: all fields present, password at
// least six characters containing a letter and a digit, and a matching
// confirmation.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.Email) == "" {
		return &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if len(r.Password) < minPasswordLen {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", minPasswordLen)}
	}
	var hasLetter, hasDigit bool
	for _, c := range r.Password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &ValidationError{Field: "password", Reason: "must contain at least one letter and one number"}
	}
	if r.Password != r.Confirm {
		return &ValidationError{Field: "confirm", Reason: "passwords do not match"}
	}
	return nil
}
