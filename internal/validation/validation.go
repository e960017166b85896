// Package validation holds the field-level rules for the auth surface.
// Every rule violation is collected, not short-circuited, so a response can
// list everything wrong with a request at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
	MaxSkills         = 50
	MaxSkillLength    = 100
)

var (
	validate = validator.New()
	nameRx   = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

// FieldError is one violated constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violated constraint of a request.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Error) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Error) orNil() *Error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Registration validates every field of a registration request and returns
// nil or the full list of violations.
func Registration(email, pw, firstName, lastName string) *Error {
	var e Error
	checkEmail(&e, email)
	checkPassword(&e, "password", pw)
	checkName(&e, "firstName", "First name", firstName)
	if strings.TrimSpace(lastName) == "" {
		e.add("lastName", "Last name is required")
	} else if len(lastName) > 100 {
		e.add("lastName", "Last name must not exceed 100 characters")
	}
	return e.orNil()
}

// ProfileUpdate validates the two mutable profile fields. Nil pointers mean
// "not supplied" and are skipped.
func ProfileUpdate(firstName *string, skills *[]string) *Error {
	var e Error
	if firstName != nil {
		checkName(&e, "firstName", "First name", *firstName)
	}
	if skills != nil {
		checkSkills(&e, *skills)
	}
	return e.orNil()
}

// NewPassword validates a password-change request's replacement password.
// The same policy as registration; the current password is only compared
// against the stored hash, never policy-checked, so logins and changes keep
// working for accounts created under an older policy.
func NewPassword(pw string) *Error {
	var e Error
	checkPassword(&e, "newPassword", pw)
	return e.orNil()
}

func checkEmail(e *Error, email string) {
	if err := validate.Var(email, "required,email"); err != nil {
		e.add("email", "Please provide a valid email address")
		return
	}
	if len(email) > 255 {
		e.add("email", "Email must not exceed 255 characters")
	}
}

func checkPassword(e *Error, field, pw string) {
	if len(pw) < MinPasswordLength || len(pw) > MaxPasswordLength {
		e.add(field, fmt.Sprintf("Password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength))
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		e.add(field, "Password must contain at least one lowercase letter, one uppercase letter, and one number")
	}
}

func checkName(e *Error, field, label, name string) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 50 {
		e.add(field, label+" must be between 2 and 50 characters")
		return
	}
	if !nameRx.MatchString(name) {
		e.add(field, label+" can only contain letters, spaces, hyphens, and apostrophes")
	}
}

func checkSkills(e *Error, skills []string) {
	if len(skills) > MaxSkills {
		e.add("skills", fmt.Sprintf("Maximum %d skills allowed", MaxSkills))
	}
	for i, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			e.add("skills", fmt.Sprintf("Skill %d must be a non-empty string", i+1))
			continue
		}
		if len(skill) > MaxSkillLength {
			e.add("skills", fmt.Sprintf("Skill %d must not exceed %d characters", i+1, MaxSkillLength))
		}
	}
}
