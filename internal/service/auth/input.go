package auth

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores bytes past 72.
	maxPasswordBytes  = 72
	maxUsernameLength = 150
	maxNameLength     = 150
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case utf8.RuneCountInString(i.Username) > maxUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	case strings.IndexFunc(i.Username, unicode.IsSpace) >= 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain spaces"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if addr, err := mail.ParseAddress(i.Email); err != nil || addr.Address != i.Email {
		errs = append(errs, domain.FieldError{Field: "email", Message: "enter a valid email address"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short (min 8 characters)"})
	case len(i.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	case isNumeric(i.Password):
		errs = append(errs, domain.FieldError{Field: "password", Message: "must not be entirely numeric"})
	case i.Password != i.Password2:
		errs = append(errs, domain.FieldError{Field: "password", Message: "password fields didn't match"})
	}

	if utf8.RuneCountInString(i.FirstName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if utf8.RuneCountInString(i.LastName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for the username + password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func isNumeric(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}
