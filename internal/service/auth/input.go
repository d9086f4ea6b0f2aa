package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const (
	maxEmailLen    = 254
	maxPasswordLen = 72 // bcrypt ignores bytes beyond 72
	maxNameLen     = 100
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Validate validates the registration input.
func (i RegisterInput) Validate(minPasswordLen int) error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if utf8.RuneCountInString(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLen:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t\n") {
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}
