package user

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const (
	maxPreferenceEntries = 20
	maxPreferenceLen     = 50
)

// UpdatePreferencesInput holds a partial preferences update.
// Nil fields are left unchanged.
type UpdatePreferencesInput struct {
	SaveTypes           []string
	Goals               []string
	OnboardingCompleted *bool
}

// Validate validates the update preferences input.
func (i UpdatePreferencesInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEntries(errs, "save_types", i.SaveTypes)
	errs = validateEntries(errs, "goals", i.Goals)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEntries(errs []domain.FieldError, field string, values []string) []domain.FieldError {
	if len(values) > maxPreferenceEntries {
		return append(errs, domain.FieldError{
			Field:   field,
			Message: fmt.Sprintf("at most %d entries", maxPreferenceEntries),
		})
	}
	for _, v := range values {
		if utf8.RuneCountInString(v) > maxPreferenceLen {
			return append(errs, domain.FieldError{Field: field, Message: "entry too long"})
		}
	}
	return errs
}

func applyPreferences(current domain.Preferences, input UpdatePreferencesInput) domain.Preferences {
	next := current
	if input.SaveTypes != nil {
		next.SaveTypes = domain.NormalizeTags(input.SaveTypes)
	}
	if input.Goals != nil {
		next.Goals = domain.NormalizeTags(input.Goals)
	}
	if input.OnboardingCompleted != nil {
		next.OnboardingCompleted = *input.OnboardingCompleted
	}
	return next
}
