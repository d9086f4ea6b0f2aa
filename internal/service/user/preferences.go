package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Preferences returns the user's onboarding preferences. Lists are never nil.
func (s *Service) Preferences(user *domain.User) domain.Preferences {
	p := user.Preferences
	if p.SaveTypes == nil {
		p.SaveTypes = []string{}
	}
	if p.Goals == nil {
		p.Goals = []string{}
	}
	return p
}

// UpdatePreferences merges input into the stored preferences.
func (s *Service) UpdatePreferences(ctx context.Context, user *domain.User, input UpdatePreferencesInput) (domain.Preferences, error) {
	if err := input.Validate(); err != nil {
		return domain.Preferences{}, err
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, user.ID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		updated, err = s.users.UpdatePreferences(txCtx, user.ID, applyPreferences(current.Preferences, input))
		if err != nil {
			return fmt.Errorf("update preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("user.UpdatePreferences: %w", err)
	}

	s.log.InfoContext(ctx, "preferences updated", slog.String("user_id", user.ID.String()))

	return s.Preferences(updated), nil
}
