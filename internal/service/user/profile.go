package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// FindByEmail looks a user up by email, ignoring case and surrounding spaces.
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.FindByEmail: %w", err)
	}
	return u, nil
}
