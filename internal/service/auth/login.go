package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Returns domain.ErrInvalidCredentials for an unknown email or a wrong password.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

// Authenticate validates a bearer token and resolves the current user.
// Fails with domain.ErrTokenExpired, domain.ErrTokenInvalid or
// domain.ErrUserGone, all of which match domain.ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserGone
		}
		return nil, fmt.Errorf("auth.Authenticate get user: %w", err)
	}

	return user, nil
}
