package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Register creates a new free-plan user with email + password and issues a
// bearer token. Returns domain.ErrEmailTaken if the address is registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = domain.NormalizeName(input.Name)

	if err := input.Validate(s.cfg.MinPasswordLen); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Register get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	name := input.Name
	if name == "" {
		name = input.Email[:strings.LastIndex(input.Email, "@")]
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         name,
		PlanType:     domain.PlanFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Unique index on lower(email) catches a concurrent registration.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
