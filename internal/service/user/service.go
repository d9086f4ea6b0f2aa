// Package user implements profile lookup and onboarding preferences.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.Preferences) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and preference operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
	}
}
