package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/config"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements registration, login and bearer-token authentication.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
