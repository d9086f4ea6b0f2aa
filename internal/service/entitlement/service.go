// Package entitlement maps a user's plan to its capability table and enforces
// it at gated operations.
package entitlement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/config"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

// userRepo defines the user repository interface needed by entitlement service.
type userRepo interface {
	UpdatePlan(ctx context.Context, id uuid.UUID, plan domain.PlanType, isPro bool, expiresAt *time.Time) (*domain.User, error)
}

// resourceCounter counts the resources a user owns.
type resourceCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service implements plan checks, plan summary and simulated billing.
type Service struct {
	log         *slog.Logger
	users       userRepo
	items       resourceCounter
	collections resourceCounter
	cfg         config.PlanConfig
	now         func() time.Time
}

// NewService creates a new entitlement service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	items resourceCounter,
	collections resourceCounter,
	cfg config.PlanConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "entitlement"),
		users:       users,
		items:       items,
		collections: collections,
		cfg:         cfg,
		now:         time.Now,
	}
}

// LimitsFor returns the capability table of the user's plan.
func (s *Service) LimitsFor(user *domain.User) domain.PlanLimits {
	return user.Limits()
}

// RequireFeature fails with a *domain.LimitError unless the user's plan
// enables the feature. ai_features is only enforced when configured.
func (s *Service) RequireFeature(user *domain.User, f domain.Feature) error {
	if f == domain.FeatureAIFeatures && !s.cfg.GateAIFeatures {
		return nil
	}
	if !s.LimitsFor(user).Allows(f) {
		return domain.NewFeatureError(f)
	}
	return nil
}

// CheckQuota fails with a *domain.LimitError when the user already owns as
// many resources of the kind as the plan admits.
func (s *Service) CheckQuota(ctx context.Context, user *domain.User, r domain.Resource) error {
	limits := s.LimitsFor(user)
	if limits.Max(r) == domain.Unlimited {
		return nil
	}

	count, err := s.count(ctx, user.ID, r)
	if err != nil {
		return err
	}

	if !limits.Admits(r, count) {
		s.log.InfoContext(ctx, "plan limit reached",
			slog.String("user_id", user.ID.String()),
			slog.String("resource", string(r)),
			slog.Int("count", count))
		return domain.NewResourceLimitError(r, limits.Max(r))
	}
	return nil
}

func (s *Service) count(ctx context.Context, userID uuid.UUID, r domain.Resource) (int, error) {
	var counter resourceCounter
	switch r {
	case domain.ResourceItems:
		counter = s.items
	case domain.ResourceCollections:
		counter = s.collections
	default:
		return 0, fmt.Errorf("entitlement: unknown resource %q", r)
	}

	n, err := counter.CountByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("entitlement count %s: %w", r, err)
	}
	return n, nil
}
