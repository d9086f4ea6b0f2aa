package entitlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Upgrade moves the user to the pro plan for the configured duration.
// No payment is verified. Calling it again extends the expiry from now.
func (s *Service) Upgrade(ctx context.Context, user *domain.User) (*domain.User, error) {
	expiresAt := s.now().UTC().Add(s.cfg.ProDuration)

	updated, err := s.users.UpdatePlan(ctx, user.ID, domain.PlanPro, true, &expiresAt)
	if err != nil {
		return nil, fmt.Errorf("entitlement.Upgrade: %w", err)
	}

	s.log.InfoContext(ctx, "plan upgraded",
		slog.String("user_id", user.ID.String()),
		slog.Time("pro_expires_at", expiresAt))

	return updated, nil
}

// Cancel moves the user back to the free plan immediately.
func (s *Service) Cancel(ctx context.Context, user *domain.User) (*domain.User, error) {
	updated, err := s.users.UpdatePlan(ctx, user.ID, domain.PlanFree, false, nil)
	if err != nil {
		return nil, fmt.Errorf("entitlement.Cancel: %w", err)
	}

	s.log.InfoContext(ctx, "plan cancelled",
		slog.String("user_id", user.ID.String()))

	return updated, nil
}
