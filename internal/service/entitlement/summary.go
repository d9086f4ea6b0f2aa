package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Usage holds resource counts of a user.
type Usage struct {
	Items       int
	Collections int
}

// Features is the effective feature map of a user.
type Features struct {
	UnlimitedCollections bool
	AdvancedSearch       bool
	SmartReminders       bool
	VaultExport          bool
	AIFeatures           bool
}

// PlanSummary reports a user's plan, limits and usage.
type PlanSummary struct {
	PlanType         domain.PlanType
	IsPro            bool
	ProExpiresAt     *time.Time
	Limits           domain.PlanLimits
	Usage            Usage
	Features         Features
	ApproachingLimit bool
	UpgradeNudge     *string
}

// Summary builds the plan overview. The advisory fields never block anything.
func (s *Service) Summary(ctx context.Context, user *domain.User) (*PlanSummary, error) {
	items, err := s.items.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("entitlement.Summary count items: %w", err)
	}
	collections, err := s.collections.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("entitlement.Summary count collections: %w", err)
	}

	limits := s.LimitsFor(user)
	plan := domain.PlanFree
	if user.HasPro() {
		plan = domain.PlanPro
	}

	summary := &PlanSummary{
		PlanType:     plan,
		IsPro:        user.HasPro(),
		ProExpiresAt: user.ProExpiresAt,
		Limits:       limits,
		Usage:        Usage{Items: items, Collections: collections},
		Features: Features{
			UnlimitedCollections: limits.MaxCollections == domain.Unlimited,
			AdvancedSearch:       s.RequireFeature(user, domain.FeatureAdvancedSearch) == nil,
			SmartReminders:       s.RequireFeature(user, domain.FeatureSmartReminders) == nil,
			VaultExport:          s.RequireFeature(user, domain.FeatureVaultExport) == nil,
			AIFeatures:           s.RequireFeature(user, domain.FeatureAIFeatures) == nil,
		},
	}

	// With gating off, AI features are open to every plan; report the limit
	// the same way the feature map does.
	summary.Limits.AIFeatures = summary.Features.AIFeatures

	summary.ApproachingLimit, summary.UpgradeNudge = s.nudge(limits, summary.Usage)
	return summary, nil
}

func (s *Service) nudge(limits domain.PlanLimits, usage Usage) (bool, *string) {
	if limits.MaxItems != domain.Unlimited && usage.Items >= s.cfg.ItemWarningThreshold {
		msg := fmt.Sprintf("You've saved %d of %d items. Upgrade to Pro for unlimited saves.", usage.Items, limits.MaxItems)
		return true, &msg
	}
	if limits.MaxCollections != domain.Unlimited && usage.Collections >= limits.MaxCollections {
		msg := fmt.Sprintf("You've reached the %d collection limit. Upgrade to Pro for unlimited collections.", limits.MaxCollections)
		return true, &msg
	}
	return false, nil
}
