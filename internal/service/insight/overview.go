package insight

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// ReminderReason explains why an item is surfaced as a reminder.
type ReminderReason string

const (
	ReasonPendingActions ReminderReason = "pending_actions"
	ReasonUnreviewed     ReminderReason = "unreviewed"
)

// Overview is the library summary of the insights view.
type Overview struct {
	Stats            domain.ItemStats
	TotalCollections int
	WeeklyDigest     *string
}

// Reminder is an item worth revisiting.
type Reminder struct {
	Item      domain.SavedItem
	Reason    ReminderReason
	DaysSaved int
}

// Overview returns counts, platform breakdown, top tags and the weekly digest.
func (s *Service) Overview(ctx context.Context, user *domain.User) (*Overview, error) {
	now := s.now()
	weekStart := now.Add(-digestWindow)

	stats, err := s.items.Stats(ctx, user.ID, weekStart, topTagsLimit)
	if err != nil {
		return nil, fmt.Errorf("insight.Overview: %w", err)
	}

	collections, err := s.collections.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("insight.Overview: %w", err)
	}

	out := &Overview{Stats: stats, TotalCollections: collections}
	if stats.ThisWeek == 0 || !s.gen.Enabled() {
		return out, nil
	}

	recent, err := s.items.ListCreatedBetween(ctx, user.ID, weekStart, now, maxDigestItems)
	if err != nil {
		return nil, fmt.Errorf("insight.Overview: %w", err)
	}
	out.WeeklyDigest = s.gen.WeeklyDigest(ctx, recent)
	return out, nil
}

// Resurfaced returns a random handful of items saved at least 30 days ago.
func (s *Service) Resurfaced(ctx context.Context, user *domain.User) ([]domain.SavedItem, error) {
	items, err := s.items.SampleCreatedBefore(ctx, user.ID, s.now().Add(-resurfaceAge), resurfaceLimit)
	if err != nil {
		return nil, fmt.Errorf("insight.Resurfaced: %w", err)
	}
	return items, nil
}

// Reminders lists items with open action items or items left unreviewed
// for a week, oldest first.
func (s *Service) Reminders(ctx context.Context, user *domain.User) ([]Reminder, error) {
	if err := s.entitlements.RequireFeature(user, domain.FeatureSmartReminders); err != nil {
		return nil, fmt.Errorf("insight.Reminders: %w", err)
	}

	items, err := s.items.ListAll(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("insight.Reminders: %w", err)
	}

	now := s.now()
	out := make([]Reminder, 0, maxReminders)
	for _, it := range items {
		reason, ok := reminderReason(&it, now)
		if !ok {
			continue
		}
		out = append(out, Reminder{
			Item:      it,
			Reason:    reason,
			DaysSaved: int(now.Sub(it.CreatedAt) / (24 * time.Hour)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Item.CreatedAt.Before(out[j].Item.CreatedAt)
	})
	if len(out) > maxReminders {
		out = out[:maxReminders]
	}
	return out, nil
}

func reminderReason(it *domain.SavedItem, now time.Time) (ReminderReason, bool) {
	if it.HasPendingActions() {
		return ReasonPendingActions, true
	}
	if now.Sub(it.CreatedAt) >= unreviewedAge && it.Notes == "" && len(it.AISummary) == 0 {
		return ReasonUnreviewed, true
	}
	return "", false
}
