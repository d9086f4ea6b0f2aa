package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/service/entitlement"
	"github.com/heartmarshall/stash-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Preferences(u *domain.User) domain.Preferences
	UpdatePreferences(ctx context.Context, u *domain.User, input user.UpdatePreferencesInput) (domain.Preferences, error)
}

// planService defines the plan operations needed by UserHandler.
type planService interface {
	Summary(ctx context.Context, user *domain.User) (*entitlement.PlanSummary, error)
	Upgrade(ctx context.Context, user *domain.User) (*domain.User, error)
	Cancel(ctx context.Context, user *domain.User) (*domain.User, error)
}

// UserHandler serves preference and plan endpoints.
type UserHandler struct {
	users userService
	plans planService
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, plans planService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, plans: plans, log: logger.With("handler", "user")}
}

type preferencesView struct {
	SaveTypes           []string `json:"save_types"`
	Goals               []string `json:"goals"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
}

type preferencesRequest struct {
	SaveTypes           []string `json:"save_types"`
	Goals               []string `json:"goals"`
	OnboardingCompleted *bool    `json:"onboarding_completed"`
}

type limitsView struct {
	MaxCollections int  `json:"max_collections"`
	MaxItems       int  `json:"max_items"`
	AdvancedSearch bool `json:"advanced_search"`
	SmartReminders bool `json:"smart_reminders"`
	VaultExport    bool `json:"vault_export"`
	AIFeatures     bool `json:"ai_features"`
}

type usageView struct {
	Items       int `json:"items"`
	Collections int `json:"collections"`
}

type featuresView struct {
	UnlimitedCollections bool `json:"unlimited_collections"`
	AdvancedSearch       bool `json:"advanced_search"`
	SmartReminders       bool `json:"smart_reminders"`
	VaultExport          bool `json:"vault_export"`
	AIFeatures           bool `json:"ai_features"`
}

type planView struct {
	PlanType         string       `json:"plan_type"`
	IsPro            bool         `json:"is_pro"`
	ProExpiresAt     *time.Time   `json:"pro_expires_at"`
	Limits           limitsView   `json:"limits"`
	Usage            usageView    `json:"usage"`
	Features         featuresView `json:"features"`
	ApproachingLimit bool         `json:"approaching_limit"`
	UpgradeNudge     *string      `json:"upgrade_nudge"`
}

type planChangeResponse struct {
	Message      string     `json:"message"`
	PlanType     string     `json:"plan_type"`
	IsPro        bool       `json:"is_pro"`
	ProExpiresAt *time.Time `json:"pro_expires_at"`
}

func toPreferencesView(p domain.Preferences) preferencesView {
	return preferencesView{
		SaveTypes:           nonNil(p.SaveTypes),
		Goals:               nonNil(p.Goals),
		OnboardingCompleted: p.OnboardingCompleted,
	}
}

// Preferences handles GET /users/preferences.
func (h *UserHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toPreferencesView(h.users.Preferences(u)))
}

// UpdatePreferences handles PUT /users/preferences.
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req preferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prefs, err := h.users.UpdatePreferences(r.Context(), u, user.UpdatePreferencesInput{
		SaveTypes:           req.SaveTypes,
		Goals:               req.Goals,
		OnboardingCompleted: req.OnboardingCompleted,
	})
	if err != nil {
		respondError(w, r, h.log, err, "User")
		return
	}
	writeJSON(w, http.StatusOK, toPreferencesView(prefs))
}

// Plan handles GET /users/plan.
func (h *UserHandler) Plan(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	s, err := h.plans.Summary(r.Context(), u)
	if err != nil {
		respondError(w, r, h.log, err, "User")
		return
	}

	writeJSON(w, http.StatusOK, planView{
		PlanType:     s.PlanType.String(),
		IsPro:        s.IsPro,
		ProExpiresAt: s.ProExpiresAt,
		Limits: limitsView{
			MaxCollections: s.Limits.MaxCollections,
			MaxItems:       s.Limits.MaxItems,
			AdvancedSearch: s.Limits.AdvancedSearch,
			SmartReminders: s.Limits.SmartReminders,
			VaultExport:    s.Limits.VaultExport,
			AIFeatures:     s.Limits.AIFeatures,
		},
		Usage: usageView{Items: s.Usage.Items, Collections: s.Usage.Collections},
		Features: featuresView{
			UnlimitedCollections: s.Features.UnlimitedCollections,
			AdvancedSearch:       s.Features.AdvancedSearch,
			SmartReminders:       s.Features.SmartReminders,
			VaultExport:          s.Features.VaultExport,
			AIFeatures:           s.Features.AIFeatures,
		},
		ApproachingLimit: s.ApproachingLimit,
		UpgradeNudge:     s.UpgradeNudge,
	})
}

// UpgradePro handles POST /users/upgrade-pro.
func (h *UserHandler) UpgradePro(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	updated, err := h.plans.Upgrade(r.Context(), u)
	if err != nil {
		respondError(w, r, h.log, err, "User")
		return
	}
	writeJSON(w, http.StatusOK, toPlanChange("Upgraded to Pro", updated))
}

// CancelPro handles POST /users/cancel-pro.
func (h *UserHandler) CancelPro(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	updated, err := h.plans.Cancel(r.Context(), u)
	if err != nil {
		respondError(w, r, h.log, err, "User")
		return
	}
	writeJSON(w, http.StatusOK, toPlanChange("Pro subscription cancelled", updated))
}

func toPlanChange(msg string, u *domain.User) planChangeResponse {
	return planChangeResponse{
		Message:      msg,
		PlanType:     u.PlanType.String(),
		IsPro:        u.IsPro,
		ProExpiresAt: u.ProExpiresAt,
	}
}
