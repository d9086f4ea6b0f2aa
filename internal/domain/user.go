package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	PlanType     PlanType
	IsPro        bool
	ProExpiresAt *time.Time
	Preferences  Preferences
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPro reports whether the user is on the pro plan. Either flag counts.
func (u *User) HasPro() bool {
	return u.IsPro || u.PlanType == PlanPro
}

// Limits returns the capability table that applies to the user.
func (u *User) Limits() PlanLimits {
	if u.HasPro() {
		return ProLimits
	}
	return FreeLimits
}

// Preferences holds onboarding answers of a user.
type Preferences struct {
	SaveTypes           []string
	Goals               []string
	OnboardingCompleted bool
}
