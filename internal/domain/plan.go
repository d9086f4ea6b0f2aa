package domain

// PlanType is the subscription tier of a user.
type PlanType string

const (
	PlanFree PlanType = "free"
	PlanPro  PlanType = "pro"
)

func (p PlanType) String() string { return string(p) }

func (p PlanType) IsValid() bool {
	switch p {
	case PlanFree, PlanPro:
		return true
	}
	return false
}

// Unlimited marks a countable limit without a cap.
const Unlimited = -1

// Feature is a boolean capability gated by plan.
type Feature string

const (
	FeatureAdvancedSearch Feature = "advanced_search"
	FeatureSmartReminders Feature = "smart_reminders"
	FeatureVaultExport    Feature = "vault_export"
	FeatureAIFeatures     Feature = "ai_features"
)

// DisplayName returns the human-readable feature name used in client messages.
func (f Feature) DisplayName() string {
	switch f {
	case FeatureAdvancedSearch:
		return "Advanced search"
	case FeatureSmartReminders:
		return "Smart reminders"
	case FeatureVaultExport:
		return "Vault export"
	case FeatureAIFeatures:
		return "AI insights"
	}
	return string(f)
}

// Resource is a countable entity capped by plan.
type Resource string

const (
	ResourceCollections Resource = "collections"
	ResourceItems       Resource = "items"
)

// PlanLimits is the capability table of one plan.
type PlanLimits struct {
	MaxCollections int
	MaxItems       int
	AdvancedSearch bool
	SmartReminders bool
	VaultExport    bool
	AIFeatures     bool
}

var (
	FreeLimits = PlanLimits{
		MaxCollections: 5,
		MaxItems:       50,
	}
	ProLimits = PlanLimits{
		MaxCollections: Unlimited,
		MaxItems:       Unlimited,
		AdvancedSearch: true,
		SmartReminders: true,
		VaultExport:    true,
		AIFeatures:     true,
	}
)

// LimitsForPlan returns the static limit table of a plan. Unknown plans get
// the free table.
func LimitsForPlan(p PlanType) PlanLimits {
	if p == PlanPro {
		return ProLimits
	}
	return FreeLimits
}

// Allows reports whether the boolean feature is enabled.
func (l PlanLimits) Allows(f Feature) bool {
	switch f {
	case FeatureAdvancedSearch:
		return l.AdvancedSearch
	case FeatureSmartReminders:
		return l.SmartReminders
	case FeatureVaultExport:
		return l.VaultExport
	case FeatureAIFeatures:
		return l.AIFeatures
	}
	return false
}

// Max returns the cap for a countable resource, or Unlimited.
func (l PlanLimits) Max(r Resource) int {
	switch r {
	case ResourceCollections:
		return l.MaxCollections
	case ResourceItems:
		return l.MaxItems
	}
	return 0
}

// Admits reports whether one more resource may be created when count
// resources already exist. A limit of N admits exactly N resources.
func (l PlanLimits) Admits(r Resource, count int) bool {
	max := l.Max(r)
	return max == Unlimited || count < max
}
