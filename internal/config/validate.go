package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Metadata.Timeout <= 0 {
		return fmt.Errorf("metadata.timeout must be > 0 (got %v)", c.Metadata.Timeout)
	}
	if c.Metadata.MaxTitleLen <= 0 {
		return fmt.Errorf("metadata.max_title_len must be > 0 (got %d)", c.Metadata.MaxTitleLen)
	}

	if c.LLM.Enabled() && strings.TrimSpace(c.LLM.Model) == "" {
		return fmt.Errorf("llm.model is required when llm.api_key is set")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0 (got %v)", c.LLM.Timeout)
	}

	if c.Plan.ProDuration <= 0 {
		return fmt.Errorf("plan.pro_duration must be > 0 (got %v)", c.Plan.ProDuration)
	}
	if c.Plan.ItemWarningThreshold < 0 {
		return fmt.Errorf("plan.item_warning_threshold must be >= 0 (got %d)", c.Plan.ItemWarningThreshold)
	}

	if c.RateLimit.PerIP < 0 || c.RateLimit.PerUserFree < 0 || c.RateLimit.PerUserPro < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	return nil
}
