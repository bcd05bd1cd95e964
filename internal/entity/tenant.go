package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TenantRenderConfig is the tenant layer of the render policy plus the
// grace-credit ledger.
type TenantRenderConfig struct {
	TenantID           uuid.UUID       `json:"tenant_id"`
	PlanTier           string          `json:"plan_tier"`
	GraceCreditsTotal  int             `json:"grace_credits_total"`
	GraceCreditsUsed   int             `json:"grace_credits_used"`
	RenderingEnabled   *bool           `json:"rendering_enabled,omitempty"`
	LegacyAIEnabled    *bool           `json:"legacy_ai_enabled,omitempty"`
	RenderingMaxPerDay int             `json:"rendering_max_per_day"`
	StylePreferences   json.RawMessage `json:"style_preferences,omitempty"`
	IndustryKey        string          `json:"industry_key,omitempty"`
}

// GraceCreditsRemaining never goes negative even if the ledger is dirty.
func (c *TenantRenderConfig) GraceCreditsRemaining() int {
	if r := c.GraceCreditsTotal - c.GraceCreditsUsed; r > 0 {
		return r
	}
	return 0
}

// TenantCredential is a tenant's stored image-generation API key.
type TenantCredential struct {
	TenantID        uuid.UUID `json:"tenant_id"`
	EncryptedAPIKey string    `json:"-"`
	UpdatedAt       time.Time `json:"updated_at"`
}
