package policy

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

// ConfigSource is the slice of the tenant repository the resolver needs.
type ConfigSource interface {
	GetRenderConfig(ctx context.Context, tenantID uuid.UUID) (*entity.TenantRenderConfig, error)
}

// Resolver merges platform defaults, the industry pack, and tenant overrides
// into one effective render config per tenant.
type Resolver struct {
	tenants    ConfigSource
	industries map[string]Layer
	platform   Layer
	logger     *slog.Logger
}

func NewResolver(tenants ConfigSource, industries map[string]Layer, platform Layer, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		tenants:    tenants,
		industries: industries,
		platform:   platform,
		logger:     logger,
	}
}

// Resolve returns the effective config for tenantID. Precedence is
// tenant > industry > platform, first-non-empty per field. Enablement fails
// closed: primary flag, then the legacy flag, then disabled.
func (r *Resolver) Resolve(ctx context.Context, tenantID uuid.UUID) (*EffectiveRenderConfig, error) {
	cfg, err := r.tenants.GetRenderConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return r.resolveFrom(cfg), nil
}

func (r *Resolver) resolveFrom(cfg *entity.TenantRenderConfig) *EffectiveRenderConfig {
	tenantLayer := tenantLayerOf(cfg, r.logger)

	industryKey := tenantLayer.IndustryKey
	if industryKey == "" {
		industryKey = r.platform.IndustryKey
	}
	industryLayer := r.industries[strings.ToLower(industryKey)]

	merged := Merge(tenantLayer, industryLayer, r.platform)

	enabled := false
	switch {
	case cfg.RenderingEnabled != nil:
		enabled = *cfg.RenderingEnabled
	case cfg.LegacyAIEnabled != nil:
		enabled = *cfg.LegacyAIEnabled
	}

	return &EffectiveRenderConfig{
		Enabled:          enabled,
		ModelID:          merged.ModelID,
		StylePreset:      merged.StylePreset,
		NegativeGuidance: merged.NegativeGuidance,
		PromptPreamble:   merged.PromptPreamble,
		IndustryKey:      merged.IndustryKey,
		MaxPerDay:        cfg.RenderingMaxPerDay,
	}
}

// tenantLayerOf decodes the tenant's style_preferences blob into a partial
// layer. An unreadable blob contributes nothing rather than failing the job.
func tenantLayerOf(cfg *entity.TenantRenderConfig, logger *slog.Logger) Layer {
	var layer Layer
	if len(cfg.StylePreferences) > 0 {
		if err := json.Unmarshal(cfg.StylePreferences, &layer); err != nil {
			logger.Warn("tenant style_preferences unreadable",
				"tenant_id", cfg.TenantID, "err", err)
			layer = Layer{}
		}
	}
	layer.IndustryKey = cfg.IndustryKey
	return layer
}
