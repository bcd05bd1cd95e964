package policy

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

type stubConfigSource struct {
	cfg *entity.TenantRenderConfig
	err error
}

func (s *stubConfigSource) GetRenderConfig(_ context.Context, _ uuid.UUID) (*entity.TenantRenderConfig, error) {
	return s.cfg, s.err
}

func boolPtr(b bool) *bool { return &b }

func testResolver(cfg *entity.TenantRenderConfig) *Resolver {
	industries := map[string]Layer{
		"roofing": {
			ModelID:        "industry-model",
			StylePreset:    "industry-style",
			PromptPreamble: "industry preamble",
			IndustryKey:    "roofing",
		},
	}
	platform := Layer{
		ModelID:        "platform-model",
		StylePreset:    "platform-style",
		PromptPreamble: "platform preamble",
	}
	return NewResolver(&stubConfigSource{cfg: cfg}, industries, platform, nil)
}

func TestResolvePrecedenceTenantWins(t *testing.T) {
	prefs, _ := json.Marshal(map[string]string{"model_id": "tenant-model"})
	cfg := &entity.TenantRenderConfig{
		TenantID:         uuid.New(),
		RenderingEnabled: boolPtr(true),
		StylePreferences: prefs,
		IndustryKey:      "roofing",
	}

	eff, err := testResolver(cfg).Resolve(context.Background(), cfg.TenantID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if eff.ModelID != "tenant-model" {
		t.Errorf("ModelID = %q, want tenant override", eff.ModelID)
	}
	// tenant had no opinion on these, industry should fill them
	if eff.StylePreset != "industry-style" {
		t.Errorf("StylePreset = %q, want industry value", eff.StylePreset)
	}
	if eff.PromptPreamble != "industry preamble" {
		t.Errorf("PromptPreamble = %q, want industry value", eff.PromptPreamble)
	}
	if eff.IndustryKey != "roofing" {
		t.Errorf("IndustryKey = %q, want roofing", eff.IndustryKey)
	}
}

func TestResolveFallsBackToPlatform(t *testing.T) {
	cfg := &entity.TenantRenderConfig{
		TenantID:         uuid.New(),
		RenderingEnabled: boolPtr(true),
		// no industry key, no style preferences
	}

	eff, err := testResolver(cfg).Resolve(context.Background(), cfg.TenantID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if eff.ModelID != "platform-model" {
		t.Errorf("ModelID = %q, want platform default", eff.ModelID)
	}
	if eff.StylePreset != "platform-style" {
		t.Errorf("StylePreset = %q, want platform default", eff.StylePreset)
	}
}

func TestResolveIndustryKeyCaseInsensitive(t *testing.T) {
	cfg := &entity.TenantRenderConfig{
		TenantID:         uuid.New(),
		RenderingEnabled: boolPtr(true),
		IndustryKey:      "ROOFING",
	}

	eff, err := testResolver(cfg).Resolve(context.Background(), cfg.TenantID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if eff.ModelID != "industry-model" {
		t.Errorf("ModelID = %q, want industry value for upper-cased key", eff.ModelID)
	}
}

func TestResolveEnablement(t *testing.T) {
	cases := []struct {
		name    string
		primary *bool
		legacy  *bool
		want    bool
	}{
		{"primary true", boolPtr(true), nil, true},
		{"primary false overrides legacy", boolPtr(false), boolPtr(true), false},
		{"legacy fallback", nil, boolPtr(true), true},
		{"legacy false", nil, boolPtr(false), false},
		{"both unset is disabled", nil, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &entity.TenantRenderConfig{
				TenantID:         uuid.New(),
				RenderingEnabled: tc.primary,
				LegacyAIEnabled:  tc.legacy,
			}
			eff, err := testResolver(cfg).Resolve(context.Background(), cfg.TenantID)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if eff.Enabled != tc.want {
				t.Errorf("Enabled = %v, want %v", eff.Enabled, tc.want)
			}
		})
	}
}

func TestResolveUnreadableStylePreferences(t *testing.T) {
	cfg := &entity.TenantRenderConfig{
		TenantID:         uuid.New(),
		RenderingEnabled: boolPtr(true),
		StylePreferences: json.RawMessage(`{not json`),
		IndustryKey:      "roofing",
	}

	eff, err := testResolver(cfg).Resolve(context.Background(), cfg.TenantID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// the broken blob contributes nothing; industry still applies
	if eff.ModelID != "industry-model" {
		t.Errorf("ModelID = %q, want industry value", eff.ModelID)
	}
}

func TestResolveCarriesMaxPerDay(t *testing.T) {
	cfg := &entity.TenantRenderConfig{
		TenantID:           uuid.New(),
		RenderingEnabled:   boolPtr(true),
		RenderingMaxPerDay: 7,
	}
	eff, err := testResolver(cfg).Resolve(context.Background(), cfg.TenantID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if eff.MaxPerDay != 7 {
		t.Errorf("MaxPerDay = %d, want 7", eff.MaxPerDay)
	}
}

func TestMergeFirstNonEmptyWins(t *testing.T) {
	out := Merge(
		Layer{ModelID: "a"},
		Layer{ModelID: "b", StylePreset: "s"},
		Layer{ModelID: "c", StylePreset: "x", PromptPreamble: "p"},
	)
	if out.ModelID != "a" || out.StylePreset != "s" || out.PromptPreamble != "p" {
		t.Errorf("Merge = %+v, want first-non-empty per field", out)
	}
}
