package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestGetRenderConfig(t *testing.T) {
	client := newTestClient(t)
	repo := NewTenantRepository(client, testLogger())
	ctx := context.Background()

	tenantID := uuid.New()
	prefs, _ := json.Marshal(map[string]string{"model_id": "custom"})
	_, err := client.TenantRenderConfig.Create().
		SetTenantID(tenantID).
		SetPlanTier("tier0").
		SetGraceCreditsTotal(3).
		SetGraceCreditsUsed(1).
		SetRenderingEnabled(true).
		SetRenderingMaxPerDay(10).
		SetStylePreferences(prefs).
		SetIndustryKey("roofing").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cfg, err := repo.GetRenderConfig(ctx, tenantID)
	if err != nil {
		t.Fatalf("GetRenderConfig: %v", err)
	}
	if cfg.TenantID != tenantID || cfg.PlanTier != "tier0" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.RenderingEnabled == nil || !*cfg.RenderingEnabled {
		t.Error("rendering_enabled not mapped")
	}
	if cfg.GraceCreditsRemaining() != 2 {
		t.Errorf("remaining = %d", cfg.GraceCreditsRemaining())
	}
	if cfg.IndustryKey != "roofing" || cfg.RenderingMaxPerDay != 10 {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := repo.GetRenderConfig(ctx, uuid.New()); err == nil {
		t.Error("unknown tenant must error")
	}
}

func TestGetCredentialAbsentIsNilNil(t *testing.T) {
	client := newTestClient(t)
	repo := NewTenantRepository(client, testLogger())
	ctx := context.Background()

	cred, err := repo.GetCredential(ctx, uuid.New())
	if err != nil {
		t.Fatalf("GetCredential: %v", err)
	}
	if cred != nil {
		t.Errorf("cred = %+v, want nil for tenant without a key", cred)
	}

	tenantID := uuid.New()
	if _, err := client.TenantCredential.Create().
		SetTenantID(tenantID).
		SetEncryptedAPIKey("sealed").
		Save(ctx); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	cred, err = repo.GetCredential(ctx, tenantID)
	if err != nil {
		t.Fatalf("GetCredential: %v", err)
	}
	if cred == nil || cred.EncryptedAPIKey != "sealed" {
		t.Errorf("cred = %+v", cred)
	}
}

func TestConsumeGraceCreditStopsAtTotal(t *testing.T) {
	client := newTestClient(t)
	repo := NewTenantRepository(client, testLogger())
	ctx := context.Background()

	tenantID := uuid.New()
	if _, err := client.TenantRenderConfig.Create().
		SetTenantID(tenantID).
		SetGraceCreditsTotal(2).
		Save(ctx); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	for i := 0; i < 2; i++ {
		taken, err := repo.ConsumeGraceCredit(ctx, tenantID)
		if err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
		if !taken {
			t.Fatalf("consume %d: no credit taken", i)
		}
	}

	taken, err := repo.ConsumeGraceCredit(ctx, tenantID)
	if err != nil {
		t.Fatalf("consume past total: %v", err)
	}
	if taken {
		t.Error("credit taken past total")
	}

	cfg, err := repo.GetRenderConfig(ctx, tenantID)
	if err != nil {
		t.Fatalf("GetRenderConfig: %v", err)
	}
	if cfg.GraceCreditsUsed != 2 {
		t.Errorf("used = %d, want exactly total", cfg.GraceCreditsUsed)
	}
}

func TestConsumeGraceCreditOvershootAttempts(t *testing.T) {
	client := newTestClient(t)
	repo := NewTenantRepository(client, testLogger())
	ctx := context.Background()

	tenantID := uuid.New()
	if _, err := client.TenantRenderConfig.Create().
		SetTenantID(tenantID).
		SetGraceCreditsTotal(3).
		Save(ctx); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	// the guard lives in the UPDATE predicate, so any number of attempts
	// takes exactly the total
	taken := 0
	for i := 0; i < 8; i++ {
		ok, err := repo.ConsumeGraceCredit(ctx, tenantID)
		if err != nil {
			t.Fatalf("consume: %v", err)
		}
		if ok {
			taken++
		}
	}
	if taken != 3 {
		t.Errorf("taken = %d, want exactly the credit total", taken)
	}
}

func TestListRenderConfigs(t *testing.T) {
	client := newTestClient(t)
	repo := NewTenantRepository(client, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.TenantRenderConfig.Create().
			SetTenantID(uuid.New()).
			Save(ctx); err != nil {
			t.Fatalf("seed config: %v", err)
		}
	}
	configs, err := repo.ListRenderConfigs(ctx)
	if err != nil {
		t.Fatalf("ListRenderConfigs: %v", err)
	}
	if len(configs) != 3 {
		t.Errorf("len = %d", len(configs))
	}
}
