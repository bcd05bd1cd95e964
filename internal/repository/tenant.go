package repository

import (
	"context"
	"log/slog"

	entdialectsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantcredential"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantrenderconfig"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

type TenantRepository interface {
	GetRenderConfig(ctx context.Context, tenantID uuid.UUID) (*entity.TenantRenderConfig, error)
	// GetCredential returns (nil, nil) when the tenant stored no key.
	GetCredential(ctx context.Context, tenantID uuid.UUID) (*entity.TenantCredential, error)
	// ConsumeGraceCredit increments the used counter only while used < total
	// and reports whether a credit was actually taken.
	ConsumeGraceCredit(ctx context.Context, tenantID uuid.UUID) (bool, error)
	ListRenderConfigs(ctx context.Context) ([]*entity.TenantRenderConfig, error)
}

type tenantRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTenantRepository(entc *ent.Client, log *slog.Logger) TenantRepository {
	return &tenantRepo{ent: entc, log: log}
}

func (r *tenantRepo) GetRenderConfig(ctx context.Context, tenantID uuid.UUID) (*entity.TenantRenderConfig, error) {
	row, err := r.ent.TenantRenderConfig.Query().
		Where(tenantrenderconfig.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return configToEntity(row), nil
}

func (r *tenantRepo) GetCredential(ctx context.Context, tenantID uuid.UUID) (*entity.TenantCredential, error) {
	row, err := r.ent.TenantCredential.Query().
		Where(tenantcredential.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &entity.TenantCredential{
		TenantID:        row.TenantID,
		EncryptedAPIKey: row.EncryptedAPIKey,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

// ConsumeGraceCredit is the compare-and-swap form: the guard lives in the
// UPDATE predicate, so two racing consumers can never take the same last
// credit.
func (r *tenantRepo) ConsumeGraceCredit(ctx context.Context, tenantID uuid.UUID) (bool, error) {
	n, err := r.ent.TenantRenderConfig.Update().
		Where(
			tenantrenderconfig.TenantID(tenantID),
			func(s *entdialectsql.Selector) {
				s.Where(entdialectsql.ColumnsLT(
					s.C(tenantrenderconfig.FieldGraceCreditsUsed),
					s.C(tenantrenderconfig.FieldGraceCreditsTotal),
				))
			},
		).
		AddGraceCreditsUsed(1).
		Save(ctx)
	if err != nil {
		r.log.Error("grace credit consume failed", "tenant_id", tenantID, "err", err)
		return false, err
	}
	if n == 0 {
		r.log.Warn("grace credit consume found none remaining", "tenant_id", tenantID)
		return false, nil
	}
	r.log.Info("grace credit consumed", "tenant_id", tenantID)
	return true, nil
}

func (r *tenantRepo) ListRenderConfigs(ctx context.Context) ([]*entity.TenantRenderConfig, error) {
	rows, err := r.ent.TenantRenderConfig.Query().
		Order(tenantrenderconfig.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.TenantRenderConfig, 0, len(rows))
	for _, row := range rows {
		out = append(out, configToEntity(row))
	}
	return out, nil
}

func configToEntity(row *ent.TenantRenderConfig) *entity.TenantRenderConfig {
	return &entity.TenantRenderConfig{
		TenantID:           row.TenantID,
		PlanTier:           row.PlanTier,
		GraceCreditsTotal:  row.GraceCreditsTotal,
		GraceCreditsUsed:   row.GraceCreditsUsed,
		RenderingEnabled:   row.RenderingEnabled,
		LegacyAIEnabled:    row.LegacyAiEnabled,
		RenderingMaxPerDay: row.RenderingMaxPerDay,
		StylePreferences:   row.StylePreferences,
		IndustryKey:        row.IndustryKey,
	}
}
