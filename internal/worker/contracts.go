package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/keys"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/notify"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/policy"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/quota"
)

// The worker depends on narrow store contracts rather than the concrete
// repositories; internal/repository satisfies all of them.

// JobStore is the slice of the render job repository the worker drives.
type JobStore interface {
	Claim(ctx context.Context, maxCount int, staleBefore time.Time) ([]*entity.RenderJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.RenderJob, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

// QuoteStore reads customer input and writes the render projection.
type QuoteStore interface {
	GetByID(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error)
	MarkRenderRunning(ctx context.Context, quoteID uuid.UUID) error
	SetRenderSuccess(ctx context.Context, quoteID uuid.UUID, imageURL, prompt string) error
	SetRenderFailure(ctx context.Context, quoteID uuid.UUID, message string) error
}

// CreditStore burns grace credits after successful platform-billed renders.
type CreditStore interface {
	ConsumeGraceCredit(ctx context.Context, tenantID uuid.UUID) (bool, error)
}

// PolicyResolver yields the effective render config for a tenant.
type PolicyResolver interface {
	Resolve(ctx context.Context, tenantID uuid.UUID) (*policy.EffectiveRenderConfig, error)
}

// QuotaGate enforces the soft daily cap.
type QuotaGate interface {
	Check(ctx context.Context, tenantID uuid.UUID, maxPerDay int) (quota.Decision, error)
}

// KeyResolver picks the credential a render bills against.
type KeyResolver interface {
	Resolve(ctx context.Context, tenantID uuid.UUID) (*keys.Resolution, error)
}

// Notifier fires the best-effort emails; its report is metadata only.
type Notifier interface {
	Notify(ctx context.Context, tenantID uuid.UUID, quote *entity.Quote, out notify.Outcome) notify.Report
}
