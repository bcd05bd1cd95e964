package keys

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

// CredentialSource is the slice of the tenant repository the resolver needs.
type CredentialSource interface {
	GetRenderConfig(ctx context.Context, tenantID uuid.UUID) (*entity.TenantRenderConfig, error)
	GetCredential(ctx context.Context, tenantID uuid.UUID) (*entity.TenantCredential, error)
}

// Resolution carries the credential a render will run with and who pays.
type Resolution struct {
	Credential string
	Source     constants.KeySource
}

// BlockedError is the terminal key-policy outcome for a job; no generation
// is attempted and no credit is consumed.
type BlockedError struct {
	Reason constants.BlockReason
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("key policy blocked: %s", e.Reason)
}

func (e *BlockedError) Unwrap() error { return common.ErrPolicyBlocked }

// Resolver decides tenant-credential vs platform-grace-credit vs hard block.
type Resolver struct {
	tenants     CredentialSource
	cipher      *Cipher
	platformKey string
	logger      *slog.Logger
}

func NewResolver(tenants CredentialSource, cipher *Cipher, platformKey string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		tenants:     tenants,
		cipher:      cipher,
		platformKey: platformKey,
		logger:      logger,
	}
}

// Resolve runs after the quota gate and before generation. Order:
//  1. a decryptable tenant credential always wins, no quota interaction;
//  2. tier0 tenants with grace credits remaining fall back to the platform
//     key (the credit is consumed only after the render succeeds);
//  3. everything else is blocked with a specific reason.
func (r *Resolver) Resolve(ctx context.Context, tenantID uuid.UUID) (*Resolution, error) {
	cred, err := r.tenants.GetCredential(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if cred != nil {
		plain, err := r.cipher.Decrypt(cred.EncryptedAPIKey)
		if err == nil && plain != "" {
			return &Resolution{Credential: plain, Source: constants.KeySourceTenant}, nil
		}
		// undecryptable stored key is treated as missing, not fatal
		r.logger.Warn("tenant credential undecryptable, falling through",
			"tenant_id", tenantID, "err", err)
	}

	cfg, err := r.tenants.GetRenderConfig(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if cfg.PlanTier != constants.PlanTierZero {
		return nil, &BlockedError{Reason: constants.BlockMissingTenantKey}
	}
	if cfg.GraceCreditsRemaining() <= 0 {
		return nil, &BlockedError{Reason: constants.BlockGraceExhausted}
	}
	if r.platformKey == "" {
		return nil, &BlockedError{Reason: constants.BlockMissingPlatformKey}
	}

	r.logger.Info("render billed to platform grace",
		"tenant_id", tenantID, "credits_remaining", cfg.GraceCreditsRemaining())
	return &Resolution{Credential: r.platformKey, Source: constants.KeySourcePlatformGrace}, nil
}
