package keys

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

type stubCredentialSource struct {
	cfg     *entity.TenantRenderConfig
	cred    *entity.TenantCredential
	cfgErr  error
	credErr error
}

func (s *stubCredentialSource) GetRenderConfig(_ context.Context, _ uuid.UUID) (*entity.TenantRenderConfig, error) {
	return s.cfg, s.cfgErr
}

func (s *stubCredentialSource) GetCredential(_ context.Context, _ uuid.UUID) (*entity.TenantCredential, error) {
	return s.cred, s.credErr
}

func mustCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipher(testKeyHex)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	return c
}

func sealKey(t *testing.T, c *Cipher, plain string) string {
	t.Helper()
	sealed, err := c.Encrypt(plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	return sealed
}

func TestResolveTenantCredentialWins(t *testing.T) {
	cipher := mustCipher(t)
	src := &stubCredentialSource{
		cred: &entity.TenantCredential{
			TenantID:        uuid.New(),
			EncryptedAPIKey: sealKey(t, cipher, "sk-tenant"),
		},
		// zero credits on purpose: a stored key never touches the ledger
		cfg: &entity.TenantRenderConfig{PlanTier: constants.PlanTierZero},
	}
	r := NewResolver(src, cipher, "sk-platform", nil)

	res, err := r.Resolve(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Credential != "sk-tenant" {
		t.Errorf("Credential = %q, want tenant key", res.Credential)
	}
	if res.Source != constants.KeySourceTenant {
		t.Errorf("Source = %q, want tenant", res.Source)
	}
}

func TestResolveGraceFallback(t *testing.T) {
	cipher := mustCipher(t)
	src := &stubCredentialSource{
		cfg: &entity.TenantRenderConfig{
			PlanTier:          constants.PlanTierZero,
			GraceCreditsTotal: 3,
			GraceCreditsUsed:  2,
		},
	}
	r := NewResolver(src, cipher, "sk-platform", nil)

	res, err := r.Resolve(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Credential != "sk-platform" {
		t.Errorf("Credential = %q, want platform key", res.Credential)
	}
	if res.Source != constants.KeySourcePlatformGrace {
		t.Errorf("Source = %q, want platform_grace", res.Source)
	}
}

func TestResolveUndecryptableCredentialFallsThrough(t *testing.T) {
	cipher := mustCipher(t)
	src := &stubCredentialSource{
		cred: &entity.TenantCredential{EncryptedAPIKey: "not base64!!"},
		cfg: &entity.TenantRenderConfig{
			PlanTier:          constants.PlanTierZero,
			GraceCreditsTotal: 1,
		},
	}
	r := NewResolver(src, cipher, "sk-platform", nil)

	res, err := r.Resolve(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Source != constants.KeySourcePlatformGrace {
		t.Errorf("Source = %q, want grace fallback after bad credential", res.Source)
	}
}

func TestResolveBlockReasons(t *testing.T) {
	cases := []struct {
		name        string
		cfg         *entity.TenantRenderConfig
		platformKey string
		want        constants.BlockReason
	}{
		{
			name:        "paid tier without key",
			cfg:         &entity.TenantRenderConfig{PlanTier: "pro"},
			platformKey: "sk-platform",
			want:        constants.BlockMissingTenantKey,
		},
		{
			name: "grace exhausted",
			cfg: &entity.TenantRenderConfig{
				PlanTier:          constants.PlanTierZero,
				GraceCreditsTotal: 2,
				GraceCreditsUsed:  2,
			},
			platformKey: "sk-platform",
			want:        constants.BlockGraceExhausted,
		},
		{
			name: "platform key not configured",
			cfg: &entity.TenantRenderConfig{
				PlanTier:          constants.PlanTierZero,
				GraceCreditsTotal: 2,
			},
			platformKey: "",
			want:        constants.BlockMissingPlatformKey,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResolver(&stubCredentialSource{cfg: tc.cfg}, mustCipher(t), tc.platformKey, nil)
			_, err := r.Resolve(context.Background(), uuid.New())

			var blocked *BlockedError
			if !errors.As(err, &blocked) {
				t.Fatalf("err = %v, want BlockedError", err)
			}
			if blocked.Reason != tc.want {
				t.Errorf("Reason = %q, want %q", blocked.Reason, tc.want)
			}
			if !errors.Is(err, common.ErrPolicyBlocked) {
				t.Error("BlockedError must unwrap to ErrPolicyBlocked")
			}
		})
	}
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("db down")
	r := NewResolver(&stubCredentialSource{credErr: boom}, mustCipher(t), "sk", nil)
	if _, err := r.Resolve(context.Background(), uuid.New()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
