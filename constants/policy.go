package constants

// PlanTier values relevant to render policy. Only tier0 is entitled to
// platform grace credits; everything else must store its own credential.
const (
	PlanTierZero = "tier0"
)

// KeySource tells the worker which credential a render will bill against.
type KeySource string

const (
	KeySourceTenant        KeySource = "tenant"
	KeySourcePlatformGrace KeySource = "platform_grace"
)

// BlockReason explains why the key resolver refused to produce a credential.
type BlockReason string

const (
	BlockMissingTenantKey   BlockReason = "MISSING_TENANT_KEY"
	BlockGraceExhausted     BlockReason = "GRACE_EXHAUSTED"
	BlockMissingPlatformKey BlockReason = "MISSING_PLATFORM_KEY"
)

// FailureCode values stored on failed render jobs. These are stable strings;
// dashboards and the quote projection surface them verbatim.
const (
	FailureRenderingDisabled = "TENANT_RENDERING_DISABLED"
	FailureQuotaExceeded     = "QUOTA_EXCEEDED"
	FailureQuoteNotFound     = "QUOTE_NOT_FOUND"
	FailureGeneration        = "GENERATION_FAILED"
	FailureStorage           = "STORAGE_FAILED"
	FailureInternal          = "INTERNAL_ERROR"
)
