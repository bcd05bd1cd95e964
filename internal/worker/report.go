package worker

import (
	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/notify"
)

// RunParams shape one worker invocation.
type RunParams struct {
	MaxJobs int
	// Debug attaches redacted diagnostics to every processed job.
	Debug bool
}

// RunReport is the invocation summary returned to the trigger caller.
type RunReport struct {
	Claimed    int         `json:"claimed"`
	Processed  []JobReport `json:"processed"`
	DurationMs int64       `json:"durationMs"`
}

// JobReport is the per-job slice of the invocation summary.
type JobReport struct {
	JobID       uuid.UUID      `json:"jobId"`
	QuoteID     uuid.UUID      `json:"quoteId"`
	Outcome     string         `json:"outcome"` // done | failed | error
	FailureCode string         `json:"failureCode,omitempty"`
	Error       string         `json:"error,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Notified    *notify.Report `json:"notified,omitempty"`
	Debug       *Diagnostics   `json:"debug,omitempty"`
}

// Diagnostics is the redacted debug payload. Raw secrets are never echoed;
// the credential appears only as a sha256 prefix.
type Diagnostics struct {
	PolicyEnabled    bool   `json:"policyEnabled"`
	ModelID          string `json:"modelId,omitempty"`
	IndustryKey      string `json:"industryKey,omitempty"`
	QuotaUsedToday   int    `json:"quotaUsedToday"`
	QuotaMaxPerDay   int    `json:"quotaMaxPerDay"`
	KeySource        string `json:"keySource,omitempty"`
	CredentialSHA256 string `json:"credentialSha256,omitempty"`
	Conditioned      bool   `json:"conditioned"`
}
