package worker

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/generation"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/keys"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/notify"
)

// maxStoredErrorLen bounds upstream error text captured onto job rows.
const maxStoredErrorLen = 500

// Config holds the invocation-level knobs. StaleAfter must match what the
// deployment considers "worker presumed dead", not a per-call timeout.
type Config struct {
	MaxJobsPerRun int
	StaleAfter    time.Duration
}

// Service is the render worker: it claims a batch and walks each job
// through policy, quota, key resolution, generation, upload, commit, and
// notification, sequentially and failure-isolated.
type Service struct {
	cfg       Config
	jobs      JobStore
	quotes    QuoteStore
	credits   CreditStore
	policy    PolicyResolver
	quota     QuotaGate
	keys      KeyResolver
	generator generation.Generator
	artifacts ArtifactStore
	committer *Committer
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// ArtifactStore mirrors artifact.Store without importing the package, so
// the contract sits next to the others.
type ArtifactStore interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
}

func NewService(
	cfg Config,
	jobs JobStore,
	quotes QuoteStore,
	credits CreditStore,
	policyResolver PolicyResolver,
	quotaGate QuotaGate,
	keyResolver KeyResolver,
	generator generation.Generator,
	artifacts ArtifactStore,
	committer *Committer,
	notifier Notifier,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxJobsPerRun <= 0 {
		cfg.MaxJobsPerRun = 5
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 10 * time.Minute
	}
	return &Service{
		cfg:       cfg,
		jobs:      jobs,
		quotes:    quotes,
		credits:   credits,
		policy:    policyResolver,
		quota:     quotaGate,
		keys:      keyResolver,
		generator: generator,
		artifacts: artifacts,
		committer: committer,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes one worker invocation: claim up to MaxJobs, then process the
// batch sequentially. One job failing never aborts the rest; only the claim
// itself can fail the invocation.
func (s *Service) Run(ctx context.Context, params RunParams) (*RunReport, error) {
	start := s.now()
	maxJobs := params.MaxJobs
	if maxJobs <= 0 {
		maxJobs = s.cfg.MaxJobsPerRun
	}

	staleBefore := s.now().Add(-s.cfg.StaleAfter)
	batch, err := s.jobs.Claim(ctx, maxJobs, staleBefore)
	if err != nil {
		return nil, common.WrapError(err, "claim batch")
	}

	report := &RunReport{Claimed: len(batch), Processed: make([]JobReport, 0, len(batch))}
	for _, job := range batch {
		jobCtx := common.WithJobID(ctx, job.ID.String())
		report.Processed = append(report.Processed, s.processJob(jobCtx, job, params.Debug))
	}

	report.DurationMs = time.Since(start).Milliseconds()
	s.logger.Info("worker.run.done",
		"claimed", report.Claimed, "elapsed_ms", report.DurationMs)
	return report, nil
}

func (s *Service) processJob(ctx context.Context, job *entity.RenderJob, debug bool) JobReport {
	rep := JobReport{JobID: job.ID, QuoteID: job.QuoteID, Outcome: "failed"}
	var diag Diagnostics
	if debug {
		rep.Debug = &diag
	}

	quote, err := s.quotes.GetByID(ctx, job.QuoteID)
	if err != nil {
		s.logger.Error("worker.quote_missing", "job_id", job.ID, "quote_id", job.QuoteID, "err", err)
		return s.fail(ctx, job, nil, rep, constants.FailureQuoteNotFound, err.Error())
	}
	// projection only; the job row is already running via the claim
	_ = s.quotes.MarkRenderRunning(ctx, job.QuoteID)

	eff, err := s.policy.Resolve(ctx, job.TenantID)
	if err != nil {
		return s.fail(ctx, job, quote, rep, constants.FailureInternal, "resolve policy: "+err.Error())
	}
	diag.PolicyEnabled = eff.Enabled
	diag.ModelID = eff.ModelID
	diag.IndustryKey = eff.IndustryKey

	if !eff.Enabled {
		return s.fail(ctx, job, quote, rep, constants.FailureRenderingDisabled, "")
	}

	decision, err := s.quota.Check(ctx, job.TenantID, eff.MaxPerDay)
	if err != nil {
		return s.fail(ctx, job, quote, rep, constants.FailureInternal, "quota check: "+err.Error())
	}
	diag.QuotaUsedToday = decision.UsedToday
	diag.QuotaMaxPerDay = decision.MaxPerDay
	if decision.Limited {
		return s.fail(ctx, job, quote, rep, constants.FailureQuotaExceeded, "")
	}

	res, err := s.keys.Resolve(ctx, job.TenantID)
	if err != nil {
		var blocked *keys.BlockedError
		if errors.As(err, &blocked) {
			return s.fail(ctx, job, quote, rep, string(blocked.Reason), "")
		}
		return s.fail(ctx, job, quote, rep, constants.FailureInternal, "resolve key: "+err.Error())
	}
	diag.KeySource = string(res.Source)
	diag.CredentialSHA256 = hashPrefix(res.Credential)

	prompt := composeJobPrompt(eff.PromptPreamble, job.Prompt)
	anchorURL := ""
	if img := quote.AnchorImage(); img != nil {
		anchorURL = img.URL
	}

	genRes, err := s.generator.Generate(ctx, generation.Request{
		Prompt:           prompt,
		ModelID:          eff.ModelID,
		StylePreset:      eff.StylePreset,
		NegativeGuidance: eff.NegativeGuidance,
		AnchorImageURL:   anchorURL,
		Credential:       res.Credential,
	})
	if err != nil {
		return s.fail(ctx, job, quote, rep, constants.FailureGeneration, err.Error())
	}
	diag.Conditioned = genRes.Conditioned

	imageURL, err := s.artifacts.Store(ctx, genRes.Image, genRes.ContentType)
	if err != nil {
		return s.fail(ctx, job, quote, rep, constants.FailureStorage, err.Error())
	}

	if err := s.committer.Commit(ctx, job.ID, job.QuoteID, Outcome{
		Success:  true,
		ImageURL: imageURL,
		Prompt:   prompt,
	}); err != nil {
		// generated and uploaded, but the terminal write failed; a stale
		// reclaim will re-run the pipeline (documented duplicate-side-effect
		// window)
		s.logger.Error("worker.commit_failed", "job_id", job.ID, "err", err)
		rep.Outcome = "error"
		rep.Error = common.Truncate(err.Error(), maxStoredErrorLen)
		return rep
	}

	if res.Source == constants.KeySourcePlatformGrace {
		taken, err := s.credits.ConsumeGraceCredit(ctx, job.TenantID)
		if err != nil {
			s.logger.Error("worker.grace_consume_failed", "tenant_id", job.TenantID, "err", err)
		} else if !taken {
			s.logger.Warn("worker.grace_consume_raced", "tenant_id", job.TenantID)
		}
	}

	nrep := s.notifier.Notify(ctx, job.TenantID, quote, notify.Outcome{
		Succeeded: true,
		ImageURL:  imageURL,
	})
	rep.Outcome = "done"
	rep.ImageURL = imageURL
	rep.Notified = &nrep

	s.logger.Info("worker.job.done", "job_id", job.ID, "quote_id", job.QuoteID,
		"key_source", res.Source, "image_url", imageURL)
	return rep
}

// fail finalizes a job as failed and fires the failure notification. The
// stored error text starts with the failure code so dashboards and the quote
// projection can surface it verbatim.
func (s *Service) fail(ctx context.Context, job *entity.RenderJob, quote *entity.Quote, rep JobReport, code, detail string) JobReport {
	message := code
	if detail != "" {
		message = code + ": " + common.Truncate(detail, maxStoredErrorLen)
	}

	if err := s.committer.Commit(ctx, job.ID, job.QuoteID, Outcome{
		Success:      false,
		ErrorMessage: message,
	}); err != nil {
		s.logger.Error("worker.fail_commit_failed", "job_id", job.ID, "err", err)
		rep.Outcome = "error"
		rep.Error = common.Truncate(err.Error(), maxStoredErrorLen)
		return rep
	}

	if quote != nil {
		nrep := s.notifier.Notify(ctx, job.TenantID, quote, notify.Outcome{
			Succeeded:   false,
			FailureCode: code,
		})
		rep.Notified = &nrep
	}

	rep.Outcome = "failed"
	rep.FailureCode = code
	rep.Error = message
	s.logger.Warn("worker.job.failed", "job_id", job.ID, "quote_id", job.QuoteID, "code", code)
	return rep
}

func composeJobPrompt(preamble, prompt string) string {
	preamble = strings.TrimSpace(preamble)
	prompt = strings.TrimSpace(prompt)
	switch {
	case preamble == "":
		return prompt
	case prompt == "":
		return preamble
	default:
		return preamble + " " + prompt
	}
}

func hashPrefix(credential string) string {
	if credential == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:])[:8]
}
