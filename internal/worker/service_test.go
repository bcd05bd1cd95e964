package worker

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/generation"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/keys"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/notify"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/policy"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/quota"
)

// ---- in-memory fakes -------------------------------------------------------

type memJobStore struct {
	batch    []*entity.RenderJob
	claimErr error
	jobs     map[uuid.UUID]*entity.RenderJob
}

func newMemJobStore(batch ...*entity.RenderJob) *memJobStore {
	s := &memJobStore{batch: batch, jobs: map[uuid.UUID]*entity.RenderJob{}}
	for _, j := range batch {
		s.jobs[j.ID] = j
	}
	return s
}

func (s *memJobStore) Claim(_ context.Context, maxCount int, _ time.Time) ([]*entity.RenderJob, error) {
	if s.claimErr != nil {
		return nil, s.claimErr
	}
	if len(s.batch) > maxCount {
		s.batch = s.batch[:maxCount]
	}
	now := time.Now()
	for _, j := range s.batch {
		j.Status = constants.JobStatusRunning
		j.StartedAt = &now
	}
	return s.batch, nil
}

func (s *memJobStore) GetByID(_ context.Context, jobID uuid.UUID) (*entity.RenderJob, error) {
	j, ok := s.jobs[jobID]
	if !ok {
		return nil, errors.New("job not found")
	}
	cp := *j
	return &cp, nil
}

func (s *memJobStore) FinishSuccess(_ context.Context, jobID uuid.UUID) error {
	j := s.jobs[jobID]
	j.Status = constants.JobStatusDone
	now := time.Now()
	j.FinishedAt = &now
	j.ErrorMessage = nil
	return nil
}

func (s *memJobStore) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	j := s.jobs[jobID]
	j.Status = constants.JobStatusFailed
	now := time.Now()
	j.FinishedAt = &now
	j.ErrorMessage = &message
	return nil
}

type memQuoteStore struct {
	quotes       map[uuid.UUID]*entity.Quote
	runningCalls int
	successURL   string
	failureMsg   string
}

func newMemQuoteStore(quotes ...*entity.Quote) *memQuoteStore {
	s := &memQuoteStore{quotes: map[uuid.UUID]*entity.Quote{}}
	for _, q := range quotes {
		s.quotes[q.ID] = q
	}
	return s
}

func (s *memQuoteStore) GetByID(_ context.Context, quoteID uuid.UUID) (*entity.Quote, error) {
	q, ok := s.quotes[quoteID]
	if !ok {
		return nil, errors.New("quote not found")
	}
	return q, nil
}

func (s *memQuoteStore) MarkRenderRunning(_ context.Context, _ uuid.UUID) error {
	s.runningCalls++
	return nil
}

func (s *memQuoteStore) SetRenderSuccess(_ context.Context, quoteID uuid.UUID, imageURL, prompt string) error {
	s.successURL = imageURL
	if q, ok := s.quotes[quoteID]; ok {
		status := string(constants.RenderStatusRendered)
		q.RenderStatus = &status
		q.RenderImageURL = &imageURL
		q.RenderPrompt = &prompt
	}
	return nil
}

func (s *memQuoteStore) SetRenderFailure(_ context.Context, quoteID uuid.UUID, message string) error {
	s.failureMsg = message
	if q, ok := s.quotes[quoteID]; ok {
		status := string(constants.RenderStatusFailed)
		q.RenderStatus = &status
		q.RenderError = &message
	}
	return nil
}

type stubCredits struct {
	consumed int
	taken    bool
	err      error
}

func (s *stubCredits) ConsumeGraceCredit(_ context.Context, _ uuid.UUID) (bool, error) {
	s.consumed++
	return s.taken, s.err
}

type stubPolicy struct {
	cfg *policy.EffectiveRenderConfig
	err error
}

func (s *stubPolicy) Resolve(_ context.Context, _ uuid.UUID) (*policy.EffectiveRenderConfig, error) {
	return s.cfg, s.err
}

type stubQuota struct {
	decision quota.Decision
	err      error
}

func (s *stubQuota) Check(_ context.Context, _ uuid.UUID, maxPerDay int) (quota.Decision, error) {
	s.decision.MaxPerDay = maxPerDay
	return s.decision, s.err
}

type stubKeys struct {
	res *keys.Resolution
	err error
}

func (s *stubKeys) Resolve(_ context.Context, _ uuid.UUID) (*keys.Resolution, error) {
	return s.res, s.err
}

type stubGenerator struct {
	requests []generation.Request
	result   *generation.Result
	err      error
	errOnce  bool // fail only the first call
}

func (s *stubGenerator) Generate(_ context.Context, req generation.Request) (*generation.Result, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		err := s.err
		if s.errOnce {
			s.err = nil
		}
		return nil, err
	}
	return s.result, nil
}

type stubArtifacts struct {
	calls int
	url   string
	err   error
}

func (s *stubArtifacts) Store(_ context.Context, _ []byte, _ string) (string, error) {
	s.calls++
	return s.url, s.err
}

type stubNotifier struct {
	outcomes []notify.Outcome
}

func (s *stubNotifier) Notify(_ context.Context, _ uuid.UUID, _ *entity.Quote, out notify.Outcome) notify.Report {
	s.outcomes = append(s.outcomes, out)
	return notify.Report{OperatorSent: true}
}

// ---- fixture ---------------------------------------------------------------

type fixture struct {
	jobs      *memJobStore
	quotes    *memQuoteStore
	credits   *stubCredits
	policy    *stubPolicy
	quota     *stubQuota
	keys      *stubKeys
	generator *stubGenerator
	artifacts *stubArtifacts
	notifier  *stubNotifier
}

func queuedJob(tenantID, quoteID uuid.UUID) *entity.RenderJob {
	return &entity.RenderJob{
		ID:        uuid.New(),
		TenantID:  tenantID,
		QuoteID:   quoteID,
		Status:    constants.JobStatusQueued,
		Prompt:    "replace the roof with dark shingles",
		CreatedAt: time.Now(),
	}
}

func newFixture(jobs ...*entity.RenderJob) *fixture {
	f := &fixture{
		jobs:    newMemJobStore(jobs...),
		quotes:  newMemQuoteStore(),
		credits: &stubCredits{taken: true},
		policy: &stubPolicy{cfg: &policy.EffectiveRenderConfig{
			Enabled:        true,
			ModelID:        "test-model",
			PromptPreamble: "Photorealistic finished project.",
		}},
		quota:     &stubQuota{},
		keys:      &stubKeys{res: &keys.Resolution{Credential: "sk-tenant", Source: constants.KeySourceTenant}},
		generator: &stubGenerator{result: &generation.Result{Image: []byte("png"), ContentType: "image/png", Conditioned: true}},
		artifacts: &stubArtifacts{url: "https://cdn.example.com/renders/a.png"},
		notifier:  &stubNotifier{},
	}
	for _, j := range jobs {
		f.quotes.quotes[j.QuoteID] = &entity.Quote{
			ID:       j.QuoteID,
			TenantID: j.TenantID,
			Images: []entity.QuoteImage{
				{URL: "https://photos.example.com/side.jpg"},
				{URL: "https://photos.example.com/front.jpg", Primary: true},
			},
			CustomerEmail: "c@example.com",
			RenderOptIn:   true,
		}
	}
	return f
}

func (f *fixture) service() *Service {
	return NewService(
		Config{MaxJobsPerRun: 5, StaleAfter: 10 * time.Minute},
		f.jobs, f.quotes, f.credits,
		f.policy, f.quota, f.keys,
		f.generator, f.artifacts,
		NewCommitter(f.jobs, f.quotes, nil),
		f.notifier, nil,
	)
}

// ---- tests -----------------------------------------------------------------

func TestRunSuccess(t *testing.T) {
	tenantID := uuid.New()
	job := queuedJob(tenantID, uuid.New())
	f := newFixture(job)

	report, err := f.service().Run(context.Background(), RunParams{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Claimed != 1 || len(report.Processed) != 1 {
		t.Fatalf("report = %+v", report)
	}

	jr := report.Processed[0]
	if jr.Outcome != "done" {
		t.Fatalf("Outcome = %q (%s)", jr.Outcome, jr.Error)
	}
	if jr.ImageURL != "https://cdn.example.com/renders/a.png" {
		t.Errorf("ImageURL = %q", jr.ImageURL)
	}
	if f.jobs.jobs[job.ID].Status != constants.JobStatusDone {
		t.Errorf("job status = %q, want done", f.jobs.jobs[job.ID].Status)
	}
	if f.quotes.successURL == "" {
		t.Error("quote projection not updated")
	}
	if f.quotes.runningCalls != 1 {
		t.Errorf("running mirror calls = %d", f.quotes.runningCalls)
	}

	// prompt is preamble + job prompt, anchor is the primary photo
	if len(f.generator.requests) != 1 {
		t.Fatalf("generator calls = %d", len(f.generator.requests))
	}
	req := f.generator.requests[0]
	if req.Prompt != "Photorealistic finished project. replace the roof with dark shingles" {
		t.Errorf("Prompt = %q", req.Prompt)
	}
	if req.AnchorImageURL != "https://photos.example.com/front.jpg" {
		t.Errorf("AnchorImageURL = %q, want primary photo", req.AnchorImageURL)
	}
	if req.Credential != "sk-tenant" {
		t.Errorf("Credential = %q", req.Credential)
	}

	// tenant-billed renders never touch the grace ledger
	if f.credits.consumed != 0 {
		t.Errorf("grace credits consumed = %d, want 0", f.credits.consumed)
	}
	if len(f.notifier.outcomes) != 1 || !f.notifier.outcomes[0].Succeeded {
		t.Errorf("notify outcomes = %+v", f.notifier.outcomes)
	}
}

func TestRunDisabledTenant(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)
	f.policy.cfg = &policy.EffectiveRenderConfig{Enabled: false}

	report, err := f.service().Run(context.Background(), RunParams{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	jr := report.Processed[0]
	if jr.Outcome != "failed" || jr.FailureCode != constants.FailureRenderingDisabled {
		t.Fatalf("report = %+v", jr)
	}
	if len(f.generator.requests) != 0 {
		t.Error("generator called for disabled tenant")
	}
	if f.artifacts.calls != 0 {
		t.Error("artifact store called for disabled tenant")
	}
	stored := f.jobs.jobs[job.ID]
	if stored.Status != constants.JobStatusFailed {
		t.Errorf("job status = %q", stored.Status)
	}
	if stored.ErrorMessage == nil || *stored.ErrorMessage != constants.FailureRenderingDisabled {
		t.Errorf("stored error = %v, want bare code", stored.ErrorMessage)
	}
	if f.quotes.failureMsg != constants.FailureRenderingDisabled {
		t.Errorf("quote failure = %q", f.quotes.failureMsg)
	}
	// failures still notify the operator
	if len(f.notifier.outcomes) != 1 || f.notifier.outcomes[0].Succeeded {
		t.Errorf("notify outcomes = %+v", f.notifier.outcomes)
	}
}

func TestRunQuotaExceeded(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)
	f.policy.cfg.MaxPerDay = 3
	f.quota.decision = quota.Decision{Limited: true, UsedToday: 3}

	report, _ := f.service().Run(context.Background(), RunParams{})
	jr := report.Processed[0]
	if jr.FailureCode != constants.FailureQuotaExceeded {
		t.Errorf("FailureCode = %q", jr.FailureCode)
	}
	if len(f.generator.requests) != 0 {
		t.Error("generator called past quota")
	}
}

func TestRunKeyPolicyBlocked(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)
	f.keys.res = nil
	f.keys.err = &keys.BlockedError{Reason: constants.BlockGraceExhausted}

	report, _ := f.service().Run(context.Background(), RunParams{})
	jr := report.Processed[0]
	if jr.FailureCode != string(constants.BlockGraceExhausted) {
		t.Errorf("FailureCode = %q, want block reason", jr.FailureCode)
	}
	if f.credits.consumed != 0 {
		t.Error("credit consumed on blocked job")
	}
}

func TestRunGraceCreditConsumedOnceOnSuccess(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)
	f.keys.res = &keys.Resolution{Credential: "sk-platform", Source: constants.KeySourcePlatformGrace}

	report, _ := f.service().Run(context.Background(), RunParams{})
	if report.Processed[0].Outcome != "done" {
		t.Fatalf("outcome = %+v", report.Processed[0])
	}
	if f.credits.consumed != 1 {
		t.Errorf("grace credits consumed = %d, want 1", f.credits.consumed)
	}
}

func TestRunNoCreditOnGenerationFailure(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)
	f.keys.res = &keys.Resolution{Credential: "sk-platform", Source: constants.KeySourcePlatformGrace}
	f.generator.err = errors.New("model refused")

	report, _ := f.service().Run(context.Background(), RunParams{})
	jr := report.Processed[0]
	if jr.FailureCode != constants.FailureGeneration {
		t.Errorf("FailureCode = %q", jr.FailureCode)
	}
	if f.credits.consumed != 0 {
		t.Error("credit consumed for failed render")
	}
	stored := f.jobs.jobs[job.ID]
	if stored.ErrorMessage == nil || !strings.HasPrefix(*stored.ErrorMessage, constants.FailureGeneration+": ") {
		t.Errorf("stored error = %v, want code-prefixed detail", stored.ErrorMessage)
	}
}

func TestRunStorageFailure(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)
	f.artifacts.err = errors.New("bucket gone")
	f.artifacts.url = ""

	report, _ := f.service().Run(context.Background(), RunParams{})
	if report.Processed[0].FailureCode != constants.FailureStorage {
		t.Errorf("FailureCode = %q", report.Processed[0].FailureCode)
	}
}

func TestRunQuoteMissing(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)
	delete(f.quotes.quotes, job.QuoteID)

	report, _ := f.service().Run(context.Background(), RunParams{})
	jr := report.Processed[0]
	if jr.FailureCode != constants.FailureQuoteNotFound {
		t.Errorf("FailureCode = %q", jr.FailureCode)
	}
	// no quote means nobody to notify about
	if len(f.notifier.outcomes) != 0 {
		t.Errorf("notify outcomes = %+v", f.notifier.outcomes)
	}
}

func TestRunFailureIsolation(t *testing.T) {
	tenantID := uuid.New()
	first := queuedJob(tenantID, uuid.New())
	second := queuedJob(tenantID, uuid.New())
	f := newFixture(first, second)
	f.generator.err = errors.New("transient upstream error")
	f.generator.errOnce = true

	report, err := f.service().Run(context.Background(), RunParams{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Processed) != 2 {
		t.Fatalf("processed = %d", len(report.Processed))
	}
	if report.Processed[0].Outcome != "failed" {
		t.Errorf("first job = %+v", report.Processed[0])
	}
	if report.Processed[1].Outcome != "done" {
		t.Errorf("second job = %+v, one failure must not abort the batch", report.Processed[1])
	}
}

func TestRunClaimError(t *testing.T) {
	f := newFixture()
	f.jobs.claimErr = errors.New("deadlock")
	if _, err := f.service().Run(context.Background(), RunParams{}); err == nil {
		t.Error("claim error swallowed")
	}
}

func TestRunMaxJobsOverride(t *testing.T) {
	tenantID := uuid.New()
	f := newFixture(
		queuedJob(tenantID, uuid.New()),
		queuedJob(tenantID, uuid.New()),
		queuedJob(tenantID, uuid.New()),
	)

	report, err := f.service().Run(context.Background(), RunParams{MaxJobs: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Claimed != 2 {
		t.Errorf("Claimed = %d, want the per-call override", report.Claimed)
	}
}

func TestRunDebugDiagnosticsRedacted(t *testing.T) {
	job := queuedJob(uuid.New(), uuid.New())
	f := newFixture(job)

	report, _ := f.service().Run(context.Background(), RunParams{Debug: true})
	jr := report.Processed[0]
	if jr.Debug == nil {
		t.Fatal("debug requested but no diagnostics attached")
	}
	if jr.Debug.CredentialSHA256 == "" || len(jr.Debug.CredentialSHA256) != 8 {
		t.Errorf("CredentialSHA256 = %q, want 8-char prefix", jr.Debug.CredentialSHA256)
	}
	if strings.Contains(jr.Debug.CredentialSHA256, "sk-") {
		t.Error("raw credential leaked into diagnostics")
	}
	if jr.Debug.KeySource != string(constants.KeySourceTenant) {
		t.Errorf("KeySource = %q", jr.Debug.KeySource)
	}

	// without the flag nothing is attached
	f2 := newFixture(queuedJob(uuid.New(), uuid.New()))
	report2, _ := f2.service().Run(context.Background(), RunParams{})
	if report2.Processed[0].Debug != nil {
		t.Error("diagnostics attached without debug flag")
	}
}

func TestComposeJobPrompt(t *testing.T) {
	cases := []struct{ preamble, prompt, want string }{
		{"pre.", "job", "pre. job"},
		{"", "job", "job"},
		{"pre.", "", "pre."},
		{"  pre.  ", "  job  ", "pre. job"},
	}
	for _, tc := range cases {
		if got := composeJobPrompt(tc.preamble, tc.prompt); got != tc.want {
			t.Errorf("composeJobPrompt(%q, %q) = %q, want %q", tc.preamble, tc.prompt, got, tc.want)
		}
	}
}
