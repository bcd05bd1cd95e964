package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

func runningJob() *entity.RenderJob {
	now := time.Now()
	return &entity.RenderJob{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		QuoteID:   uuid.New(),
		Status:    constants.JobStatusRunning,
		Prompt:    "p",
		CreatedAt: now,
		StartedAt: &now,
	}
}

func TestCommitSuccess(t *testing.T) {
	job := runningJob()
	jobs := newMemJobStore(job)
	quotes := newMemQuoteStore(&entity.Quote{ID: job.QuoteID})
	c := NewCommitter(jobs, quotes, nil)

	err := c.Commit(context.Background(), job.ID, job.QuoteID, Outcome{
		Success: true, ImageURL: "https://cdn/x.png", Prompt: "p",
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if jobs.jobs[job.ID].Status != constants.JobStatusDone {
		t.Errorf("status = %q", jobs.jobs[job.ID].Status)
	}
	if quotes.successURL != "https://cdn/x.png" {
		t.Errorf("mirror url = %q", quotes.successURL)
	}
}

func TestCommitReplaySameOutcomeIsIdempotent(t *testing.T) {
	job := runningJob()
	jobs := newMemJobStore(job)
	quotes := newMemQuoteStore(&entity.Quote{ID: job.QuoteID})
	c := NewCommitter(jobs, quotes, nil)

	out := Outcome{Success: true, ImageURL: "https://cdn/x.png"}
	if err := c.Commit(context.Background(), job.ID, job.QuoteID, out); err != nil {
		t.Fatalf("first Commit: %v", err)
	}
	finishedAt := *jobs.jobs[job.ID].FinishedAt

	quotes.successURL = ""
	if err := c.Commit(context.Background(), job.ID, job.QuoteID, out); err != nil {
		t.Fatalf("replay Commit: %v", err)
	}
	// replay only refreshes the mirror; the job row is untouched
	if !jobs.jobs[job.ID].FinishedAt.Equal(finishedAt) {
		t.Error("replay rewrote the job row")
	}
	if quotes.successURL != "https://cdn/x.png" {
		t.Error("replay did not refresh the quote mirror")
	}
}

func TestCommitConflictingTerminalOutcome(t *testing.T) {
	job := runningJob()
	jobs := newMemJobStore(job)
	quotes := newMemQuoteStore(&entity.Quote{ID: job.QuoteID})
	c := NewCommitter(jobs, quotes, nil)

	if err := c.Commit(context.Background(), job.ID, job.QuoteID, Outcome{Success: true, ImageURL: "u"}); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	err := c.Commit(context.Background(), job.ID, job.QuoteID, Outcome{
		Success: false, ErrorMessage: "GENERATION_FAILED",
	})
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	if jobs.jobs[job.ID].Status != constants.JobStatusDone {
		t.Error("conflicting commit regressed terminal state")
	}
}

func TestCommitMirrorFailureDoesNotFailCommit(t *testing.T) {
	job := runningJob()
	jobs := newMemJobStore(job)
	quotes := &failingQuoteStore{}
	c := NewCommitter(jobs, quotes, nil)

	err := c.Commit(context.Background(), job.ID, job.QuoteID, Outcome{Success: true, ImageURL: "u"})
	if err != nil {
		t.Errorf("Commit = %v, mirror failure must be swallowed", err)
	}
	if jobs.jobs[job.ID].Status != constants.JobStatusDone {
		t.Error("job not finished")
	}
}

type failingQuoteStore struct{}

func (f *failingQuoteStore) GetByID(context.Context, uuid.UUID) (*entity.Quote, error) {
	return nil, errors.New("unused")
}
func (f *failingQuoteStore) MarkRenderRunning(context.Context, uuid.UUID) error {
	return errors.New("down")
}
func (f *failingQuoteStore) SetRenderSuccess(context.Context, uuid.UUID, string, string) error {
	return errors.New("down")
}
func (f *failingQuoteStore) SetRenderFailure(context.Context, uuid.UUID, string) error {
	return errors.New("down")
}
