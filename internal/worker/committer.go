package worker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
)

// Outcome is a terminal job result to be persisted.
type Outcome struct {
	Success  bool
	ImageURL string
	Prompt   string
	// ErrorMessage is the stored failure text; starts with the failure code.
	ErrorMessage string
}

// Committer writes the terminal job state and the quote projection as
// idempotent "set terminal state" operations. Re-applying the same outcome
// after a crash between the two writes converges on the same final state.
type Committer struct {
	jobs   JobStore
	quotes QuoteStore
	logger *slog.Logger
}

func NewCommitter(jobs JobStore, quotes QuoteStore, logger *slog.Logger) *Committer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Committer{jobs: jobs, quotes: quotes, logger: logger}
}

// Commit finalizes one job. Terminal states never regress: committing an
// outcome that disagrees with an already-terminal row is ErrConflict, while
// re-committing the matching outcome only refreshes the quote mirror.
func (c *Committer) Commit(ctx context.Context, jobID, quoteID uuid.UUID, out Outcome) error {
	job, err := c.jobs.GetByID(ctx, jobID)
	if err != nil {
		return common.WrapError(err, "commit: load job")
	}

	if job.Status.IsTerminal() {
		sameOutcome := (job.Status == constants.JobStatusDone) == out.Success
		if !sameOutcome {
			c.logger.Error("commit rejected: conflicting terminal outcome",
				"job_id", jobID, "stored", job.Status, "incoming_success", out.Success)
			return common.ErrConflict
		}
		c.logger.Info("commit replay, refreshing quote mirror only",
			"job_id", jobID, "status", job.Status)
		c.mirror(ctx, quoteID, out)
		return nil
	}

	if out.Success {
		if err := c.jobs.FinishSuccess(ctx, jobID); err != nil {
			return common.WrapError(err, "commit: finish job")
		}
	} else {
		if err := c.jobs.FinishFailure(ctx, jobID, out.ErrorMessage); err != nil {
			return common.WrapError(err, "commit: finish job")
		}
	}

	c.mirror(ctx, quoteID, out)
	return nil
}

// mirror updates the quote projection. It is a best-effort cache, not
// transactionally coupled to the job row; failures are logged and dropped.
func (c *Committer) mirror(ctx context.Context, quoteID uuid.UUID, out Outcome) {
	var err error
	if out.Success {
		err = c.quotes.SetRenderSuccess(ctx, quoteID, out.ImageURL, out.Prompt)
	} else {
		err = c.quotes.SetRenderFailure(ctx, quoteID, out.ErrorMessage)
	}
	if err != nil {
		c.logger.Warn("quote mirror write failed", "quote_id", quoteID, "err", err)
	}
}
