package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

// ListJobsQuery filters the admin/report listing.
type ListJobsQuery struct {
	TenantID uuid.UUID
	Status   string
	From     *time.Time
	To       *time.Time
	Limit    int
}

type RenderJobRepository interface {
	// Claim atomically moves up to maxCount claimable jobs to running and
	// returns them oldest-first. A job is claimable when queued, or when
	// running with started_at strictly older than staleBefore.
	Claim(ctx context.Context, maxCount int, staleBefore time.Time) ([]*entity.RenderJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.RenderJob, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	// CountDoneSince backs the soft daily quota.
	CountDoneSince(ctx context.Context, tenantID uuid.UUID, since time.Time) (int, error)
	List(ctx context.Context, q ListJobsQuery) ([]*entity.RenderJob, error)
}

type renderJobRepo struct {
	ent  *ent.Client
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewRenderJobRepository needs both handles: Ent for row-level reads and
// writes, the pgx pool for the lock-sensitive claim transaction.
func NewRenderJobRepository(entc *ent.Client, pool *pgxpool.Pool, log *slog.Logger) RenderJobRepository {
	return &renderJobRepo{ent: entc, pool: pool, log: log}
}

// claimSQL selects claimable rows oldest-first, skipping rows another
// invocation holds locked, and flips them to running in the same statement.
// started_at is refreshed on every claim, including stale reclaims, so the
// row leaves the claimable window the moment the transaction commits.
const claimSQL = `
	WITH claimed AS (
		SELECT id FROM render_jobs
		WHERE status = 'queued'
		   OR (status = 'running' AND started_at < $2)
		ORDER BY created_at ASC
		FOR UPDATE SKIP LOCKED
		LIMIT $1
	)
	UPDATE render_jobs j
	SET status = 'running', started_at = now()
	FROM claimed c
	WHERE j.id = c.id
	RETURNING j.id, j.tenant_id, j.quote_id, j.status, j.prompt,
	          j.created_at, j.started_at, j.finished_at, j.error_message`

func (r *renderJobRepo) Claim(ctx context.Context, maxCount int, staleBefore time.Time) ([]*entity.RenderJob, error) {
	if maxCount <= 0 {
		return nil, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.log.Error("render_job claim begin failed", "err", err)
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, claimSQL, maxCount, staleBefore)
	if err != nil {
		r.log.Error("render_job claim query failed", "err", err)
		return nil, err
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		r.log.Error("render_job claim scan failed", "err", err)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		r.log.Error("render_job claim commit failed", "err", err)
		return nil, err
	}

	if len(jobs) > 0 {
		r.log.Info("render_job batch claimed", "count", len(jobs))
	}
	return jobs, nil
}

func collectJobs(rows pgx.Rows) ([]*entity.RenderJob, error) {
	defer rows.Close()
	var jobs []*entity.RenderJob
	for rows.Next() {
		var (
			j      entity.RenderJob
			status string
		)
		if err := rows.Scan(&j.ID, &j.TenantID, &j.QuoteID, &status, &j.Prompt,
			&j.CreatedAt, &j.StartedAt, &j.FinishedAt, &j.ErrorMessage); err != nil {
			return nil, err
		}
		j.Status = constants.JobStatus(status)
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// RETURNING does not honor the inner ORDER BY, so restore FIFO here.
	sortJobsByCreation(jobs)
	return jobs, nil
}

func sortJobsByCreation(jobs []*entity.RenderJob) {
	for i := 1; i < len(jobs); i++ {
		for k := i; k > 0 && jobs[k].CreatedAt.Before(jobs[k-1].CreatedAt); k-- {
			jobs[k], jobs[k-1] = jobs[k-1], jobs[k]
		}
	}
}

func (r *renderJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.RenderJob, error) {
	row, err := r.ent.RenderJob.Query().Where(renderjob.ID(jobID)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return jobToEntity(row), nil
}

func (r *renderJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.RenderJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusDone)).
		SetFinishedAt(time.Now().UTC()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.log.Error("render_job finish(done) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("render_job finished (done)", "job_id", jobID)
	return nil
}

func (r *renderJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.RenderJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetFinishedAt(time.Now().UTC()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("render_job finish(failed) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("render_job finished (failed)", "job_id", jobID, "error", message)
	return nil
}

func (r *renderJobRepo) CountDoneSince(ctx context.Context, tenantID uuid.UUID, since time.Time) (int, error) {
	return r.ent.RenderJob.Query().
		Where(
			renderjob.TenantID(tenantID),
			renderjob.StatusEQ(string(constants.JobStatusDone)),
			renderjob.FinishedAtGTE(since),
		).
		Count(ctx)
}

func (r *renderJobRepo) List(ctx context.Context, q ListJobsQuery) ([]*entity.RenderJob, error) {
	query := r.ent.RenderJob.Query()
	if q.TenantID != uuid.Nil {
		query = query.Where(renderjob.TenantID(q.TenantID))
	}
	if q.Status != "" {
		query = query.Where(renderjob.StatusEQ(q.Status))
	}
	if q.From != nil {
		query = query.Where(renderjob.CreatedAtGTE(*q.From))
	}
	if q.To != nil {
		query = query.Where(renderjob.CreatedAtLT(*q.To))
	}
	query = query.Order(renderjob.ByCreatedAt())
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.RenderJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, jobToEntity(row))
	}
	return out, nil
}

func jobToEntity(row *ent.RenderJob) *entity.RenderJob {
	return &entity.RenderJob{
		ID:           row.ID,
		TenantID:     row.TenantID,
		QuoteID:      row.QuoteID,
		Status:       constants.JobStatus(row.Status),
		Prompt:       row.Prompt,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		FinishedAt:   row.FinishedAt,
		ErrorMessage: row.ErrorMessage,
	}
}
