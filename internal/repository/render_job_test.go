package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

func seedJob(t *testing.T, client *ent.Client, tenantID uuid.UUID, mutate func(*ent.RenderJobCreate)) *ent.RenderJob {
	t.Helper()
	ctx := context.Background()
	quote, err := client.Quote.Create().SetTenantID(tenantID).Save(ctx)
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	create := client.RenderJob.Create().
		SetTenantID(tenantID).
		SetQuoteID(quote.ID).
		SetPrompt("render the finished project")
	if mutate != nil {
		mutate(create)
	}
	job, err := create.Save(ctx)
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestFinishSuccessClearsError(t *testing.T) {
	client := newTestClient(t)
	// the claim path is postgres-only; nil pool is fine for the ent methods
	repo := NewRenderJobRepository(client, nil, testLogger())
	ctx := context.Background()

	job := seedJob(t, client, uuid.New(), func(c *ent.RenderJobCreate) {
		c.SetStatus(string(constants.JobStatusRunning)).
			SetErrorMessage("leftover from an earlier attempt")
	})

	if err := repo.FinishSuccess(ctx, job.ID); err != nil {
		t.Fatalf("FinishSuccess: %v", err)
	}
	got, err := repo.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != constants.JobStatusDone {
		t.Errorf("status = %q", got.Status)
	}
	if got.FinishedAt == nil {
		t.Error("finished_at not set")
	}
	if got.ErrorMessage != nil {
		t.Errorf("error not cleared: %v", *got.ErrorMessage)
	}
}

func TestFinishFailureStoresMessage(t *testing.T) {
	client := newTestClient(t)
	repo := NewRenderJobRepository(client, nil, testLogger())
	ctx := context.Background()

	job := seedJob(t, client, uuid.New(), func(c *ent.RenderJobCreate) {
		c.SetStatus(string(constants.JobStatusRunning))
	})

	if err := repo.FinishFailure(ctx, job.ID, "QUOTA_EXCEEDED"); err != nil {
		t.Fatalf("FinishFailure: %v", err)
	}
	got, _ := repo.GetByID(ctx, job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Errorf("status = %q", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "QUOTA_EXCEEDED" {
		t.Errorf("error = %v", got.ErrorMessage)
	}
}

func TestCountDoneSince(t *testing.T) {
	client := newTestClient(t)
	repo := NewRenderJobRepository(client, nil, testLogger())
	ctx := context.Background()

	tenantID := uuid.New()
	midnight := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	// two done today, one done yesterday, one failed today, other tenant's done
	seedJob(t, client, tenantID, func(c *ent.RenderJobCreate) {
		c.SetStatus(string(constants.JobStatusDone)).SetFinishedAt(midnight.Add(1 * time.Hour))
	})
	seedJob(t, client, tenantID, func(c *ent.RenderJobCreate) {
		c.SetStatus(string(constants.JobStatusDone)).SetFinishedAt(midnight.Add(5 * time.Hour))
	})
	seedJob(t, client, tenantID, func(c *ent.RenderJobCreate) {
		c.SetStatus(string(constants.JobStatusDone)).SetFinishedAt(midnight.Add(-2 * time.Hour))
	})
	seedJob(t, client, tenantID, func(c *ent.RenderJobCreate) {
		c.SetStatus(string(constants.JobStatusFailed)).SetFinishedAt(midnight.Add(2 * time.Hour))
	})
	seedJob(t, client, uuid.New(), func(c *ent.RenderJobCreate) {
		c.SetStatus(string(constants.JobStatusDone)).SetFinishedAt(midnight.Add(3 * time.Hour))
	})

	n, err := repo.CountDoneSince(ctx, tenantID, midnight)
	if err != nil {
		t.Fatalf("CountDoneSince: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestListFilters(t *testing.T) {
	client := newTestClient(t)
	repo := NewRenderJobRepository(client, nil, testLogger())
	ctx := context.Background()

	tenantID := uuid.New()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		created := base.AddDate(0, 0, i)
		status := string(constants.JobStatusDone)
		if i == 2 {
			status = string(constants.JobStatusFailed)
		}
		seedJob(t, client, tenantID, func(c *ent.RenderJobCreate) {
			c.SetStatus(status).SetCreatedAt(created)
		})
	}
	seedJob(t, client, uuid.New(), nil)

	all, err := repo.List(ctx, ListJobsQuery{TenantID: tenantID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d", len(all))
	}
	if !sortedByCreation(all) {
		t.Error("not ordered by created_at")
	}

	done, err := repo.List(ctx, ListJobsQuery{TenantID: tenantID, Status: string(constants.JobStatusDone)})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(done) != 2 {
		t.Errorf("done = %d", len(done))
	}

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 2)
	window, err := repo.List(ctx, ListJobsQuery{TenantID: tenantID, From: &from, To: &to})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(window) != 1 {
		t.Errorf("window = %d, want half-open [from, to)", len(window))
	}

	limited, err := repo.List(ctx, ListJobsQuery{TenantID: tenantID, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited = %d", len(limited))
	}
}

func sortedByCreation(jobs []*entity.RenderJob) bool {
	for i := 1; i < len(jobs); i++ {
		if jobs[i].CreatedAt.Before(jobs[i-1].CreatedAt) {
			return false
		}
	}
	return true
}

func TestSortJobsByCreation(t *testing.T) {
	now := time.Now()
	jobs := []*entity.RenderJob{
		{CreatedAt: now.Add(2 * time.Minute)},
		{CreatedAt: now},
		{CreatedAt: now.Add(time.Minute)},
	}
	sortJobsByCreation(jobs)
	if !sortedByCreation(jobs) {
		t.Errorf("not sorted: %v, %v, %v", jobs[0].CreatedAt, jobs[1].CreatedAt, jobs[2].CreatedAt)
	}
}
