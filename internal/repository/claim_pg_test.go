package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent"
)

// The claim transaction relies on FOR UPDATE SKIP LOCKED and now(), so it is
// exercised against a real Postgres. Set TEST_DATABASE_URL to run these;
// the database is migrated in place and render_jobs/quotes are emptied.
func openPG(t *testing.T) (*ent.Client, *pgxpool.Pool) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	entc, pool, err := Open(ctx, Config{
		DSN:         dsn,
		MaxConns:    10,
		MinConns:    1,
		DialTimeout: 5 * time.Second,
	}, testLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { Close(entc, pool, testLogger()) })

	if err := entc.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := entc.RenderJob.Delete().Exec(ctx); err != nil {
		t.Fatalf("clear render_jobs: %v", err)
	}
	if _, err := entc.Quote.Delete().Exec(ctx); err != nil {
		t.Fatalf("clear quotes: %v", err)
	}
	return entc, pool
}

func seedPGJob(t *testing.T, entc *ent.Client, status string, createdAt time.Time, startedAt *time.Time) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	tenantID := uuid.New()
	quote, err := entc.Quote.Create().SetTenantID(tenantID).Save(ctx)
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	create := entc.RenderJob.Create().
		SetTenantID(tenantID).
		SetQuoteID(quote.ID).
		SetPrompt("p").
		SetStatus(status).
		SetCreatedAt(createdAt)
	if startedAt != nil {
		create.SetStartedAt(*startedAt)
	}
	job, err := create.Save(ctx)
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job.ID
}

func TestClaimOldestFirstAndMarksRunning(t *testing.T) {
	entc, pool := openPG(t)
	repo := NewRenderJobRepository(entc, pool, testLogger())
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	third := seedPGJob(t, entc, string(constants.JobStatusQueued), base.Add(2*time.Minute), nil)
	first := seedPGJob(t, entc, string(constants.JobStatusQueued), base, nil)
	second := seedPGJob(t, entc, string(constants.JobStatusQueued), base.Add(time.Minute), nil)
	_ = third

	staleBefore := time.Now().Add(-10 * time.Minute)
	jobs, err := repo.Claim(ctx, 2, staleBefore)
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("claimed %d, want 2", len(jobs))
	}
	if jobs[0].ID != first || jobs[1].ID != second {
		t.Errorf("claim order = %v, %v; want oldest first", jobs[0].ID, jobs[1].ID)
	}
	for _, j := range jobs {
		if j.Status != constants.JobStatusRunning {
			t.Errorf("job %s status = %q", j.ID, j.Status)
		}
		if j.StartedAt == nil {
			t.Errorf("job %s has no started_at", j.ID)
		}
	}

	// the third job is still queued and claimable
	rest, err := repo.Claim(ctx, 10, staleBefore)
	if err != nil {
		t.Fatalf("Claim rest: %v", err)
	}
	if len(rest) != 1 || rest[0].ID != third {
		t.Errorf("rest = %+v", rest)
	}
}

func TestClaimSkipsFreshRunningAndTerminal(t *testing.T) {
	entc, pool := openPG(t)
	repo := NewRenderJobRepository(entc, pool, testLogger())
	ctx := context.Background()

	now := time.Now().UTC()
	fresh := now.Add(-1 * time.Minute)
	seedPGJob(t, entc, string(constants.JobStatusRunning), now.Add(-time.Hour), &fresh)
	seedPGJob(t, entc, string(constants.JobStatusDone), now.Add(-time.Hour), nil)
	seedPGJob(t, entc, string(constants.JobStatusFailed), now.Add(-time.Hour), nil)

	jobs, err := repo.Claim(ctx, 10, now.Add(-10*time.Minute))
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("claimed %d, want 0", len(jobs))
	}
}

func TestClaimReclaimsStaleRunning(t *testing.T) {
	entc, pool := openPG(t)
	repo := NewRenderJobRepository(entc, pool, testLogger())
	ctx := context.Background()

	now := time.Now().UTC()
	stale := now.Add(-30 * time.Minute)
	id := seedPGJob(t, entc, string(constants.JobStatusRunning), now.Add(-time.Hour), &stale)

	jobs, err := repo.Claim(ctx, 10, now.Add(-10*time.Minute))
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != id {
		t.Fatalf("jobs = %+v", jobs)
	}
	// started_at is refreshed, so an immediate second pass sees nothing
	again, err := repo.Claim(ctx, 10, now.Add(-10*time.Minute))
	if err != nil {
		t.Fatalf("Claim again: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("reclaimed a just-reclaimed job")
	}
}

func TestClaimStalenessBoundaryIsStrict(t *testing.T) {
	entc, pool := openPG(t)
	repo := NewRenderJobRepository(entc, pool, testLogger())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	boundary := now.Add(-10 * time.Minute)
	seedPGJob(t, entc, string(constants.JobStatusRunning), now.Add(-time.Hour), &boundary)

	// started_at == staleBefore: not yet stale
	jobs, err := repo.Claim(ctx, 10, boundary)
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("claimed at the exact boundary; staleness must be strict")
	}

	// one tick past the boundary it is
	jobs, err = repo.Claim(ctx, 10, boundary.Add(time.Microsecond))
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("claimed %d past the boundary, want 1", len(jobs))
	}
}

func TestClaimConcurrentInvocationsNeverOverlap(t *testing.T) {
	entc, pool := openPG(t)
	repo := NewRenderJobRepository(entc, pool, testLogger())

	base := time.Now().UTC().Add(-time.Hour)
	total := 20
	for i := 0; i < total; i++ {
		seedPGJob(t, entc, string(constants.JobStatusQueued), base.Add(time.Duration(i)*time.Second), nil)
	}

	staleBefore := time.Now().Add(-10 * time.Minute)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[uuid.UUID]int{}
	)
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				jobs, err := repo.Claim(context.Background(), 3, staleBefore)
				if err != nil {
					t.Errorf("Claim: %v", err)
					return
				}
				if len(jobs) == 0 {
					return
				}
				mu.Lock()
				for _, j := range jobs {
					seen[j.ID]++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != total {
		t.Errorf("claimed %d distinct jobs, want %d", len(seen), total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("job %s claimed %d times", id, n)
		}
	}
}
