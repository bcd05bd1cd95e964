package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/repository"
)

type stubJobRepo struct {
	jobs  []*entity.RenderJob
	query repository.ListJobsQuery
}

func (s *stubJobRepo) Claim(context.Context, int, time.Time) ([]*entity.RenderJob, error) {
	return nil, nil
}
func (s *stubJobRepo) GetByID(context.Context, uuid.UUID) (*entity.RenderJob, error) {
	return nil, nil
}
func (s *stubJobRepo) FinishSuccess(context.Context, uuid.UUID) error         { return nil }
func (s *stubJobRepo) FinishFailure(context.Context, uuid.UUID, string) error { return nil }
func (s *stubJobRepo) CountDoneSince(context.Context, uuid.UUID, time.Time) (int, error) {
	return 0, nil
}
func (s *stubJobRepo) List(_ context.Context, q repository.ListJobsQuery) ([]*entity.RenderJob, error) {
	s.query = q
	return s.jobs, nil
}

func jobAt(day time.Time, status constants.JobStatus) *entity.RenderJob {
	return &entity.RenderJob{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		QuoteID:   uuid.New(),
		Status:    status,
		CreatedAt: day,
	}
}

func TestUsageReportXLSX(t *testing.T) {
	day1 := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	repo := &stubJobRepo{jobs: []*entity.RenderJob{
		jobAt(day1, constants.JobStatusDone),
		jobAt(day1, constants.JobStatusDone),
		jobAt(day1, constants.JobStatusFailed),
		jobAt(day2, constants.JobStatusRunning),
	}}
	svc := NewService(repo, nil)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	b, err := svc.UsageReportXLSX(context.Background(), uuid.New(), &from, &to)
	if err != nil {
		t.Fatalf("UsageReportXLSX: %v", err)
	}

	// the window sent to the store is half-open with `to` made inclusive
	if repo.query.From == nil || !repo.query.From.Equal(from) {
		t.Errorf("query from = %v", repo.query.From)
	}
	if repo.query.To == nil || !repo.query.To.Equal(to.AddDate(0, 0, 1)) {
		t.Errorf("query to = %v, want day after to-date", repo.query.To)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Render Usage")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 days", len(rows))
	}
	if rows[0][0] != "Date (UTC)" {
		t.Errorf("header = %v", rows[0])
	}

	// day1: 3 attempted, 2 done, 1 failed, 0 in flight
	if rows[1][0] != "2026-05-01" || rows[1][1] != "3" || rows[1][2] != "2" || rows[1][3] != "1" || rows[1][4] != "0" {
		t.Errorf("day1 row = %v", rows[1])
	}
	// day2: 1 attempted, still in flight
	if rows[2][0] != "2026-05-02" || rows[2][1] != "1" || rows[2][4] != "1" {
		t.Errorf("day2 row = %v", rows[2])
	}
}
