package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/repository"
)

// Service is a tiny façade over the job repository that produces XLSX bytes
// for per-tenant render usage reports.
type Service struct {
	jobs   repository.RenderJobRepository
	logger *slog.Logger
}

func NewService(jobs repository.RenderJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

type dayUsage struct {
	day    string
	total  int
	done   int
	failed int
}

// UsageReportXLSX returns an XLSX workbook (as bytes) of render usage per
// UTC day for the given tenant and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all jobs for the tenant.
func (s *Service) UsageReportXLSX(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		toDate = &t
	}

	jobs, err := s.jobs.List(ctx, repository.ListJobsQuery{
		TenantID: tenantID,
		From:     fromDate,
		To:       toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query render jobs: %w", err)
	}

	byDay := map[string]*dayUsage{}
	for _, j := range jobs {
		day := j.CreatedAt.UTC().Format("2006-01-02")
		u, ok := byDay[day]
		if !ok {
			u = &dayUsage{day: day}
			byDay[day] = u
		}
		u.total++
		switch j.Status {
		case constants.JobStatusDone:
			u.done++
		case constants.JobStatusFailed:
			u.failed++
		}
	}
	days := make([]*dayUsage, 0, len(byDay))
	for _, u := range byDay {
		days = append(days, u)
	}
	sort.Slice(days, func(i, k int) bool { return days[i].day < days[k].day })

	f := excelize.NewFile()
	const sheet = "Render Usage"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date (UTC)",
		"Renders Attempted",
		"Succeeded",
		"Failed",
		"In Flight",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, u := range days {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, u.day)
		write(2, u.total)
		write(3, u.done)
		write(4, u.failed)
		write(5, u.total-u.done-u.failed)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "E", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.usage.ok",
		"tenant_id", tenantID.String(),
		"jobs", len(jobs),
		"days", len(days),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
