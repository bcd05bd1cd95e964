package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	renderv1 "github.com/aiphotoquote-dotcom/aiphotoquote/gen/renderv1"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/export"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/repository"
)

const maxListLimit = 200

// AdminService is the operator-facing gRPC read surface over render state.
type AdminService struct {
	renderv1.UnimplementedRenderAdminServiceServer
	quotes  repository.QuoteRepository
	jobs    repository.RenderJobRepository
	exports *export.Service
	logger  *slog.Logger
}

func NewAdminService(quotes repository.QuoteRepository, jobs repository.RenderJobRepository, exports *export.Service, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{quotes: quotes, jobs: jobs, exports: exports, logger: logger}
}

func (s *AdminService) GetQuoteRenderState(ctx context.Context, req *renderv1.GetQuoteRenderStateRequest) (*renderv1.GetQuoteRenderStateResponse, error) {
	quoteID, err := uuid.Parse(strings.TrimSpace(req.GetQuoteId()))
	if err != nil {
		return nil, common.InvalidArgumentError("quote_id must be a UUID")
	}

	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		s.logger.Warn("admin.get_quote_failed", "quote_id", quoteID, "err", err)
		return nil, common.NotFoundError("quote not found")
	}

	resp := &renderv1.GetQuoteRenderStateResponse{QuoteId: quote.ID.String()}
	if quote.RenderStatus != nil {
		resp.RenderStatus = *quote.RenderStatus
	}
	if quote.RenderImageURL != nil {
		resp.RenderImageUrl = *quote.RenderImageURL
	}
	if quote.RenderError != nil {
		resp.RenderError = *quote.RenderError
	}
	if quote.RenderedAt != nil {
		resp.RenderedAt = quote.RenderedAt.Format(time.RFC3339Nano)
	}
	return resp, nil
}

func (s *AdminService) ListRenderJobs(ctx context.Context, req *renderv1.ListRenderJobsRequest) (*renderv1.ListRenderJobsResponse, error) {
	q := repository.ListJobsQuery{Limit: maxListLimit}

	if raw := strings.TrimSpace(req.GetTenantId()); raw != "" {
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentError("tenant_id must be a UUID")
		}
		q.TenantID = tenantID
	}
	if status := strings.TrimSpace(req.GetStatus()); status != "" {
		if !validStatus(status) {
			return nil, common.InvalidArgumentErrorf("unknown status %q", status)
		}
		q.Status = status
	}
	if limit := int(req.GetLimit()); limit > 0 && limit < maxListLimit {
		q.Limit = limit
	}

	jobs, err := s.jobs.List(ctx, q)
	if err != nil {
		s.logger.Warn("admin.list_jobs_failed", "err", err)
		return nil, common.InternalError("list render jobs failed")
	}

	out := make([]*renderv1.RenderJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobToProto(j))
	}
	return &renderv1.ListRenderJobsResponse{Jobs: out}, nil
}

func (s *AdminService) ExportUsageReport(ctx context.Context, req *renderv1.ExportUsageReportRequest) (*renderv1.ExportUsageReportResponse, error) {
	tenantID, err := uuid.Parse(strings.TrimSpace(req.GetTenantId()))
	if err != nil {
		return nil, common.InvalidArgumentError("tenant_id must be a UUID")
	}

	parseDate := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return &t, nil
	}
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	xlsx, err := s.exports.UsageReportXLSX(ctx, tenantID, from, to)
	if err != nil {
		s.logger.Warn("admin.export_failed", "tenant_id", tenantID, "err", err)
		return nil, common.InternalError("usage export failed")
	}

	return &renderv1.ExportUsageReportResponse{
		Xlsx:     xlsx,
		Filename: fmt.Sprintf("render-usage-%s.xlsx", tenantID),
	}, nil
}

func jobToProto(j *entity.RenderJob) *renderv1.RenderJob {
	out := &renderv1.RenderJob{
		Id:        j.ID.String(),
		TenantId:  j.TenantID.String(),
		QuoteId:   j.QuoteID.String(),
		Status:    string(j.Status),
		CreatedAt: j.CreatedAt.Format(time.RFC3339Nano),
	}
	if j.StartedAt != nil {
		out.StartedAt = j.StartedAt.Format(time.RFC3339Nano)
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.Format(time.RFC3339Nano)
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	return out
}

func validStatus(status string) bool {
	for _, s := range constants.JobStatuses {
		if s == status {
			return true
		}
	}
	return false
}
