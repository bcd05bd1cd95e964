package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

type QuoteRepository interface {
	GetByID(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error)
	// MarkRenderRunning mirrors a fresh claim onto the quote projection.
	MarkRenderRunning(ctx context.Context, quoteID uuid.UUID) error
	SetRenderSuccess(ctx context.Context, quoteID uuid.UUID, imageURL, prompt string) error
	SetRenderFailure(ctx context.Context, quoteID uuid.UUID, message string) error
}

type quoteRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewQuoteRepository(entc *ent.Client, log *slog.Logger) QuoteRepository {
	return &quoteRepo{ent: entc, log: log}
}

func (r *quoteRepo) GetByID(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error) {
	row, err := r.ent.Quote.Query().Where(quote.ID(quoteID)).Only(ctx)
	if err != nil {
		return nil, err
	}
	images, err := entity.ParseQuoteImages(row.Images)
	if err != nil {
		// a malformed images blob means "no anchor", not a dead quote
		r.log.Warn("quote images blob unreadable", "quote_id", quoteID, "err", err)
		images = nil
	}
	return &entity.Quote{
		ID:             row.ID,
		TenantID:       row.TenantID,
		Images:         images,
		CustomerName:   row.CustomerName,
		CustomerEmail:  row.CustomerEmail,
		RenderOptIn:    row.RenderOptIn,
		RenderStatus:   row.RenderStatus,
		RenderImageURL: row.RenderImageURL,
		RenderPrompt:   row.RenderPrompt,
		RenderError:    row.RenderError,
		RenderedAt:     row.RenderedAt,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func (r *quoteRepo) MarkRenderRunning(ctx context.Context, quoteID uuid.UUID) error {
	_, err := r.ent.Quote.
		UpdateOneID(quoteID).
		SetRenderStatus(string(constants.RenderStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Warn("quote render running mirror failed", "quote_id", quoteID, "err", err)
	}
	return err
}

func (r *quoteRepo) SetRenderSuccess(ctx context.Context, quoteID uuid.UUID, imageURL, prompt string) error {
	_, err := r.ent.Quote.
		UpdateOneID(quoteID).
		SetRenderStatus(string(constants.RenderStatusRendered)).
		SetRenderImageURL(imageURL).
		SetRenderPrompt(prompt).
		ClearRenderError().
		SetRenderedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.log.Error("quote render success mirror failed", "quote_id", quoteID, "err", err)
		return err
	}
	r.log.Info("quote render mirrored (rendered)", "quote_id", quoteID)
	return nil
}

func (r *quoteRepo) SetRenderFailure(ctx context.Context, quoteID uuid.UUID, message string) error {
	_, err := r.ent.Quote.
		UpdateOneID(quoteID).
		SetRenderStatus(string(constants.RenderStatusFailed)).
		SetRenderError(message).
		Save(ctx)
	if err != nil {
		r.log.Error("quote render failure mirror failed", "quote_id", quoteID, "err", err)
		return err
	}
	r.log.Info("quote render mirrored (failed)", "quote_id", quoteID, "error", message)
	return nil
}
