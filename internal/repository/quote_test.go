package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent"
)

func seedQuote(t *testing.T, client *ent.Client) *ent.Quote {
	t.Helper()
	images, _ := json.Marshal([]map[string]any{
		{"url": "https://photos.example.com/front.jpg", "primary": true},
		{"url": "https://photos.example.com/side.jpg"},
	})
	row, err := client.Quote.Create().
		SetTenantID(uuid.New()).
		SetImages(images).
		SetCustomerName("Dana").
		SetCustomerEmail("dana@example.com").
		SetRenderOptIn(true).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	return row
}

func TestQuoteGetByID(t *testing.T) {
	client := newTestClient(t)
	repo := NewQuoteRepository(client, testLogger())
	row := seedQuote(t, client)

	q, err := repo.GetByID(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if q.CustomerEmail != "dana@example.com" || !q.RenderOptIn {
		t.Errorf("quote = %+v", q)
	}
	if len(q.Images) != 2 {
		t.Fatalf("images = %+v", q.Images)
	}
	if img := q.AnchorImage(); img == nil || img.URL != "https://photos.example.com/front.jpg" {
		t.Errorf("anchor = %+v", img)
	}

	if _, err := repo.GetByID(context.Background(), uuid.New()); err == nil {
		t.Error("unknown quote must error")
	}
}

func TestQuoteRenderProjectionLifecycle(t *testing.T) {
	client := newTestClient(t)
	repo := NewQuoteRepository(client, testLogger())
	ctx := context.Background()
	row := seedQuote(t, client)

	if err := repo.MarkRenderRunning(ctx, row.ID); err != nil {
		t.Fatalf("MarkRenderRunning: %v", err)
	}
	q, _ := repo.GetByID(ctx, row.ID)
	if q.RenderStatus == nil || *q.RenderStatus != string(constants.RenderStatusRunning) {
		t.Errorf("status = %v", q.RenderStatus)
	}

	// a failure first, then a successful retry must clear the error
	if err := repo.SetRenderFailure(ctx, row.ID, "GENERATION_FAILED: upstream 500"); err != nil {
		t.Fatalf("SetRenderFailure: %v", err)
	}
	q, _ = repo.GetByID(ctx, row.ID)
	if q.RenderStatus == nil || *q.RenderStatus != string(constants.RenderStatusFailed) {
		t.Errorf("status = %v", q.RenderStatus)
	}
	if q.RenderError == nil || *q.RenderError != "GENERATION_FAILED: upstream 500" {
		t.Errorf("error = %v", q.RenderError)
	}

	if err := repo.SetRenderSuccess(ctx, row.ID, "https://cdn.example.com/renders/a.png", "full prompt"); err != nil {
		t.Fatalf("SetRenderSuccess: %v", err)
	}
	q, _ = repo.GetByID(ctx, row.ID)
	if q.RenderStatus == nil || *q.RenderStatus != string(constants.RenderStatusRendered) {
		t.Errorf("status = %v", q.RenderStatus)
	}
	if q.RenderImageURL == nil || *q.RenderImageURL != "https://cdn.example.com/renders/a.png" {
		t.Errorf("image url = %v", q.RenderImageURL)
	}
	if q.RenderPrompt == nil || *q.RenderPrompt != "full prompt" {
		t.Errorf("prompt = %v", q.RenderPrompt)
	}
	if q.RenderError != nil {
		t.Errorf("error not cleared: %v", *q.RenderError)
	}
	if q.RenderedAt == nil {
		t.Error("rendered_at not set")
	}
}
