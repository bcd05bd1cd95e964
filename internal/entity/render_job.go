package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
)

// RenderJob represents one render attempt for data transfer between layers.
type RenderJob struct {
	ID           uuid.UUID           `json:"id"`
	TenantID     uuid.UUID           `json:"tenant_id"`
	QuoteID      uuid.UUID           `json:"quote_id"`
	Status       constants.JobStatus `json:"status"`
	Prompt       string              `json:"prompt"`
	CreatedAt    time.Time           `json:"created_at"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	FinishedAt   *time.Time          `json:"finished_at,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
}
