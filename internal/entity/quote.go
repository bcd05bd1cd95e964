package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QuoteImage is one customer-uploaded photo attached to a quote.
type QuoteImage struct {
	URL     string `json:"url"`
	Primary bool   `json:"primary,omitempty"`
}

// Quote represents a quote row as seen by the render worker: the customer
// input it reads and the render projection it writes.
type Quote struct {
	ID            uuid.UUID    `json:"id"`
	TenantID      uuid.UUID    `json:"tenant_id"`
	Images        []QuoteImage `json:"images,omitempty"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	RenderOptIn   bool         `json:"render_opt_in"`

	RenderStatus   *string    `json:"render_status,omitempty"`
	RenderImageURL *string    `json:"render_image_url,omitempty"`
	RenderPrompt   *string    `json:"render_prompt,omitempty"`
	RenderError    *string    `json:"render_error,omitempty"`
	RenderedAt     *time.Time `json:"rendered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AnchorImage picks the photo used to condition generation: the first image
// flagged primary, else the first image. Nil when the quote has no photos.
func (q *Quote) AnchorImage() *QuoteImage {
	for i := range q.Images {
		if q.Images[i].Primary {
			return &q.Images[i]
		}
	}
	if len(q.Images) > 0 {
		return &q.Images[0]
	}
	return nil
}

// ParseQuoteImages decodes the images JSON column. A missing or empty column
// is a quote with no photos, not an error.
func ParseQuoteImages(raw json.RawMessage) ([]QuoteImage, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var imgs []QuoteImage
	if err := json.Unmarshal(raw, &imgs); err != nil {
		return nil, err
	}
	return imgs, nil
}
