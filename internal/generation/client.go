package generation

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxAnchorBytes caps the customer photo download; anything bigger is
// treated as a fetch failure and the call falls back to text-only.
const maxAnchorBytes = 20 << 20

// Generate implements Generator. When the request carries an anchor image
// URL, the photo is fetched under its own short timeout and the call runs
// image-conditioned ("edit") generation to preserve visual continuity with
// the customer's photo; on fetch failure or absence of a photo it falls back
// to unconditioned generation. One attempt, no internal retry.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	model := req.ModelID
	if model == "" {
		model = c.cfg.Model
	}
	prompt := composePrompt(req)

	c.logger.Info("generation.start",
		"req_id", rid,
		"model", model,
		"prompt_len", len(prompt),
		"has_anchor", req.AnchorImageURL != "",
	)

	var anchor []byte
	if req.AnchorImageURL != "" {
		var err error
		anchor, err = c.fetchAnchor(ctx, req.AnchorImageURL)
		if err != nil {
			c.logger.Warn("generation.anchor_fetch_failed",
				"req_id", rid, "err", err,
				"hint", "falling back to unconditioned generation")
			anchor = nil
		}
	}

	body := map[string]any{
		"model":  model,
		"prompt": prompt,
		"n":      1,
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/images/generations"
	if anchor != nil {
		body["image"] = base64.StdEncoding.EncodeToString(anchor)
		endpoint = strings.TrimRight(c.cfg.BaseURL, "/") + "/images/edits"
	}

	raw, err := c.post(ctx, endpoint, req.Credential, body)
	if err != nil {
		c.logger.Error("generation.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var resp struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Error("generation.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode generation response: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		c.logger.Error("generation.no_image",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no image in generation response")
	}
	img, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode generated image: %w", err)
	}

	c.logger.Info("generation.ok",
		"req_id", rid,
		"model", model,
		"conditioned", anchor != nil,
		"image_bytes", len(img),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{
		Image:       img,
		ContentType: "image/png",
		Conditioned: anchor != nil,
	}, nil
}

func composePrompt(req Request) string {
	parts := make([]string, 0, 3)
	if req.Prompt != "" {
		parts = append(parts, req.Prompt)
	}
	if req.StylePreset != "" {
		parts = append(parts, "Style: "+req.StylePreset+".")
	}
	if req.NegativeGuidance != "" {
		parts = append(parts, "Avoid: "+req.NegativeGuidance+".")
	}
	return strings.Join(parts, " ")
}

func (c *Client) fetchAnchor(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.AnchorFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.fetch.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch anchor: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("anchor body close error", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("anchor status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAnchorBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read anchor: %w", err)
	}
	if len(data) > maxAnchorBytes {
		return nil, fmt.Errorf("anchor exceeds %d bytes", maxAnchorBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("anchor is empty")
	}
	return data, nil
}

func (c *Client) post(ctx context.Context, url, credential string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("generation response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("generation status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
