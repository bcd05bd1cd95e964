package artifact

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config for the HTTP upload adapter.
type Config struct {
	UploadBaseURL string // PUT target, e.g. a presigned-capable proxy
	PublicBaseURL string // base of the URL handed to customers
	Timeout       time.Duration
}

// HTTPStore uploads renders with a plain PUT and returns the public URL.
type HTTPStore struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewHTTPStore(cfg Config, logger *slog.Logger) *HTTPStore {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPStore{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (s *HTTPStore) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	start := time.Now()
	key := "renders/" + uuid.New().String() + extensionFor(contentType)

	target := strings.TrimRight(s.cfg.UploadBaseURL, "/") + "/" + key
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(data))

	resp, err := s.http.Do(req)
	if err != nil {
		s.logger.Error("artifact.upload_error", "key", key, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("artifact upload: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("artifact response body close error", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.Error("artifact.upload_rejected", "key", key,
			"status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("artifact upload status %d: %s", resp.StatusCode, string(body))
	}

	url := strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	s.logger.Info("artifact.upload_ok", "key", key, "bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds())
	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
