package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Email is one transactional message.
type Email struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailSender is the email-provider boundary; the platform's provider
// wrapper lives outside this service.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}

// HTTPSenderConfig for the JSON POST adapter.
type HTTPSenderConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// HTTPSender posts messages to a transactional email API.
type HTTPSender struct {
	cfg    HTTPSenderConfig
	http   *http.Client
	logger *slog.Logger
}

func NewHTTPSender(cfg HTTPSenderConfig, logger *slog.Logger) *HTTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPSender{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (s *HTTPSender) Send(ctx context.Context, msg Email) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("email http error: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("email response body close error", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
