package generation

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the image-generation client.
type Config struct {
	BaseURL            string        // default https://api.openai.com/v1
	Model              string        // default model when the policy names none
	Timeout            time.Duration // http client timeout for the generation call
	AnchorFetchTimeout time.Duration // bound on downloading the customer photo
}

type Client struct {
	cfg    Config
	http   *http.Client
	fetch  *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-image-1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if cfg.AnchorFetchTimeout <= 0 {
		cfg.AnchorFetchTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		fetch:  &http.Client{Timeout: cfg.AnchorFetchTimeout},
		logger: logger,
	}
}
