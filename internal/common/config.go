package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Worker     WorkerConfig
	Generation GenerationConfig
	Storage    StorageConfig
	Email      EmailConfig
	Crypto     CryptoConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds the trigger and admin listener configuration
type ServerConfig struct {
	HTTPAddr string
	GRPCAddr string
	// shared secret the scheduler presents on every trigger call
	WorkerSecret string
}

// WorkerConfig holds the batch parameters of one worker invocation.
// StaleAfter zero means "derive from the generation timeouts" (see Finalize).
type WorkerConfig struct {
	MaxJobsPerRun int
	StaleAfter    time.Duration
}

// GenerationConfig holds image-generation API configuration
type GenerationConfig struct {
	BaseURL            string
	Model              string
	Timeout            time.Duration
	AnchorFetchTimeout time.Duration
	// platform key used for grace-credit renders; empty disables grace
	PlatformAPIKey string
}

// StorageConfig holds object-storage upload configuration
type StorageConfig struct {
	UploadBaseURL string
	PublicBaseURL string
	Timeout       time.Duration
}

// EmailConfig holds transactional email configuration
type EmailConfig struct {
	Endpoint        string
	APIKey          string
	FromAddress     string
	OperatorAddress string
	Timeout         time.Duration
}

// CryptoConfig holds the key used to decrypt stored tenant credentials
type CryptoConfig struct {
	CredentialKeyHex string
}

// staleMargin is added on top of the worst-case per-job external time when
// WORKER_STALE_AFTER is not set explicitly.
const staleMargin = 5 * time.Minute

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
			GRPCAddr:     getEnv("GRPC_ADDR", ":9090"),
			WorkerSecret: getEnv("WORKER_SECRET", ""),
		},
		Worker: WorkerConfig{
			MaxJobsPerRun: getEnvAsInt("WORKER_MAX_JOBS", 5),
			StaleAfter:    getEnvAsDuration("WORKER_STALE_AFTER", 0),
		},
		Generation: GenerationConfig{
			BaseURL:            getEnv("RENDER_API_BASE_URL", "https://api.openai.com/v1"),
			Model:              getEnv("RENDER_MODEL", "gpt-image-1"),
			Timeout:            getEnvAsDuration("RENDER_TIMEOUT", 90*time.Second),
			AnchorFetchTimeout: getEnvAsDuration("RENDER_ANCHOR_FETCH_TIMEOUT", 10*time.Second),
			PlatformAPIKey:     getEnv("RENDER_PLATFORM_API_KEY", ""),
		},
		Storage: StorageConfig{
			UploadBaseURL: getEnv("STORAGE_UPLOAD_URL", ""),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_URL", ""),
			Timeout:       getEnvAsDuration("STORAGE_TIMEOUT", 30*time.Second),
		},
		Email: EmailConfig{
			Endpoint:        getEnv("EMAIL_ENDPOINT", ""),
			APIKey:          getEnv("EMAIL_API_KEY", ""),
			FromAddress:     getEnv("EMAIL_FROM", ""),
			OperatorAddress: getEnv("EMAIL_OPERATOR", ""),
			Timeout:         getEnvAsDuration("EMAIL_TIMEOUT", 15*time.Second),
		},
		Crypto: CryptoConfig{
			CredentialKeyHex: getEnv("CREDENTIAL_KEY", ""),
		},
	}
	cfg.Finalize()
	return cfg
}

// Finalize fills derived values. The stale threshold defaults to the time a
// healthy job could legitimately spend on external calls plus a margin, so a
// crashed worker's claims come back without an operator but a slow render is
// never double-claimed.
func (c *Config) Finalize() {
	if c.Worker.StaleAfter <= 0 {
		c.Worker.StaleAfter = c.Generation.Timeout + c.Generation.AnchorFetchTimeout +
			c.Storage.Timeout + staleMargin
	}
	if c.Worker.MaxJobsPerRun <= 0 {
		c.Worker.MaxJobsPerRun = 5
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.WorkerSecret == "" {
		return NewAppError("CONFIG_ERROR", "WORKER_SECRET is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}
