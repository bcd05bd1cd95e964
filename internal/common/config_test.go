package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/app")
	t.Setenv("WORKER_SECRET", "s3cret")
	// clear knobs the environment might carry
	for _, k := range []string{"WORKER_MAX_JOBS", "WORKER_STALE_AFTER", "RENDER_TIMEOUT", "HTTP_ADDR"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Worker.MaxJobsPerRun != 5 {
		t.Errorf("MaxJobsPerRun = %d, want 5", cfg.Worker.MaxJobsPerRun)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
}

func TestFinalizeDerivesStaleAfter(t *testing.T) {
	cfg := &Config{
		Generation: GenerationConfig{
			Timeout:            90 * time.Second,
			AnchorFetchTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{Timeout: 30 * time.Second},
	}
	cfg.Finalize()

	want := 90*time.Second + 10*time.Second + 30*time.Second + 5*time.Minute
	if cfg.Worker.StaleAfter != want {
		t.Errorf("StaleAfter = %v, want %v", cfg.Worker.StaleAfter, want)
	}
}

func TestFinalizeKeepsExplicitStaleAfter(t *testing.T) {
	cfg := &Config{Worker: WorkerConfig{StaleAfter: time.Hour}}
	cfg.Finalize()
	if cfg.Worker.StaleAfter != time.Hour {
		t.Errorf("StaleAfter = %v, explicit value overwritten", cfg.Worker.StaleAfter)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing dsn", Config{Server: ServerConfig{WorkerSecret: "s", HTTPAddr: ":8080"}}},
		{"missing secret", Config{Database: DatabaseConfig{DSN: "d"}, Server: ServerConfig{HTTPAddr: ":8080"}}},
		{"missing http addr", Config{Database: DatabaseConfig{DSN: "d"}, Server: ServerConfig{WorkerSecret: "s"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "150ms")
	if got := getEnvAsDuration("SOME_TIMEOUT", time.Second); got != 150*time.Millisecond {
		t.Errorf("got %v", got)
	}
	t.Setenv("SOME_TIMEOUT", "nonsense")
	if got := getEnvAsDuration("SOME_TIMEOUT", time.Second); got != time.Second {
		t.Errorf("bad value should fall back, got %v", got)
	}
}
