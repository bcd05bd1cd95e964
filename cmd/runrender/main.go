package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/artifact"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/generation"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/keys"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/notify"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/policy"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/quota"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/repository"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/worker"
)

// runrender performs a single worker invocation from the command line and
// prints the run report as JSON. Useful for cron-less environments and for
// draining a queue by hand.
func main() {
	maxJobs := flag.Int("max", 0, "claim at most this many jobs (0 = configured default)")
	debug := flag.Bool("debug", false, "include redacted per-job diagnostics in the report")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	jobsRepo := repository.NewRenderJobRepository(entc, pool, logger)
	quotesRepo := repository.NewQuoteRepository(entc, logger)
	tenantsRepo := repository.NewTenantRepository(entc, logger)

	industries, err := policy.LoadIndustryPacks()
	if err != nil {
		logger.Error("loading industry packs", "error", err)
		os.Exit(1)
	}
	policyResolver := policy.NewResolver(tenantsRepo, industries,
		policy.Layer{ModelID: cfg.Generation.Model}, logger)

	cipher, err := keys.NewCipher(cfg.Crypto.CredentialKeyHex)
	if err != nil {
		logger.Error("loading credential cipher", "error", err)
		os.Exit(2)
	}
	keyResolver := keys.NewResolver(tenantsRepo, cipher, cfg.Generation.PlatformAPIKey, logger)

	generator := generation.NewClient(generation.Config{
		BaseURL:            cfg.Generation.BaseURL,
		Model:              cfg.Generation.Model,
		Timeout:            cfg.Generation.Timeout,
		AnchorFetchTimeout: cfg.Generation.AnchorFetchTimeout,
	}, logger)
	artifacts := artifact.NewHTTPStore(artifact.Config{
		UploadBaseURL: cfg.Storage.UploadBaseURL,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		Timeout:       cfg.Storage.Timeout,
	}, logger)
	sender := notify.NewHTTPSender(notify.HTTPSenderConfig{
		Endpoint: cfg.Email.Endpoint,
		APIKey:   cfg.Email.APIKey,
		Timeout:  cfg.Email.Timeout,
	}, logger)
	dispatcher := notify.NewDispatcher(sender, cfg.Email.FromAddress, cfg.Email.OperatorAddress, logger)

	svc := worker.NewService(
		worker.Config{
			MaxJobsPerRun: cfg.Worker.MaxJobsPerRun,
			StaleAfter:    cfg.Worker.StaleAfter,
		},
		jobsRepo, quotesRepo, tenantsRepo,
		policyResolver, quota.NewGate(jobsRepo, logger), keyResolver,
		generator, artifacts,
		worker.NewCommitter(jobsRepo, quotesRepo, logger),
		dispatcher, logger,
	)

	report, err := svc.Run(ctx, worker.RunParams{MaxJobs: *maxJobs, Debug: *debug})
	if err != nil {
		logger.Error("worker run failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Error("encoding report", "error", err)
		os.Exit(1)
	}
}
