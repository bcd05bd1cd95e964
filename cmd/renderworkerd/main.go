package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	renderv1 "github.com/aiphotoquote-dotcom/aiphotoquote/gen/renderv1"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/artifact"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/export"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/generation"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/keys"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/notify"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/policy"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/quota"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/repository"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/server"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
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

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	jobsRepo := repository.NewRenderJobRepository(entc, pool, logger)
	quotesRepo := repository.NewQuoteRepository(entc, logger)
	tenantsRepo := repository.NewTenantRepository(entc, logger)

	industries, err := policy.LoadIndustryPacks()
	if err != nil {
		logger.Error("loading industry packs", "error", err)
		os.Exit(1)
	}
	platformLayer := policy.Layer{
		ModelID: cfg.Generation.Model,
		PromptPreamble: "A photorealistic visualization of the completed project, " +
			"matching the customer's photo as closely as possible.",
	}
	policyResolver := policy.NewResolver(tenantsRepo, industries, platformLayer, logger)

	cipher, err := keys.NewCipher(cfg.Crypto.CredentialKeyHex)
	if err != nil {
		logger.Error("loading credential cipher", "error", err)
		os.Exit(2)
	}
	keyResolver := keys.NewResolver(tenantsRepo, cipher, cfg.Generation.PlatformAPIKey, logger)

	quotaGate := quota.NewGate(jobsRepo, logger)
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

	committer := worker.NewCommitter(jobsRepo, quotesRepo, logger)
	workerSvc := worker.NewService(
		worker.Config{
			MaxJobsPerRun: cfg.Worker.MaxJobsPerRun,
			StaleAfter:    cfg.Worker.StaleAfter,
		},
		jobsRepo, quotesRepo, tenantsRepo,
		policyResolver, quotaGate, keyResolver,
		generator, artifacts, committer, dispatcher,
		logger,
	)

	// HTTP trigger
	mux := http.NewServeMux()
	mux.Handle("/worker/render", server.NewTriggerHandler(workerSvc, cfg.Server.WorkerSecret, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	// gRPC admin
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exports := export.NewService(jobsRepo, logger)
	renderv1.RegisterRenderAdminServiceServer(grpcServer,
		server.NewAdminService(quotesRepo, jobsRepo, exports, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen", "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
