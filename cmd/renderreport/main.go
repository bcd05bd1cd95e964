package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/export"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/repository"
)

// renderreport writes a tenant's render usage report to an XLSX file.
func main() {
	tenantFlag := flag.String("tenant", "", "tenant UUID (required)")
	fromFlag := flag.String("from", "", "start date YYYY-MM-DD (optional)")
	toFlag := flag.String("to", "", "end date YYYY-MM-DD, inclusive (optional)")
	outFlag := flag.String("o", "", "output path (default render-usage-<tenant>.xlsx)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	tenantID, err := uuid.Parse(*tenantFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: -tenant must be a UUID")
		flag.Usage()
		os.Exit(2)
	}

	parseDate := func(name, raw string) *time.Time {
		if raw == "" {
			return nil
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s must be YYYY-MM-DD, got %q\n", name, raw)
			os.Exit(2)
		}
		return &t
	}
	from := parseDate("-from", *fromFlag)
	to := parseDate("-to", *toFlag)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		fmt.Fprintln(os.Stderr, "error: DB_URL is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: opening database:", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	jobsRepo := repository.NewRenderJobRepository(entc, pool, logger)
	xlsx, err := export.NewService(jobsRepo, logger).UsageReportXLSX(ctx, tenantID, from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: building report:", err)
		os.Exit(1)
	}

	out := *outFlag
	if out == "" {
		out = fmt.Sprintf("render-usage-%s.xlsx", tenantID)
	}
	if err := os.WriteFile(out, xlsx, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "error: writing", out+":", err)
		os.Exit(1)
	}
	fmt.Println("wrote", out)
}
