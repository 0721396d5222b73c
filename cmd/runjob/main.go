package main

import (
	"context"
	"os"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/medignis/docflow/gen/ent"
	"github.com/medignis/docflow/internal/capability/mistral"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/engine"
	repo "github.com/medignis/docflow/internal/repository"
)

// runjob walks one job synchronously from the command line, useful for
// reprocessing a stuck job or debugging a catalog change.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runjob <job-id-uuid>")
		os.Exit(2)
	}
	jobID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid job id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Engine.WalkTimeout)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	jobsRepo := repo.NewJobRepository(entc, logger)
	stepsRepo := repo.NewStepRepository(entc, logger)
	classesRepo := repo.NewDocumentClassRepository(entc, logger)
	execsRepo := repo.NewStepExecutionRepository(entc, logger)
	leasesRepo := repo.NewJobLeaseRepository(entc, logger)

	hostname, _ := os.Hostname()
	orchestrator := engine.NewOrchestrator(
		logger,
		engine.WalkConfig{LeaseTTL: cfg.Engine.LeaseTTL, Holder: hostname + "-runjob"},
		engine.NewCatalog(stepsRepo, logger),
		engine.NewResolver(classesRepo, logger),
		jobsRepo,
		execsRepo,
		leasesRepo,
		mistral.NewClient(cfg.LLM, logger),
		engine.NewConsentRetention(jobsRepo, logger),
	)

	start := time.Now()
	err = orchestrator.Run(ctx, jobID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("walk failed", "job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	job, err := jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		logger.Error("reload job", "job_id", jobID, "error", err)
		os.Exit(1)
	}
	logger.Info("walk OK",
		"job_id", jobID, "status", job.Status, "duration_ms", dur.Milliseconds())
}
