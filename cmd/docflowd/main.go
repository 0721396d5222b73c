package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/medignis/docflow/gen/docflow/v1"
	"github.com/medignis/docflow/internal/async"
	"github.com/medignis/docflow/internal/capability/mistral"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/engine"
	"github.com/medignis/docflow/internal/export"
	repo "github.com/medignis/docflow/internal/repository"
	"github.com/medignis/docflow/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, 3*time.Second); err != nil {
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	stepsRepo := repo.NewStepRepository(entc, logger)
	classesRepo := repo.NewDocumentClassRepository(entc, logger)
	execsRepo := repo.NewStepExecutionRepository(entc, logger)
	leasesRepo := repo.NewJobLeaseRepository(entc, logger)

	hostname, _ := os.Hostname()
	orchestrator := engine.NewOrchestrator(
		logger,
		engine.WalkConfig{LeaseTTL: cfg.Engine.LeaseTTL, Holder: hostname},
		engine.NewCatalog(stepsRepo, logger),
		engine.NewResolver(classesRepo, logger),
		jobsRepo,
		execsRepo,
		leasesRepo,
		mistral.NewClient(cfg.LLM, logger),
		engine.NewConsentRetention(jobsRepo, logger),
	)

	queue := async.NewWalkerQueue(orchestrator, logger,
		async.WithWorkers(cfg.Engine.Workers),
		async.WithQueueSize(cfg.Engine.QueueSize),
		async.WithWalkTimeout(cfg.Engine.WalkTimeout),
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterJobServiceServer(grpcServer,
		server.NewJobService(jobsRepo, execsRepo, classesRepo, queue, logger))
	v1.RegisterCatalogServiceServer(grpcServer,
		server.NewCatalogService(stepsRepo, classesRepo, execsRepo, logger))
	v1.RegisterAuditServiceServer(grpcServer,
		server.NewAuditService(export.NewService(jobsRepo, execsRepo, logger), logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)

	logger.Info("stopped")
}
