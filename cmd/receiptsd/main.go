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
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	receiptspb "github.com/joseph-ayodele/receipts-pipeline/gen/proto/receipts/v1"
	"github.com/joseph-ayodele/receipts-pipeline/internal/aggregate"
	"github.com/joseph-ayodele/receipts-pipeline/internal/async"
	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
	"github.com/joseph-ayodele/receipts-pipeline/internal/export"
	"github.com/joseph-ayodele/receipts-pipeline/internal/fetch"
	"github.com/joseph-ayodele/receipts-pipeline/internal/health"
	"github.com/joseph-ayodele/receipts-pipeline/internal/pipeline"
	"github.com/joseph-ayodele/receipts-pipeline/internal/repository"
	"github.com/joseph-ayodele/receipts-pipeline/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		Driver:           cfg.Database.Driver,
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

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	accountsRepo := repository.NewAccountRepository(entc, logger)
	extractionsRepo := repository.NewExtractionRepository(entc, logger)
	itemsRepo := repository.NewItemRepository(entc, logger)
	statsRepo := repository.NewStatRepository(entc, logger)

	fetcher, err := fetch.NewGCSFetcher(ctx, logger)
	if err != nil {
		logger.Error("creating object fetcher", "error", err)
		os.Exit(1)
	}

	engine := aggregate.NewEngine(itemsRepo, statsRepo, logger)
	pipe := pipeline.New(extractionsRepo, accountsRepo, fetcher, engine, pipeline.Config{
		FetchTimeout:     cfg.Fetch.Timeout,
		FetchMaxAttempts: cfg.Fetch.MaxAttempts,
		FetchBackoffBase: cfg.Fetch.BackoffBase,
		ParseTimeout:     cfg.Parse.Timeout,
	}, logger)

	queue := async.NewProcessorQueue(pipe, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	guard := health.NewGuard(logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	guard.OnTrip(func(string) {
		hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	})
	reflection.Register(grpcServer)

	exporter := export.NewService(statsRepo, logger)
	statsSvc := server.NewStatsService(extractionsRepo, itemsRepo, statsRepo, exporter, logger)
	receiptspb.RegisterReceiptStatsServiceServer(grpcServer, statsSvc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	// HTTP notification endpoint
	notifSrv := server.NewNotificationServer(cfg.Notify.VerificationToken, extractionsRepo, queue, guard, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           notifSrv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("HTTP serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
