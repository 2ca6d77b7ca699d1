package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/academix/ledger-service/internal/application/usecase"
	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/internal/domain/service"
	"github.com/academix/ledger-service/internal/infrastructure/authz"
	"github.com/academix/ledger-service/internal/infrastructure/config"
	infraKafka "github.com/academix/ledger-service/internal/infrastructure/kafka"
	infraPG "github.com/academix/ledger-service/internal/infrastructure/postgres"
	grpcPresentation "github.com/academix/ledger-service/internal/presentation/grpc"
	"github.com/academix/ledger-service/internal/presentation/rest"
	"github.com/academix/ledger-service/pkg/auth"
	kafkapkg "github.com/academix/ledger-service/pkg/kafka"
	"github.com/academix/ledger-service/pkg/observability"
	pgpkg "github.com/academix/ledger-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting ledger-service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	// Tracing is best-effort: a missing collector must not block postings.
	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracer(ctx, cfg.Tracing)
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	pool, err := pgpkg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pgpkg.RunMigrations(cfg.Database.DSN(), "file://internal/infrastructure/postgres/migrations"); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	producer := kafkapkg.NewProducer(cfg.Kafka)
	defer producer.Close() //nolint:errcheck

	// Wire dependencies (DI via constructors)
	docRepo := infraPG.NewDocumentRepo(pool)
	accountRepo := infraPG.NewAccountRepo(pool)
	balanceRepo := infraPG.NewBalanceRepo(pool)
	periodRepo := infraPG.NewFiscalPeriodRepo(pool)
	outboxRepo := infraPG.NewOutboxRepo(pool)
	publisher := infraKafka.NewEventPublisher(producer)
	permissions := authz.NewRoleChecker()
	validator := service.NewDocumentValidator()
	clock := port.SystemClock{}

	// Use cases
	createDocUC := usecase.NewCreateDocument(docRepo, clock)
	updateLinesUC := usecase.NewUpdateDocumentLines(docRepo, clock)
	postDocUC := usecase.NewPostDocument(docRepo, periodRepo, validator, clock)
	voidDocUC := usecase.NewVoidDocument(docRepo, permissions, clock)
	deleteDocUC := usecase.NewDeleteDocument(docRepo)
	getDocUC := usecase.NewGetDocument(docRepo)
	listDocsUC := usecase.NewListDocuments(docRepo)
	getBalanceUC := usecase.NewGetBalance(accountRepo, balanceRepo, clock)
	getChartUC := usecase.NewGetChartOfAccounts(accountRepo)
	closePeriodUC := usecase.NewClosePeriod(periodRepo, publisher, permissions)

	// Outbox relay: events written in document transactions reach Kafka even
	// if the inline publish failed.
	relay := infraKafka.NewOutboxRelay(outboxRepo, producer, usecase.TopicLedgerDocuments, logger)
	go relay.Run(ctx)

	// JWT service (validation-only).
	jwtCfg := auth.JWTConfig{Issuer: cfg.JWT.Issuer}
	if cfg.JWT.PublicKeyPath != "" {
		keyData, loadErr := auth.LoadKeyFromFile(cfg.JWT.PublicKeyPath)
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	} else {
		jwtCfg.Secret = cfg.JWT.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server
	handler := grpcPresentation.NewLedgerHandler(
		createDocUC, updateLinesUC, postDocUC, voidDocUC, deleteDocUC,
		getDocUC, listDocsUC, getBalanceUC, getChartUC, closePeriodUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, cfg.ServiceName, cfg.GRPCPort, logger, jwtSvc)

	// HTTP server (health checks + metrics)
	mux := http.NewServeMux()
	rest.NewHealthHandler(cfg.ServiceName, pool, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start()
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	grpcServer.Stop()
	logger.Info("ledger-service stopped")
}
