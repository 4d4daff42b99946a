package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrocredito/agrocredito/internal/application/usecase"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/service"
	"github.com/agrocredito/agrocredito/internal/infrastructure/cache"
	"github.com/agrocredito/agrocredito/internal/infrastructure/config"
	"github.com/agrocredito/agrocredito/internal/infrastructure/messaging"
	pgRepo "github.com/agrocredito/agrocredito/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/agrocredito/agrocredito/internal/presentation/grpc"
	"github.com/agrocredito/agrocredito/internal/presentation/rest"
	"github.com/agrocredito/agrocredito/pkg/auth"
	"github.com/agrocredito/agrocredito/pkg/kafka"
	"github.com/agrocredito/agrocredito/pkg/observability"
	"github.com/agrocredito/agrocredito/pkg/postgres"
)

const eventsTopic = "agrocredito.credit.events"

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting agrocredito service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Observability ------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics shutdown error", "error", err)
		}
	}()

	if cfg.Tracing.Endpoint != "" {
		shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			Insecure:    cfg.Tracing.Insecure,
		})
		if err != nil {
			logger.Error("failed to initialize tracer", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := shutdownTracer(shutdownCtx); err != nil {
				logger.Error("tracer shutdown error", "error", err)
			}
		}()
	}

	// --- Database -----------------------------------------------------------
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "file://internal/infrastructure/persistence/postgres/migrations"
	}
	if err := postgres.RunMigrations(cfg.DB.DSN(), migrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// --- Infrastructure adapters -------------------------------------------
	simRepo := pgRepo.NewSimulationRepo(pool)
	farmerRepo := pgRepo.NewFarmerRepo(pool)
	appRepo := pgRepo.NewApplicationRepo(pool)
	accountRepo := pgRepo.NewSavingsAccountRepo(pool)
	policyRepo := pgRepo.NewInsurancePolicyRepo(pool)

	producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Error("kafka producer close error", "error", err)
		}
	}()
	publisher := messaging.NewKafkaEventPublisher(producer, eventsTopic, logger)

	var quoteCache port.QuoteCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisQuoteCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("failed to connect to redis, quotes will not be cached", "error", err)
		} else {
			defer func() {
				if err := redisCache.Close(); err != nil {
					logger.Error("redis close error", "error", err)
				}
			}()
			quoteCache = redisCache
		}
	}

	// --- Auth ---------------------------------------------------------------
	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	}
	if cfg.JWT.PublicKeyFile != "" {
		publicKey, err := auth.LoadKeyFromFile(cfg.JWT.PublicKeyFile)
		if err != nil {
			logger.Error("failed to load JWT public key", "error", err)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(publicKey)
	}
	jwtService, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// --- Domain services ----------------------------------------------------
	rateModel := service.NewRateModel(service.DefaultRateConfig())
	advisor := service.NewAdvisoryRuleEngine(service.DefaultAdvisoryConfig())

	// --- Use cases ----------------------------------------------------------
	simulateUC := usecase.NewSimulateCreditUseCase(rateModel, advisor, quoteCache, usecase.DefaultSimulationPolicy(), cfg.Redis.QuoteTTL)
	saveUC := usecase.NewSaveSimulationUseCase(simulateUC, simRepo, farmerRepo, publisher)
	getUC := usecase.NewGetSimulationUseCase(simRepo)
	listUC := usecase.NewListSimulationsUseCase(simRepo)
	deleteUC := usecase.NewDeleteSimulationUseCase(simRepo)
	registerUC := usecase.NewRegisterFarmerUseCase(farmerRepo, publisher)
	farmersUC := usecase.NewListFarmersUseCase(farmerRepo)
	submitUC := usecase.NewSubmitApplicationUseCase(appRepo, farmerRepo, simRepo, publisher)
	appsUC := usecase.NewListApplicationsUseCase(appRepo)
	decideUC := usecase.NewDecideApplicationUseCase(appRepo, simRepo, accountRepo, policyRepo, publisher, usecase.DefaultDecisionPolicy())
	settleUC := usecase.NewSettleCreditUseCase(simRepo, publisher)
	portfolioUC := usecase.NewPortfolioSummaryUseCase(simRepo, appRepo, farmerRepo)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewCreditHandler(
		simulateUC, saveUC, getUC, listUC, deleteUC,
		registerUC, farmersUC, submitUC, appsUC, decideUC,
		settleUC, portfolioUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtService, cfg.TLS)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP server (health + metrics) -------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("agrocredito service stopped")
}
