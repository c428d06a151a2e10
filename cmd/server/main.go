package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/sitebooks/ledger/internal/adapter/http"
	"github.com/sitebooks/ledger/internal/adapter/http/handler"
	"github.com/sitebooks/ledger/internal/adapter/http/middleware"
	"github.com/sitebooks/ledger/internal/adapter/lock"
	postgresRepo "github.com/sitebooks/ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/sitebooks/ledger/internal/adapter/repository/redis"
	"github.com/sitebooks/ledger/internal/infrastructure/config"
	"github.com/sitebooks/ledger/internal/infrastructure/logger"
	"github.com/sitebooks/ledger/internal/infrastructure/postgres"
	"github.com/sitebooks/ledger/internal/infrastructure/redis"
	"github.com/sitebooks/ledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx := context.Background()

	// Apply schema migrations before accepting writes
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis when configured
	var (
		redisClient      *goredis.Client
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
		locker           usecase.AccountLocker = lock.NewNop()
	)
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		log.Info().Msg("connected to redis")

		redisClient = client
		cache = redisRepo.NewCache(client)
		idempotencyStore = redisRepo.NewIdempotencyStore(client)

		if cfg.DistributedLock {
			locker = lock.NewRedis(client)
		}
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	queryRepo := postgresRepo.NewQueryRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	balanceUC := usecase.NewBalanceUseCase(entryRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen, nil)
	recorderUC := usecase.NewRecorderUseCase(txManager, accountRepo, entryRepo, balanceUC, locker, idGen, nil, cache)
	queryUC := usecase.NewQueryUseCase(entryRepo, queryRepo, cache, nil)
	reconUC := usecase.NewReconciliationUseCase(accountRepo, balanceUC, nil)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	transactionHandler := handler.NewTransactionHandler(recorderUC, queryUC, balanceUC)
	queryHandler := handler.NewQueryHandler(queryUC)
	reconHandler := handler.NewReconciliationHandler(&retryingReconciler{
		inner:   reconUC,
		retrier: postgresRepo.NewRetrier(appLogger),
	})
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	routerCfg := httpAdapter.RouterConfig{
		AccountHandler:        accountHandler,
		TransactionHandler:    transactionHandler,
		QueryHandler:          queryHandler,
		ReconciliationHandler: reconHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		Logger:                appLogger,
	}
	if cfg.RateLimitEnabled {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	router := httpAdapter.NewRouter(routerCfg)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// retryingReconciler retries reconciliation runs that hit transient database
// errors. Replaying long chains can deadlock against concurrent appends.
type retryingReconciler struct {
	inner   *usecase.ReconciliationUseCase
	retrier *postgresRepo.Retrier
}

func (r *retryingReconciler) ReconcileAccount(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error) {
	var result *usecase.ReconciliationResult
	err := r.retrier.Retry(ctx, func() error {
		var innerErr error
		result, innerErr = r.inner.ReconcileAccount(ctx, accountID)
		return innerErr
	})
	return result, err
}

func (r *retryingReconciler) ReconcileAll(ctx context.Context) (*usecase.ReconciliationReport, error) {
	var report *usecase.ReconciliationReport
	err := r.retrier.Retry(ctx, func() error {
		var innerErr error
		report, innerErr = r.inner.ReconcileAll(ctx)
		return innerErr
	})
	return report, err
}

func (r *retryingReconciler) Resume(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error) {
	var result *usecase.ReconciliationResult
	err := r.retrier.Retry(ctx, func() error {
		var innerErr error
		result, innerErr = r.inner.Resume(ctx, accountID)
		return innerErr
	})
	return result, err
}
