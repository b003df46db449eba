package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/dhomini-pereira/nexo-api/internal/adapter/http"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/handler"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
	postgresRepo "github.com/dhomini-pereira/nexo-api/internal/adapter/repository/postgres"
	redisRepo "github.com/dhomini-pereira/nexo-api/internal/adapter/repository/redis"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/config"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/logger"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/metrics"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/notification"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/postgres"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/redis"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	idGen := postgresRepo.NewULIDGenerator()
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	cardRepo := postgresRepo.NewCardRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool, idGen)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	goalRepo := postgresRepo.NewGoalRepository(pool)
	investmentRepo := postgresRepo.NewInvestmentRepository(pool)
	pushTokenRepo := postgresRepo.NewPushTokenRepository(pool)
	retrier := postgresRepo.NewRetrier(log)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	sweepLock := redisRepo.NewSweepLock(redisClient, cfg.SweepLockTTL)

	// Metrics
	m := metrics.New()

	// Push notifier: Expo when a URL is configured, log-only otherwise
	var notifier usecase.PushNotifier
	if cfg.ExpoPushURL != "" {
		notifier = notification.NewExpoNotifier(cfg.ExpoPushURL, cfg.ExpoPushTimeout, pushTokenRepo, m, log)
	} else {
		notifier = notification.NewLogNotifier(log)
	}

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(txManager, transactionRepo, accountRepo, cardRepo, invoiceRepo, idGen)
	recurrenceUC := usecase.NewRecurrenceUseCase(txManager, transactionRepo, accountRepo, cardRepo, invoiceRepo, idGen, notifier, retrier, m, log)
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	cardUC := usecase.NewCardUseCase(txManager, cardRepo, invoiceRepo, accountRepo, idGen)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen)
	goalUC := usecase.NewGoalUseCase(goalRepo, idGen)
	investmentUC := usecase.NewInvestmentUseCase(investmentRepo, idGen)
	pushTokenUC := usecase.NewPushTokenUseCase(pushTokenRepo, idGen)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Transactions: handler.NewTransactionHandler(ledgerUC, recurrenceUC, m),
		Accounts:     handler.NewAccountHandler(accountUC),
		Cards:        handler.NewCardHandler(cardUC, m),
		Categories:   handler.NewCategoryHandler(categoryUC),
		Goals:        handler.NewGoalHandler(goalUC),
		Investments:  handler.NewInvestmentHandler(investmentUC),
		PushTokens:   handler.NewPushTokenHandler(pushTokenUC),
		Cron:         handler.NewCronHandler(recurrenceUC, sweepLock, m, log),
		Health:       handler.NewHealthHandler(pool, redisClient),
		Logging:      middleware.NewLoggingMiddleware(log),
		Idempotency:  middleware.NewIdempotencyMiddleware(idempotencyStore, cfg.IdempotencyTTL),
		CronSecret:   cfg.CronSecret,
	})

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
