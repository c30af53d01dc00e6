package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	httpAdapter "github.com/vbalan/bankcore/internal/adapter/http"
	"github.com/vbalan/bankcore/internal/adapter/http/handler"
	postgresRepo "github.com/vbalan/bankcore/internal/adapter/repository/postgres"
	redisRepo "github.com/vbalan/bankcore/internal/adapter/repository/redis"
	"github.com/vbalan/bankcore/internal/infrastructure/auth"
	"github.com/vbalan/bankcore/internal/infrastructure/config"
	"github.com/vbalan/bankcore/internal/infrastructure/logger"
	"github.com/vbalan/bankcore/internal/infrastructure/postgres"
	"github.com/vbalan/bankcore/internal/infrastructure/redis"
	"github.com/vbalan/bankcore/internal/notifier"
	"github.com/vbalan/bankcore/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ceiling, err := decimal.NewFromString(cfg.TransferCeiling)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid transfer ceiling")
	}
	creditFloor, err := decimal.NewFromString(cfg.CreditFloor)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid credit floor")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	recordRepo := postgresRepo.NewTransactionRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	var sender notifier.Sender
	if cfg.NotificationURL != "" {
		sender = notifier.NewWebhookSender(cfg.NotificationURL, cfg.NotificationTimeout)
	} else {
		sender = notifier.NewLogSender(log)
	}
	dispatcher := notifier.NewDispatcher(notifier.Config{
		Sender:      sender,
		Logger:      log,
		BufferSize:  cfg.NotificationBuffer,
		SendTimeout: cfg.NotificationTimeout,
	})
	go dispatcher.Start(ctx)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, recordRepo, idGen, retrier, dispatcher, ceiling, log)
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen, creditFloor)
	historyUC := usecase.NewHistoryUseCase(recordRepo)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:      handler.NewAuthHandler(userUC, jwtManager),
		AccountHandler:   handler.NewAccountHandler(accountUC),
		TransferHandler:  handler.NewTransferHandler(transferUC),
		HistoryHandler:   handler.NewHistoryHandler(historyUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Logger:           log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
