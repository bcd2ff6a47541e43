package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"casino-backend/internal/auth"
	"casino-backend/internal/cache"
	"casino-backend/internal/config"
	"casino-backend/internal/database"
	"casino-backend/internal/gameapi"
	"casino-backend/internal/handler"
	"casino-backend/internal/logger"
	"casino-backend/internal/payment"
	"casino-backend/internal/repository/postgres"
	"casino-backend/internal/service"
	"casino-backend/internal/worker"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "casino-backend/docs"
)

// @title Casino Backend API
// @version 1.0
// @description Deposits, payment reconciliation, promotions and game launch for the casino frontend
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional, real environment wins
	envErr := godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(true, "info")
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file loaded")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(cfg.Database.DSN()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("Database migrations applied")
	}

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	promotionRepo := postgres.NewPromotionRepository(dbPool)
	gameRepo := postgres.NewGameRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Redis backs rate limiting, webhook de-duplication and the game list cache.
	// Each stays a nil interface when Redis is off so services skip it.
	var (
		rateLimiter service.RateLimiter
		locker      service.Locker
		gameCache   service.GameCache
		redisClient *redis.Client
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewClient(dbCtx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, continuing without cache and distributed locks")
		} else {
			defer redisClient.Close()
			rateLimiter = cache.NewRateLimiter(redisClient, cache.KeyDepositRateLimit, cfg.RateLimit.DepositsPerMinute, time.Minute)
			locker = cache.NewLocker(redisClient, cfg.Deposit.WebhookLockTTL)
			gameCache = cache.NewGameCache(redisClient, cfg.Cache.GameListTTL)
		}
	}

	// External clients
	gateway := payment.NewGateway(payment.NewPayOSClient(cfg.PayOS), payment.NewVietQR(cfg.VietQR), log)
	gameClient := gameapi.NewClient(cfg.GameAPI)

	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure token verification")
	}

	// Services
	promotionService := service.NewPromotionService(promotionRepo, transactionRepo, profileRepo, notificationRepo, log)
	depositService := service.NewDepositService(profileRepo, transactionRepo, notificationRepo, txManager,
		promotionService, gateway, rateLimiter, cfg.Deposit, log)
	paymentService := service.NewPaymentService(profileRepo, transactionRepo, notificationRepo, txManager,
		promotionService, gateway, locker, cfg.PayOS.RequireSignature, log)
	gameService := service.NewGameService(profileRepo, gameRepo, gameClient, gameCache, log)
	accountService := service.NewAccountService(profileRepo, log)
	expiryService := service.NewExpiryService(profileRepo, transactionRepo, notificationRepo, txManager,
		cfg.Deposit.PaymentLinkTTL, cfg.Worker.ExpiryBatch, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker for lapsed payment links
	expiryWorker := worker.NewExpiryWorker(expiryService, cfg.Worker.ExpiryInterval, log)
	expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	// http handler
	h := handler.NewHandler(handler.Services{
		Deposit:   depositService,
		Payment:   paymentService,
		Promotion: promotionService,
		Game:      gameService,
		Account:   accountService,
	}, verifier, handler.Options{
		AdminRole:        cfg.Auth.AdminRole,
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		IPRequestsPerSec: cfg.RateLimit.IPRequestsPerSec,
		IPBurst:          cfg.RateLimit.IPBurst,
	}, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Str("env", cfg.Env).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
