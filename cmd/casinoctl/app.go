package main

import (
	"context"
	"fmt"
	"time"

	"casino-backend/internal/config"
	"casino-backend/internal/database"
	"casino-backend/internal/logger"
	"casino-backend/internal/payment"
	"casino-backend/internal/repository/postgres"
	"casino-backend/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// app wires the same services the server uses, minus HTTP and Redis.
type app struct {
	pool       *pgxpool.Pool
	deposits   service.DepositService
	promotions service.PromotionService
	expiry     service.ExpiryService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(true, cfg.Log.Level)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(connectCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	profileRepo := postgres.NewProfileRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txManager := postgres.NewTransactionManager(pool)

	promotions := service.NewPromotionService(promotionRepo, transactionRepo, profileRepo, notificationRepo, log)
	gateway := payment.NewGateway(payment.NewPayOSClient(cfg.PayOS), payment.NewVietQR(cfg.VietQR), log)

	return &app{
		pool:       pool,
		promotions: promotions,
		deposits: service.NewDepositService(profileRepo, transactionRepo, notificationRepo, txManager,
			promotions, gateway, nil, cfg.Deposit, log),
		expiry: service.NewExpiryService(profileRepo, transactionRepo, notificationRepo, txManager,
			cfg.Deposit.PaymentLinkTTL, cfg.Worker.ExpiryBatch, log),
	}, nil
}

func (a *app) Close() {
	a.pool.Close()
}

func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
