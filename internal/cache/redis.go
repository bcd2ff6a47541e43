package cache

import (
	"casino-backend/internal/config"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	KeyDepositRateLimit = "ratelimit:deposit:%s"
	KeyWebhookLock      = "lock:webhook:%d"
)

func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
