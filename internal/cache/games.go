package cache

import (
	"casino-backend/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// GameCache stores rendered game list pages.
type GameCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameCache(client *redis.Client, ttl time.Duration) *GameCache {
	return &GameCache{client: client, ttl: ttl}
}

// Get returns nil, nil on a cache miss.
func (g *GameCache) Get(ctx context.Context, filter model.GameFilter) (*model.GameListResponse, error) {
	data, err := g.client.Get(ctx, filter.CacheKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached games: %w", err)
	}

	var out model.GameListResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode cached games: %w", err)
	}
	return &out, nil
}

func (g *GameCache) Set(ctx context.Context, filter model.GameFilter, list *model.GameListResponse) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return g.client.Set(ctx, filter.CacheKey(), data, g.ttl).Err()
}
