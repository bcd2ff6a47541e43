package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// Locker hands out short-lived SETNX locks keyed by order code.
type Locker struct {
	client   *redis.Client
	ttl      time.Duration
	newToken func() string
}

func NewLocker(client *redis.Client, ttl time.Duration) *Locker {
	return &Locker{
		client:   client,
		ttl:      ttl,
		newToken: func() string { return uuid.NewString() },
	}
}

// Acquire tries to take the lock for orderCode. On success the returned func releases it,
// and only if it is still ours.
func (l *Locker) Acquire(ctx context.Context, orderCode int64) (func(), bool, error) {
	key := fmt.Sprintf(KeyWebhookLock, orderCode)
	token := l.newToken()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// the request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}
	return release, true, nil
}
