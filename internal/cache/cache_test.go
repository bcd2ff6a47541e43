package cache

import (
	"casino-backend/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(db, KeyDepositRateLimit, 2, time.Minute)
	key := fmt.Sprintf(KeyDepositRateLimit, "user-1")

	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
	mock.ExpectIncr(key).SetVal(2)
	mock.ExpectIncr(key).SetVal(3)

	ctx := context.Background()
	allowed, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, allowed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_Allow_Disabled(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(db, KeyDepositRateLimit, 0, time.Minute)

	allowed, err := limiter.Allow(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_Allow_RedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(db, KeyDepositRateLimit, 5, time.Minute)

	mock.ExpectIncr(fmt.Sprintf(KeyDepositRateLimit, "user-1")).SetErr(assert.AnError)

	_, err := limiter.Allow(context.Background(), "user-1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLocker_Acquire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewLocker(db, 30*time.Second)
	locker.newToken = func() string { return "token-1" }
	key := fmt.Sprintf(KeyWebhookLock, 42)

	mock.ExpectSetNX(key, "token-1", 30*time.Second).SetVal(true)
	mock.ExpectSetNX(key, "token-1", 30*time.Second).SetVal(false)

	release, ok, err := locker.Acquire(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, release)

	release, ok, err = locker.Acquire(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, release)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocker_Acquire_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewLocker(db, 30*time.Second)
	locker.newToken = func() string { return "token-1" }

	mock.ExpectSetNX(fmt.Sprintf(KeyWebhookLock, 7), "token-1", 30*time.Second).SetErr(assert.AnError)

	_, ok, err := locker.Acquire(context.Background(), 7)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestGameCache_GetSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	gc := NewGameCache(db, 5*time.Minute)
	filter := model.GameFilter{Category: "slots", Limit: 20}

	list := &model.GameListResponse{
		Games: []*model.Game{{GameID: "g1", GPID: 1020, Name: "Lucky Dragon", IsActive: true}},
		Total: 1,
		Limit: 20,
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)

	mock.ExpectGet(filter.CacheKey()).RedisNil()
	mock.ExpectSet(filter.CacheKey(), data, 5*time.Minute).SetVal("OK")
	mock.ExpectGet(filter.CacheKey()).SetVal(string(data))

	ctx := context.Background()

	miss, err := gc.Get(ctx, filter)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, gc.Set(ctx, filter, list))

	hit, err := gc.Get(ctx, filter)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, 1, hit.Total)
	assert.Equal(t, "Lucky Dragon", hit.Games[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}
