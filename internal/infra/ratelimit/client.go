package ratelimit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"carrierid/internal/domain/carrier"

	"github.com/redis/go-redis/v9"
)

var _ carrier.ClientQuota = (*RedisClientQuota)(nil)

// RedisClientQuota enforces per-client batch submission quotas using Redis
// sorted sets. It uses a sliding window approach: each submission is a
// member scored by its timestamp.
type RedisClientQuota struct {
	client    *redis.Client
	maxPerDay int
	window    time.Duration
}

// NewRedisClientQuota creates a new Redis-based per-client quota.
func NewRedisClientQuota(redisAddr, password string, db int, maxPerDay int) *RedisClientQuota {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	return &RedisClientQuota{
		client:    client,
		maxPerDay: maxPerDay,
		window:    24 * time.Hour,
	}
}

// Allow checks whether the given client may submit another batch.
// Uses a Redis sorted set with timestamps as scores for a sliding window counter.
func (r *RedisClientQuota) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := fmt.Sprintf("carrierid:quota:%s", clientKey)
	now := time.Now()
	windowStart := now.Add(-r.window)

	pipe := r.client.Pipeline()

	// Remove expired entries (outside the sliding window)
	pipe.ZRemRangeByScore(ctx, key, "-inf", fmt.Sprintf("%d", windowStart.UnixNano()))

	// Count remaining entries in the window
	countCmd := pipe.ZCard(ctx, key)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("checking client quota: %w", err)
	}

	if countCmd.Val() >= int64(r.maxPerDay) {
		return false, nil
	}

	// Generate a unique member to avoid collisions on concurrent requests
	randBytes := make([]byte, 4)
	_, _ = rand.Read(randBytes)
	member := redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d:%s", now.UnixNano(), hex.EncodeToString(randBytes)),
	}
	pipe2 := r.client.Pipeline()
	pipe2.ZAdd(ctx, key, member)
	pipe2.Expire(ctx, key, r.window+time.Minute) // TTL slightly longer than window for cleanup

	_, err = pipe2.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("recording quota entry: %w", err)
	}

	return true, nil
}

// Close closes the Redis connection.
func (r *RedisClientQuota) Close() error {
	return r.client.Close()
}
