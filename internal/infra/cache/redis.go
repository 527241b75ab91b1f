package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carrierid/internal/domain/carrier"

	"github.com/redis/go-redis/v9"
)

var _ carrier.MatchCache = (*RedisMatchCache)(nil)

// RedisMatchCache caches ranked identification results in Redis. The engine
// is deterministic for a fixed (number, from, to) triple, so entries only
// expire to pick up carrier table changes between deployments.
type RedisMatchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMatchCache creates a new Redis-backed match cache.
func NewRedisMatchCache(redisAddr, password string, db int, ttl time.Duration) *RedisMatchCache {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	return &RedisMatchCache{client: client, ttl: ttl}
}

// cacheKey builds the Redis key for one identification query.
func cacheKey(number, from, to string) string {
	return fmt.Sprintf("carrierid:match:%s:%s:%s", from, to, number)
}

// Get returns the cached ranked matches for a query.
func (c *RedisMatchCache) Get(ctx context.Context, number, from, to string) ([]carrier.Match, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(number, from, to)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading match cache: %w", err)
	}

	var matches []carrier.Match
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, false, fmt.Errorf("decoding cached matches: %w", err)
	}
	return matches, true, nil
}

// Set stores the ranked matches for a query.
func (c *RedisMatchCache) Set(ctx context.Context, number, from, to string, matches []carrier.Match) error {
	raw, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("encoding matches: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(number, from, to), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing match cache: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisMatchCache) Close() error {
	return c.client.Close()
}
