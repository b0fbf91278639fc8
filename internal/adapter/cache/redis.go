package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// RedisPlacementCache keeps ranked placement lists in Redis for ttl.
type RedisPlacementCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ port.PlacementCache = (*RedisPlacementCache)(nil)

// NewRedisPlacementCache connects to Redis and verifies the connection.
func NewRedisPlacementCache(ctx context.Context, opts *redis.Options, ttl time.Duration) (*RedisPlacementCache, error) {
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisPlacementCacheWithClient(client, ttl), nil
}

// NewRedisPlacementCacheWithClient wraps an existing client.
func NewRedisPlacementCacheWithClient(client *redis.Client, ttl time.Duration) *RedisPlacementCache {
	return &RedisPlacementCache{client: client, ttl: ttl}
}

// Get returns the cached list for key. ok is false on a miss.
func (c *RedisPlacementCache) Get(ctx context.Context, key string) ([]domain.RankedPlacement, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var placements []domain.RankedPlacement
	if err = json.Unmarshal(raw, &placements); err != nil {
		return nil, false, fmt.Errorf("decode placements: %w", err)
	}
	return placements, true, nil
}

// Set stores placements under key for the configured ttl.
func (c *RedisPlacementCache) Set(ctx context.Context, key string, placements []domain.RankedPlacement) error {
	raw, err := json.Marshal(placements)
	if err != nil {
		return fmt.Errorf("encode placements: %w", err)
	}
	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the client.
func (c *RedisPlacementCache) Close() error {
	return c.client.Close()
}
