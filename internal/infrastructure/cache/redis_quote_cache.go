// Package cache provides the Redis-backed quote cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisQuoteCache implements port.QuoteCache on top of Redis. A cache miss is
// reported as (nil, nil) so callers fall through to recomputation.
type RedisQuoteCache struct {
	client *redis.Client
}

// NewRedisQuoteCache connects to Redis and verifies the connection.
func NewRedisQuoteCache(ctx context.Context, addr, password string, db int) (*RedisQuoteCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisQuoteCache{client: client}, nil
}

// Get returns the cached value for key, or (nil, nil) on a miss.
func (c *RedisQuoteCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set stores value under key with the given TTL.
func (c *RedisQuoteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (c *RedisQuoteCache) Close() error {
	return c.client.Close()
}
