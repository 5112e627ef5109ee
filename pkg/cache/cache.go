// Package cache provides a small cache-aside layer over Redis for read-heavy
// endpoints. Entries are JSON-encoded and expire after a fixed TTL; writers
// invalidate by key pattern.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taskboard/pkg/metrics"
)

type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get loads key into dest. The boolean reports whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.IncrementCacheRequest("miss")
			return false, nil
		}
		metrics.IncrementCacheRequest("error")
		return false, fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		metrics.IncrementCacheRequest("error")
		return false, fmt.Errorf("cache unmarshal error: %w", err)
	}

	metrics.IncrementCacheRequest("hit")
	return true, nil
}

// Set stores value under key with the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

// DeletePattern removes every key matching pattern (prefix applied).
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	fullPattern := c.prefix + pattern

	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, fullPattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan error: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete error: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}
