// Package cache implements cache adapters backed by Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/batchflow/backend/internal/application/adapter"
)

// summaryCache implements the adapter.SummaryCache interface on Redis.
// Entries expire by TTL only; nothing invalidates them explicitly.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new summary cache instance.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

// NewDisabledSummaryCache creates a summary cache that always misses, for
// running without a Redis connection.
func NewDisabledSummaryCache() adapter.SummaryCache {
	return disabledSummaryCache{}
}

type disabledSummaryCache struct{}

func (disabledSummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, adapter.ErrCacheMiss
}

func (disabledSummaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return nil
}

// Get returns the cached payload for the key, or adapter.ErrCacheMiss.
func (c *summaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, adapter.ErrCacheMiss
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the payload under the key with the given TTL.
func (c *summaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}
