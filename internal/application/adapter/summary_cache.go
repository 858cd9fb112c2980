// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by SummaryCache.Get when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// SummaryCache caches serialized dashboard summaries. Entries expire by TTL;
// there is no explicit invalidation, stale windows simply age out.
type SummaryCache interface {
	// Get returns the cached payload for the key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
