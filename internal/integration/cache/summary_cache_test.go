// Package cache implements cache adapters backed by Redis.
package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/batchflow/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) (adapter.SummaryCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSummaryCache(client), server
}

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("misses on unknown keys", func(t *testing.T) {
		cache, _ := newTestCache(t)

		_, err := cache.Get(ctx, "summary:2024-03:6")
		if !errors.Is(err, adapter.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("round-trips payloads", func(t *testing.T) {
		cache, _ := newTestCache(t)

		payload := []byte(`{"months":[]}`)
		if err := cache.Set(ctx, "summary:2024-03:6", payload, time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		got, err := cache.Get(ctx, "summary:2024-03:6")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("expected %s, got %s", payload, got)
		}
	})

	t.Run("entries expire by TTL", func(t *testing.T) {
		cache, server := newTestCache(t)

		if err := cache.Set(ctx, "summary:2024-03:6", []byte("{}"), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		server.FastForward(2 * time.Minute)

		_, err := cache.Get(ctx, "summary:2024-03:6")
		if !errors.Is(err, adapter.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss after expiry, got %v", err)
		}
	})
}
