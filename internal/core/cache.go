// Package core holds the repository ports and the small pieces of orchestration shared by services.
package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// CacheRepository defines the interface for caching operations.
// This follows the hexagonal architecture pattern where the core defines interfaces
// and the data layer provides implementations.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}

// AggregateCacheConfig holds configuration for aggregate caching.
type AggregateCacheConfig struct {
	TTL       time.Duration
	KeyPrefix string
}

// AggregateCacheOptions bundles dependencies for NewAggregateCache.
type AggregateCacheOptions struct {
	Cache  CacheRepository
	Config AggregateCacheConfig
	Logger *slog.Logger
}

// AggregateCache memoizes platform-wide dashboard datasets as JSON.
// Cache failures are logged and the loader runs instead; they never fail a request.
type AggregateCache struct {
	cache  CacheRepository
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewAggregateCache creates a new AggregateCache. A nil cache or non-positive TTL
// yields a pass-through cache.
func NewAggregateCache(opts AggregateCacheOptions) *AggregateCache {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AggregateCache{
		cache:  opts.Cache,
		ttl:    opts.Config.TTL,
		prefix: opts.Config.KeyPrefix,
		logger: logger,
	}
}

// Enabled reports whether values are actually cached.
func (c *AggregateCache) Enabled() bool {
	return c != nil && c.cache != nil && c.ttl > 0
}

// Key builds a namespaced cache key.
func (c *AggregateCache) Key(parts ...string) string {
	key := ""
	if c != nil {
		key = c.prefix
	}
	for i, p := range parts {
		if i > 0 {
			key += ":"
		}
		key += p
	}
	return key
}

// Cached returns the value stored under key, or runs load and stores its result.
func Cached[T any](ctx context.Context, c *AggregateCache, key string, load func(context.Context) (T, error)) (T, error) {
	if !c.Enabled() {
		return load(ctx)
	}

	raw, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "aggregate cache read failed", "key", key, "error", err)
	case len(raw) > 0:
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			return v, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.logger.WarnContext(ctx, "aggregate cache encode failed", "key", key, "error", err)
		return v, nil
	}
	if setErr := c.cache.Set(ctx, key, data, c.ttl); setErr != nil {
		c.logger.WarnContext(ctx, "aggregate cache write failed", "key", key, "error", setErr)
	}
	return v, nil
}
