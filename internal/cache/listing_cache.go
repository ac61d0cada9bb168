// Package cache holds the optional Redis read-through cache for listing
// responses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/metrics"
)

// ListingCache stores JSON-encoded listing results with a fixed TTL.
// A nil *ListingCache, a nil client or a zero TTL disables caching.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewListingCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *ListingCache {
	return &ListingCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "listing_cache").Logger(),
	}
}

// Enabled reports whether lookups reach Redis.
func (c *ListingCache) Enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

// Remember returns the cached value under key, or calls load and caches
// its result. Redis failures are logged and never surface to the caller;
// load errors are returned untouched and nothing is cached.
func Remember[T any](ctx context.Context, c *ListingCache, key string, load func(context.Context) (T, error)) (T, error) {
	if !c.Enabled() {
		return load(ctx)
	}

	var cached T
	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		uerr := json.Unmarshal(data, &cached)
		if uerr == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		}
		c.log.Warn().Err(uerr).Str("key", key).Msg("Discarding undecodable cache entry")
	case errors.Is(err, redis.Nil):
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		c.log.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling through to store")
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache encode failed")
		return v, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return v, nil
}
