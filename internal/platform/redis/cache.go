// Package redis provides the optional read-through cache for flight
// listings. The cache stores fully serialized response pages keyed by the
// canonical query, with a fixed TTL; writes to flights or orders invalidate
// every cached page. A nil *FlightListCache is valid and disables caching,
// so callers never need to branch on configuration.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/internal/store"
)

const (
	// flightListPrefix namespaces the cached flight list pages.
	flightListPrefix = "flights:list:"

	// flightListKeySet tracks every cached page key so invalidation can
	// delete them without scanning the keyspace.
	flightListKeySet = "flights:list:keys"

	// connectTimeout bounds the startup ping.
	connectTimeout = 5 * time.Second
)

// FlightListCache is a read-through cache over Redis for flight list pages.
type FlightListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New connects to Redis at the given URL and returns the cache. The
// connection is verified with a ping so a misconfigured URL fails at
// startup rather than on the first request.
func New(redisURL string, ttl time.Duration, log *slog.Logger) (*FlightListCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	if log == nil {
		log = slog.Default()
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &FlightListCache{
		client: client,
		ttl:    ttl,
		logger: log.With(slog.String("component", "flight_cache")),
	}, nil
}

// Key builds the canonical cache key for one flight list page. Identical
// queries map to identical keys regardless of parameter order in the URL.
func Key(filter store.FlightFilter, params store.ListParams) string {
	date := ""
	if filter.Date != nil {
		date = filter.Date.UTC().Format("2006-01-02")
	}

	p := params.Normalize()
	return flightListPrefix + strings.Join([]string{
		strings.ToLower(filter.SourceCity),
		strings.ToLower(filter.DestinationCity),
		strings.ToLower(filter.AirportCity),
		date,
		fmt.Sprintf("p%d", p.Page),
		fmt.Sprintf("s%d", p.PageSize),
	}, ":")
}

// Get returns the cached page body for the key, or ok=false on a miss.
// Cache errors degrade to a miss; the caller falls through to the store.
func (c *FlightListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	log := logger.FromContextOrDefault(ctx, c.logger)

	body, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn("flight cache read failed",
				slog.String("error", err.Error()),
				slog.String("key", key))
		}
		return nil, false
	}

	log.Debug("flight cache hit", slog.String("key", key))
	return body, true
}

// Set stores the page body under the key with the configured TTL and
// records the key for later invalidation. Failures are logged and ignored;
// the cache never affects correctness.
func (c *FlightListCache) Set(ctx context.Context, key string, body []byte) {
	if c == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, c.logger)

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, body, c.ttl)
	pipe.SAdd(ctx, flightListKeySet, key)
	// Key-set entries outlive their pages by the same TTL so the set cannot
	// grow without bound when invalidation never runs.
	pipe.Expire(ctx, flightListKeySet, 2*c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn("flight cache write failed",
			slog.String("error", err.Error()),
			slog.String("key", key))
	}
}

// Invalidate drops every cached flight list page. Called after any write
// that can change a listing: flight create/update/delete, order create,
// order delete.
func (c *FlightListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, c.logger)

	keys, err := c.client.SMembers(ctx, flightListKeySet).Result()
	if err != nil {
		log.Warn("flight cache invalidation read failed", slog.String("error", err.Error()))
		return
	}

	if len(keys) == 0 {
		return
	}

	keys = append(keys, flightListKeySet)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Warn("flight cache invalidation failed", slog.String("error", err.Error()))
		return
	}

	log.Debug("flight cache invalidated", slog.Int("keys", len(keys)-1))
}

// Close releases the underlying Redis connection.
func (c *FlightListCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
