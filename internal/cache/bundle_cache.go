// Package cache provides an optional read-through cache for materialized
// daily bundles. The database stays authoritative; callers treat every cache
// error as a miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrCacheMiss is returned when the requested key is not found in cache.
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrCacheUnavailable wraps connection and command failures.
	ErrCacheUnavailable = errors.New("cache: unavailable")
)

// PrefixBundle namespaces daily bundle keys.
const PrefixBundle = "bundle:"

// BundleCache stores the materialized bundle for one (owner, day).
type BundleCache interface {
	Get(ctx context.Context, ownerID uuid.UUID, day model.Date) (*model.DailyBundleResponse, error)
	Set(ctx context.Context, ownerID uuid.UUID, day model.Date, bundle *model.DailyBundleResponse) error
}

// BundleKey returns the redis key for (owner, day).
func BundleKey(ownerID uuid.UUID, day model.Date) string {
	return PrefixBundle + ownerID.String() + ":" + day.String()
}

type RedisBundleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBundleCache wraps an existing client.
func NewRedisBundleCache(client *redis.Client, ttl time.Duration) *RedisBundleCache {
	if ttl <= 0 {
		ttl = config.DefaultBundleCacheTTL
	}
	return &RedisBundleCache{client: client, ttl: ttl}
}

// NewRedisClient builds a client from config and pings it once.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		MaxRetries:   1,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return client, nil
}

func (c *RedisBundleCache) Get(ctx context.Context, ownerID uuid.UUID, day model.Date) (*model.DailyBundleResponse, error) {
	data, err := c.client.Get(ctx, BundleKey(ownerID, day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var bundle model.DailyBundleResponse
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("cache: decode bundle: %w", err)
	}
	return &bundle, nil
}

func (c *RedisBundleCache) Set(ctx context.Context, ownerID uuid.UUID, day model.Date, bundle *model.DailyBundleResponse) error {
	if bundle == nil {
		return errors.New("cache: value cannot be nil")
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("cache: encode bundle: %w", err)
	}
	if err := c.client.Set(ctx, BundleKey(ownerID, day), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

// NopBundleCache is used when redis is disabled.
type NopBundleCache struct{}

func (NopBundleCache) Get(context.Context, uuid.UUID, model.Date) (*model.DailyBundleResponse, error) {
	return nil, ErrCacheMiss
}

func (NopBundleCache) Set(context.Context, uuid.UUID, model.Date, *model.DailyBundleResponse) error {
	return nil
}
