package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// SearchCache is a short-lived cache of raw external search payloads keyed
// by query. A nil *SearchCache is valid and caches nothing, so callers do
// not have to branch on whether redis is configured.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, or false on miss or redis error.
func (sc *SearchCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if sc == nil {
		return nil, false
	}
	val, err := sc.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores the payload for key. Redis errors are swallowed; caching is
// best effort and must never fail a request.
func (sc *SearchCache) Set(ctx context.Context, key string, payload []byte) {
	if sc == nil {
		return
	}
	_ = sc.client.Set(ctx, key, payload, sc.ttl).Err()
}

// Healthy reports whether the cache backend is reachable.
func (sc *SearchCache) Healthy(ctx context.Context) bool {
	if sc == nil {
		return false
	}
	err := sc.client.Ping(ctx).Err()
	return err == nil || errors.Is(err, redis.Nil)
}
