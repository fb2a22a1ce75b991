package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortlinks/internal/cache"
)

// RedisCache is a Redis implementation of cache.Cache. Both the server
// and the queue consumer share it, so an invalidation in one process is
// visible to the other.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", cache.ErrMiss
		}

		return "", err
	}

	return value, nil
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Forget(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Compile-time check.
var _ cache.Cache = (*RedisCache)(nil)
