// Package cache defines the key-value cache collaborator used by the
// resolver and analytics services. Cached entries are derived,
// time-bounded copies of persisted state and are never authoritative;
// they may be evicted or invalidated at any time without data loss.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a TTL-capable string cache with explicit invalidation.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Forget(ctx context.Context, key string) error
}

// URLKey builds the cache key for a resolved target URL.
func URLKey(code string) string {
	return "short_url:" + code
}

// AnalyticsKey builds the cache key for a cached analytics snapshot.
func AnalyticsKey(code string) string {
	return "analytics:" + code
}
