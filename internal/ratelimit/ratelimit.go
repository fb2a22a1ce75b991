// Package ratelimit provides sliding-window request limiting with
// per-endpoint configuration attached to huma operation metadata.
package ratelimit

import (
	"context"
	"time"
)

// MetadataKey is the huma operation metadata key holding an EndpointConfig.
const MetadataKey = "rateLimit"

// Store defines the interface for rate limit data storage.
type Store interface {
	// Record records a request and returns the count of requests in the
	// current window, pruning expired entries.
	Record(ctx context.Context, key string, window time.Duration) (count int64, err error)
}

// LimitConfig is a single window/max pair.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// EndpointConfig defines per-endpoint rate limit configuration,
// attached to huma operations via the Metadata field.
type EndpointConfig struct {
	// Limits replaces the default limits for this endpoint.
	Limits []LimitConfig

	// Disabled skips rate limiting entirely for this endpoint.
	Disabled bool
}

// DefaultLimits applies to endpoints without their own config.
func DefaultLimits() []LimitConfig {
	return []LimitConfig{
		{Window: time.Minute, Max: 120},
		{Window: time.Hour, Max: 2000},
	}
}
