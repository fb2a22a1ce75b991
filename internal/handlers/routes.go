package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortlinks/internal/ratelimit"
)

// RegisterRoutes registers all URL shortener routes with per-endpoint
// rate limit configuration.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	// POST /api/shorten - stricter limits for write operations
	huma.Register(api, huma.Operation{
		OperationID: "shorten-url",
		Method:      http.MethodPost,
		Path:        "/api/shorten",
		Summary:     "Shorten a URL",
		Description: "Creates a short URL, or returns the existing one when the URL was already shortened.",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10},
					{Window: time.Hour, Max: 100},
					{Window: 24 * time.Hour, Max: 500},
				},
			},
		},
	}, urlHandler.Shorten)

	// GET /s/{code} - relaxed limits for high-traffic redirects
	huma.Register(api, huma.Operation{
		OperationID: "redirect-short-url",
		Method:      http.MethodGet,
		Path:        "/s/{code}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL and records the view.",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 1000},
				},
			},
		},
	}, urlHandler.Redirect)

	huma.Register(api, huma.Operation{
		OperationID: "get-analytics",
		Method:      http.MethodGet,
		Path:        "/api/analytics/{code}",
		Summary:     "Get analytics for a short URL",
		Tags:        []string{"Analytics"},
	}, urlHandler.GetAnalytics)

	huma.Register(api, huma.Operation{
		OperationID: "get-all-analytics",
		Method:      http.MethodGet,
		Path:        "/api/analytics",
		Summary:     "Get analytics for all short URLs",
		Description: "Uncached listing computed directly from the store; intended for administrative use.",
		Tags:        []string{"Analytics"},
	}, urlHandler.GetAllAnalytics)
}
