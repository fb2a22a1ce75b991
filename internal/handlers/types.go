package handlers

import "time"

// ShortenRequest is the request body for shortening a URL.
type ShortenRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url"`
	}
}

// ShortenResponse is the response for a shortened URL. Status is 201
// when a new record was created, 200 when the URL was already shortened.
type ShortenResponse struct {
	Status int
	Body   struct {
		Success     bool   `doc:"Whether the request succeeded"  json:"success"`
		ShortURL    string `doc:"The full short URL"             example:"http://localhost:8888/s/aZ3kX9" json:"short_url"`
		ShortURI    string `doc:"The short code"                 example:"aZ3kX9"                         json:"short_uri"`
		OriginalURL string `doc:"The original URL"               json:"original_url"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"aZ3kX9" path:"code"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

// AnalyticsRequest is the request for per-code analytics.
type AnalyticsRequest struct {
	Code string `doc:"The short code" example:"aZ3kX9" path:"code"`
}

// AnalyticsView is a single entry in the recent view history.
type AnalyticsView struct {
	TimeVisited time.Time `json:"time_visited"`
}

// AnalyticsResponse is the analytics snapshot for one short URL.
type AnalyticsResponse struct {
	Body struct {
		Success     bool            `json:"success"`
		ShortURL    string          `json:"short_url"`
		OriginalURL string          `json:"original_url"`
		CreatedAt   time.Time       `json:"created_at"`
		ViewCount   int64           `json:"view_count"`
		LatestViews []AnalyticsView `json:"latest_views"`
	}
}

// AnalyticsSummary is a per-code entry in the all-URLs listing.
type AnalyticsSummary struct {
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ViewCount   int64      `json:"view_count"`
	LastViewed  *time.Time `json:"last_viewed"`
}

// AllAnalyticsResponse lists analytics for every known short URL.
type AllAnalyticsResponse struct {
	Body struct {
		Success   bool                        `json:"success"`
		TotalURLs int                         `json:"total_urls"`
		URLs      map[string]AnalyticsSummary `json:"urls"`
	}
}
