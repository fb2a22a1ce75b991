package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortlinks/internal/analytics"
	"github.com/serroba/shortlinks/internal/resolver"
	"github.com/serroba/shortlinks/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler handles shortening, redirect, and analytics operations.
type URLHandler struct {
	shorten   *shortener.Service
	resolver  *resolver.Service
	analytics *analytics.Service
	baseURL   string
	logger    *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(
	shorten *shortener.Service,
	resolverSvc *resolver.Service,
	analyticsSvc *analytics.Service,
	baseURL string,
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		shorten:   shorten,
		resolver:  resolverSvc,
		analytics: analyticsSvc,
		baseURL:   baseURL,
		logger:    logger,
	}
}

func (h *URLHandler) shortURL(code string) string {
	return fmt.Sprintf("%s/s/%s", h.baseURL, code)
}

// Shorten creates a short URL, or returns the existing one for a URL
// that was already shortened.
func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	shortURL, created, err := h.shorten.Shorten(ctx, req.Body.URL)
	if err != nil {
		var vErr *shortener.ValidationError
		if errors.As(err, &vErr) {
			return nil, huma.Error400BadRequest(vErr.Message)
		}

		if errors.Is(err, shortener.ErrCapacityExhausted) {
			h.logger.Error("short code space exhausted")

			return nil, huma.Error500InternalServerError("failed to generate a unique short code")
		}

		h.logger.Error("failed to shorten url", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to shorten url")
	}

	resp := &ShortenResponse{Status: http.StatusOK}
	if created {
		resp.Status = http.StatusCreated
	}

	resp.Body.Success = true
	resp.Body.ShortURL = h.shortURL(string(shortURL.Code))
	resp.Body.ShortURI = string(shortURL.Code)
	resp.Body.OriginalURL = shortURL.OriginalURL

	return resp, nil
}

// Redirect resolves a short code and redirects to the original URL,
// recording the view along the way.
func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	meta := RequestMetaFromContext(ctx)

	originalURL, err := h.resolver.Resolve(ctx, shortener.Code(req.Code), meta.UserAgent)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("Short URL not found")
		}

		h.logger.Error("failed to resolve short url",
			zap.String("code", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to resolve short url")
	}

	resp := &RedirectResponse{
		Status: http.StatusFound,
	}
	resp.Headers.Location = originalURL

	return resp, nil
}

// GetAnalytics returns the analytics snapshot for one short URL.
func (h *URLHandler) GetAnalytics(ctx context.Context, req *AnalyticsRequest) (*AnalyticsResponse, error) {
	snapshot, err := h.analytics.Get(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("Short URL not found")
		}

		h.logger.Error("failed to compute analytics",
			zap.String("code", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to compute analytics")
	}

	resp := &AnalyticsResponse{}
	resp.Body.Success = true
	resp.Body.ShortURL = h.shortURL(snapshot.Code)
	resp.Body.OriginalURL = snapshot.OriginalURL
	resp.Body.CreatedAt = snapshot.CreatedAt
	resp.Body.ViewCount = snapshot.ViewCount

	resp.Body.LatestViews = make([]AnalyticsView, 0, len(snapshot.LatestViews))
	for _, visited := range snapshot.LatestViews {
		resp.Body.LatestViews = append(resp.Body.LatestViews, AnalyticsView{TimeVisited: visited})
	}

	return resp, nil
}

// GetAllAnalytics returns analytics for every known short URL.
func (h *URLHandler) GetAllAnalytics(ctx context.Context, _ *struct{}) (*AllAnalyticsResponse, error) {
	summaries, err := h.analytics.All(ctx)
	if err != nil {
		h.logger.Error("failed to compute analytics listing", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to compute analytics")
	}

	resp := &AllAnalyticsResponse{}
	resp.Body.Success = true
	resp.Body.TotalURLs = len(summaries)
	resp.Body.URLs = make(map[string]AnalyticsSummary, len(summaries))

	for _, s := range summaries {
		resp.Body.URLs[s.Code] = AnalyticsSummary{
			ShortURL:    h.shortURL(s.Code),
			OriginalURL: s.OriginalURL,
			CreatedAt:   s.CreatedAt,
			ViewCount:   s.ViewCount,
			LastViewed:  s.LastViewed,
		}
	}

	return resp, nil
}
