package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/shortlinks/internal/analytics"
	"github.com/serroba/shortlinks/internal/cache"
	"github.com/serroba/shortlinks/internal/messaging"
	"github.com/serroba/shortlinks/internal/shortener"
	"go.uber.org/zap"
)

// DefaultURLTTL bounds how long a resolved target URL stays cached.
const DefaultURLTTL = time.Hour

// Service resolves short codes to target URLs and records views.
// Resolution is the contract; view recording is a best-effort side
// channel that never blocks or fails the redirect.
type Service struct {
	repo        shortener.Repository
	cache       cache.Cache
	classifier  Classifier
	publishView messaging.Publish[analytics.ViewEvent]
	urlTTL      time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new resolver service.
func NewService(
	repo shortener.Repository,
	c cache.Cache,
	classifier Classifier,
	publishView messaging.Publish[analytics.ViewEvent],
	urlTTL time.Duration,
	logger *zap.Logger,
) *Service {
	if urlTTL <= 0 {
		urlTTL = DefaultURLTTL
	}

	return &Service{
		repo:        repo,
		cache:       c,
		classifier:  classifier,
		publishView: publishView,
		urlTTL:      urlTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// Resolve returns the original URL for code, recording the view either
// synchronously or via the queue depending on the request origin.
// Returns shortener.ErrNotFound when the code is unknown; no view is
// recorded in that case.
func (s *Service) Resolve(ctx context.Context, code shortener.Code, userAgent string) (string, error) {
	originalURL, err := s.lookup(ctx, code)
	if err != nil {
		return "", err
	}

	origin := s.classifier.Classify(userAgent)
	visited := s.now()

	switch origin {
	case OriginTrusted, OriginBrowser:
		s.recordView(ctx, code, visited)
	case OriginDefault:
		s.enqueueView(code, visited)
	}

	return originalURL, nil
}

// lookup resolves the target URL through the cache, falling back to the
// store on a miss and populating the cache with a bounded TTL.
func (s *Service) lookup(ctx context.Context, code shortener.Code) (string, error) {
	key := cache.URLKey(string(code))

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("url cache read failed",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}

	shortURL, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, shortURL.OriginalURL, s.urlTTL); err != nil {
		s.logger.Warn("url cache write failed",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}

	return shortURL.OriginalURL, nil
}

// recordView writes the view in-line with the redirect and invalidates
// the analytics snapshot afterward, so a subsequent analytics read
// cannot keep serving a snapshot that predates this visit. Failures are
// logged, never surfaced.
func (s *Service) recordView(ctx context.Context, code shortener.Code, visited time.Time) {
	view := &shortener.View{
		Code:        code,
		TimeVisited: visited,
	}

	if err := s.repo.SaveView(ctx, view); err != nil {
		s.logger.Error("failed to record view",
			zap.String("code", string(code)),
			zap.Error(err),
		)

		return
	}

	if err := s.cache.Forget(ctx, cache.AnalyticsKey(string(code))); err != nil {
		s.logger.Warn("failed to invalidate analytics cache",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}
}

// enqueueView defers the view write to the queue consumer. Publish
// failures are logged, never surfaced.
func (s *Service) enqueueView(code shortener.Code, visited time.Time) {
	event := &analytics.ViewEvent{
		EventID:     uuid.NewString(),
		Code:        string(code),
		TimeVisited: visited,
	}

	if err := s.publishView(event); err != nil {
		s.logger.Error("failed to publish view event",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}
}
