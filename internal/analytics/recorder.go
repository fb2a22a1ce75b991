package analytics

import (
	"context"

	"github.com/serroba/shortlinks/internal/cache"
	"github.com/serroba/shortlinks/internal/shortener"
	"go.uber.org/zap"
)

// Recorder persists deferred view events and invalidates the analytics
// snapshot for the affected code. It is the handler side of the
// url.viewed queue, run by the consumer binary.
type Recorder struct {
	repo   shortener.Repository
	cache  cache.Cache
	logger *zap.Logger
}

// NewRecorder creates a new view recorder.
func NewRecorder(repo shortener.Repository, c cache.Cache, logger *zap.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// HandleView writes the view row and forgets the cached analytics
// snapshot. A returned error nacks the message so the queue can retry.
func (r *Recorder) HandleView(ctx context.Context, event *ViewEvent) error {
	view := &shortener.View{
		Code:        shortener.Code(event.Code),
		TimeVisited: event.TimeVisited,
	}

	if err := r.repo.SaveView(ctx, view); err != nil {
		return err
	}

	if err := r.cache.Forget(ctx, cache.AnalyticsKey(event.Code)); err != nil {
		// The snapshot TTL bounds staleness; the view itself is committed.
		r.logger.Warn("failed to invalidate analytics cache",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	return nil
}
