package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/serroba/shortlinks/internal/cache"
	"github.com/serroba/shortlinks/internal/shortener"
	"go.uber.org/zap"
)

// DefaultSnapshotTTL bounds how long a computed analytics snapshot may
// be served before recomputation. Kept short so counts stay
// near-real-time while absorbing request bursts.
const DefaultSnapshotTTL = 2 * time.Second

// latestViewsLimit is the number of recent views included in a snapshot.
const latestViewsLimit = 10

// Snapshot is a computed, time-bounded analytics result for one code.
// It is derived from the persistent store and never authoritative.
type Snapshot struct {
	Code        string      `json:"code"`
	OriginalURL string      `json:"originalUrl"`
	CreatedAt   time.Time   `json:"createdAt"`
	ViewCount   int64       `json:"viewCount"`
	LatestViews []time.Time `json:"latestViews"`
}

// Summary is a per-code entry in the all-URLs analytics listing.
type Summary struct {
	Code        string
	OriginalURL string
	CreatedAt   time.Time
	ViewCount   int64
	LastViewed  *time.Time
}

// Service computes view counts and recent view history.
type Service struct {
	repo        shortener.Repository
	cache       cache.Cache
	snapshotTTL time.Duration
	logger      *zap.Logger
}

// NewService creates a new analytics service.
func NewService(repo shortener.Repository, c cache.Cache, snapshotTTL time.Duration, logger *zap.Logger) *Service {
	if snapshotTTL <= 0 {
		snapshotTTL = DefaultSnapshotTTL
	}

	return &Service{
		repo:        repo,
		cache:       c,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// Get returns a fresh analytics snapshot for code. Any cached snapshot
// is invalidated first so a direct analytics request always observes
// current data, then the recomputed snapshot is cached briefly to
// absorb bursts. Returns shortener.ErrNotFound for unknown codes.
func (s *Service) Get(ctx context.Context, code shortener.Code) (*Snapshot, error) {
	key := cache.AnalyticsKey(string(code))

	if err := s.cache.Forget(ctx, key); err != nil {
		s.logger.Warn("failed to invalidate analytics cache",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}

	snapshot, err := s.compute(ctx, code)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(snapshot); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.snapshotTTL); err != nil {
			s.logger.Warn("failed to cache analytics snapshot",
				zap.String("code", string(code)),
				zap.Error(err),
			)
		}
	}

	return snapshot, nil
}

func (s *Service) compute(ctx context.Context, code shortener.Code) (*Snapshot, error) {
	shortURL, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountViews(ctx, code)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.LatestViews(ctx, code, latestViewsLimit)
	if err != nil {
		return nil, err
	}

	latest := make([]time.Time, 0, len(views))
	for _, v := range views {
		latest = append(latest, v.TimeVisited)
	}

	return &Snapshot{
		Code:        string(shortURL.Code),
		OriginalURL: shortURL.OriginalURL,
		CreatedAt:   shortURL.CreatedAt,
		ViewCount:   count,
		LatestViews: latest,
	}, nil
}

// All returns a summary for every known short URL, computed directly
// from the store with no caching. Intended for low-traffic
// administrative use; cost grows with total record count.
func (s *Service) All(ctx context.Context) ([]Summary, error) {
	shortURLs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(shortURLs))

	for _, u := range shortURLs {
		count, err := s.repo.CountViews(ctx, u.Code)
		if err != nil {
			return nil, err
		}

		lastViewed, err := s.repo.LastViewedAt(ctx, u.Code)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, Summary{
			Code:        string(u.Code),
			OriginalURL: u.OriginalURL,
			CreatedAt:   u.CreatedAt,
			ViewCount:   count,
			LastViewed:  lastViewed,
		})
	}

	return summaries, nil
}
