package shortener

import (
	"context"
	"errors"
	"time"
)

// Service implements the shortening operation: validation, hash-based
// dedup, code generation, and record creation.
type Service struct {
	repo Repository
	gen  *Generator
	now  func() time.Time
}

// NewService creates a new shortening service.
func NewService(repo Repository, gen *Generator) *Service {
	return &Service{
		repo: repo,
		gen:  gen,
		now:  time.Now,
	}
}

// Shorten returns the short URL record for originalURL, creating one if
// none exists. The created flag tells the caller whether a new record
// was committed, so the boundary can choose its response status.
//
// Calling Shorten repeatedly with the same URL is idempotent: once the
// first record is committed, every call yields the same code. Concurrent
// first-time calls race on the store's hash uniqueness constraint; the
// loser re-fetches and returns the winner's record.
func (s *Service) Shorten(ctx context.Context, originalURL string) (*ShortURL, bool, error) {
	if err := ValidateURL(originalURL); err != nil {
		return nil, false, err
	}

	urlHash := HashURL(originalURL)

	existing, err := s.repo.GetByHash(ctx, urlHash)
	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	code, err := s.gen.Generate(ctx)
	if err != nil {
		return nil, false, err
	}

	shortURL := &ShortURL{
		Code:        code,
		OriginalURL: originalURL,
		URLHash:     urlHash,
		CreatedAt:   s.now(),
	}

	err = s.repo.Save(ctx, shortURL)
	if err == nil {
		return shortURL, true, nil
	}

	if errors.Is(err, ErrHashConflict) {
		// Another writer created the record between our lookup and insert.
		winner, fetchErr := s.repo.GetByHash(ctx, urlHash)
		if fetchErr != nil {
			return nil, false, fetchErr
		}

		return winner, false, nil
	}

	return nil, false, err
}
