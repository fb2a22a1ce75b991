package shortener

import (
	"context"
	"time"
)

// Repository defines the persistence operations for short URLs and views.
type Repository interface {
	// Save persists a new short URL record. It returns ErrHashConflict when
	// a record with the same URLHash already exists, and ErrCodeConflict
	// when the code is already taken.
	Save(ctx context.Context, shortURL *ShortURL) error

	GetByCode(ctx context.Context, code Code) (*ShortURL, error)
	GetByHash(ctx context.Context, hash URLHash) (*ShortURL, error)

	// CodeExists reports whether a record with the given code exists.
	CodeExists(ctx context.Context, code Code) (bool, error)

	// All returns every short URL record. Intended for low-traffic
	// administrative use only; it does not scale past moderate table sizes.
	All(ctx context.Context) ([]ShortURL, error)

	// SaveView appends a view row for the given code.
	SaveView(ctx context.Context, view *View) error

	CountViews(ctx context.Context, code Code) (int64, error)

	// LatestViews returns up to limit views ordered by time visited, newest first.
	LatestViews(ctx context.Context, code Code, limit int) ([]View, error)

	// LastViewedAt returns the time of the most recent view, or nil when
	// the code has never been visited.
	LastViewedAt(ctx context.Context, code Code) (*time.Time, error)
}
