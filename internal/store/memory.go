package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/serroba/shortlinks/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository,
// used in tests. It enforces the same uniqueness semantics as the
// Postgres store.
type MemoryStore struct {
	mu      sync.RWMutex
	byCode  map[shortener.Code]*shortener.ShortURL
	byHash  map[shortener.URLHash]shortener.Code
	views   map[shortener.Code][]shortener.View
	created []shortener.Code
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCode: make(map[shortener.Code]*shortener.ShortURL),
		byHash: make(map[shortener.URLHash]shortener.Code),
		views:  make(map[shortener.Code][]shortener.View),
	}
}

func (m *MemoryStore) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byHash[shortURL.URLHash]; ok {
		return shortener.ErrHashConflict
	}

	if _, ok := m.byCode[shortURL.Code]; ok {
		return shortener.ErrCodeConflict
	}

	stored := *shortURL
	m.byCode[shortURL.Code] = &stored
	m.byHash[shortURL.URLHash] = shortURL.Code
	m.created = append(m.created, shortURL.Code)

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.byCode[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	copied := *url

	return &copied, nil
}

func (m *MemoryStore) GetByHash(_ context.Context, hash shortener.URLHash) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	code, ok := m.byHash[hash]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	copied := *m.byCode[code]

	return &copied, nil
}

func (m *MemoryStore) CodeExists(_ context.Context, code shortener.Code) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.byCode[code]

	return ok, nil
}

func (m *MemoryStore) All(_ context.Context) ([]shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	urls := make([]shortener.ShortURL, 0, len(m.created))
	for _, code := range m.created {
		urls = append(urls, *m.byCode[code])
	}

	return urls, nil
}

func (m *MemoryStore) SaveView(_ context.Context, view *shortener.View) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *view
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	m.views[view.Code] = append(m.views[view.Code], stored)

	return nil
}

func (m *MemoryStore) CountViews(_ context.Context, code shortener.Code) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.views[code])), nil
}

func (m *MemoryStore) LatestViews(_ context.Context, code shortener.Code, limit int) ([]shortener.View, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	views := make([]shortener.View, len(m.views[code]))
	copy(views, m.views[code])

	sort.Slice(views, func(i, j int) bool {
		return views[i].TimeVisited.After(views[j].TimeVisited)
	})

	if len(views) > limit {
		views = views[:limit]
	}

	return views, nil
}

func (m *MemoryStore) LastViewedAt(_ context.Context, code shortener.Code) (*time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	views := m.views[code]
	if len(views) == 0 {
		return nil, nil
	}

	last := views[0].TimeVisited
	for _, v := range views[1:] {
		if v.TimeVisited.After(last) {
			last = v.TimeVisited
		}
	}

	return &last, nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
