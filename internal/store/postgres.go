package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shortlinks/internal/shortener"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
//
// Expected schema:
//
//	short_urls(id, og_url, short_uri UNIQUE, og_url_hash UNIQUE, created_at)
//	short_url_views(id, short_uri REFERENCES short_urls(short_uri) ON DELETE CASCADE, time_visited, created_at)
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Save(ctx context.Context, shortURL *shortener.ShortURL) error {
	query := `
		INSERT INTO short_urls (og_url, short_uri, og_url_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query,
		shortURL.OriginalURL,
		string(shortURL.Code),
		string(shortURL.URLHash),
		shortURL.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "og_url_hash") {
				return shortener.ErrHashConflict
			}

			return shortener.ErrCodeConflict
		}

		return err
	}

	return nil
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	query := `
		SELECT short_uri, og_url, og_url_hash, created_at
		FROM short_urls
		WHERE short_uri = $1
	`

	return p.getOne(ctx, query, string(code))
}

func (p *PostgresStore) GetByHash(ctx context.Context, hash shortener.URLHash) (*shortener.ShortURL, error) {
	query := `
		SELECT short_uri, og_url, og_url_hash, created_at
		FROM short_urls
		WHERE og_url_hash = $1
	`

	return p.getOne(ctx, query, string(hash))
}

func (p *PostgresStore) getOne(ctx context.Context, query, arg string) (*shortener.ShortURL, error) {
	var url shortener.ShortURL

	err := p.pool.QueryRow(ctx, query, arg).Scan(
		&url.Code,
		&url.OriginalURL,
		&url.URLHash,
		&url.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &url, nil
}

func (p *PostgresStore) CodeExists(ctx context.Context, code shortener.Code) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM short_urls WHERE short_uri = $1)`

	var exists bool

	if err := p.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresStore) All(ctx context.Context) ([]shortener.ShortURL, error) {
	query := `
		SELECT short_uri, og_url, og_url_hash, created_at
		FROM short_urls
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []shortener.ShortURL

	for rows.Next() {
		var url shortener.ShortURL

		if err := rows.Scan(&url.Code, &url.OriginalURL, &url.URLHash, &url.CreatedAt); err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, rows.Err()
}

func (p *PostgresStore) SaveView(ctx context.Context, view *shortener.View) error {
	query := `
		INSERT INTO short_url_views (short_uri, time_visited, created_at)
		VALUES ($1, $2, now())
	`

	_, err := p.pool.Exec(ctx, query, string(view.Code), view.TimeVisited)

	return err
}

func (p *PostgresStore) CountViews(ctx context.Context, code shortener.Code) (int64, error) {
	query := `SELECT count(*) FROM short_url_views WHERE short_uri = $1`

	var count int64

	if err := p.pool.QueryRow(ctx, query, string(code)).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (p *PostgresStore) LatestViews(ctx context.Context, code shortener.Code, limit int) ([]shortener.View, error) {
	query := `
		SELECT short_uri, time_visited, created_at
		FROM short_url_views
		WHERE short_uri = $1
		ORDER BY time_visited DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, string(code), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []shortener.View

	for rows.Next() {
		var view shortener.View

		if err := rows.Scan(&view.Code, &view.TimeVisited, &view.CreatedAt); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	return views, rows.Err()
}

func (p *PostgresStore) LastViewedAt(ctx context.Context, code shortener.Code) (*time.Time, error) {
	query := `
		SELECT time_visited
		FROM short_url_views
		WHERE short_uri = $1
		ORDER BY time_visited DESC
		LIMIT 1
	`

	var visited time.Time

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(&visited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &visited, nil
}

// Shutdown closes the underlying connection pool.
func (p *PostgresStore) Shutdown() error {
	p.pool.Close()

	return nil
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
