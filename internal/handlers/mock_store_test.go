package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortlinks/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertStatus checks that a handler error carries the expected HTTP status.
func assertStatus(t *testing.T, err error, want int) {
	t.Helper()

	require.Error(t, err)

	statusErr, ok := err.(huma.StatusError)
	require.True(t, ok, "error does not carry an HTTP status: %v", err)
	assert.Equal(t, want, statusErr.GetStatus())
}

// erroringRepo fails every operation with a fixed error.
type erroringRepo struct {
	err error
}

func (r *erroringRepo) Save(context.Context, *shortener.ShortURL) error {
	return r.err
}

func (r *erroringRepo) GetByCode(context.Context, shortener.Code) (*shortener.ShortURL, error) {
	return nil, r.err
}

func (r *erroringRepo) GetByHash(context.Context, shortener.URLHash) (*shortener.ShortURL, error) {
	return nil, r.err
}

func (r *erroringRepo) CodeExists(context.Context, shortener.Code) (bool, error) {
	return false, r.err
}

func (r *erroringRepo) All(context.Context) ([]shortener.ShortURL, error) {
	return nil, r.err
}

func (r *erroringRepo) SaveView(context.Context, *shortener.View) error {
	return r.err
}

func (r *erroringRepo) CountViews(context.Context, shortener.Code) (int64, error) {
	return 0, r.err
}

func (r *erroringRepo) LatestViews(context.Context, shortener.Code, int) ([]shortener.View, error) {
	return nil, r.err
}

func (r *erroringRepo) LastViewedAt(context.Context, shortener.Code) (*time.Time, error) {
	return nil, r.err
}
