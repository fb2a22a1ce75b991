package shortener_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/serroba/shortlinks/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[0-9A-Za-z]{6}$`)

func TestGenerator_Generate(t *testing.T) {
	t.Run("produces a six character alphanumeric code", func(t *testing.T) {
		gen, err := shortener.NewGenerator(newMockRepo())
		require.NoError(t, err)

		code, err := gen.Generate(context.Background())

		require.NoError(t, err)
		assert.Regexp(t, codePattern, string(code))
	})

	t.Run("produces distinct codes across calls", func(t *testing.T) {
		gen, err := shortener.NewGenerator(newMockRepo())
		require.NoError(t, err)

		seen := make(map[shortener.Code]bool)
		for range 50 {
			code, err := gen.Generate(context.Background())
			require.NoError(t, err)
			assert.False(t, seen[code], "code %q generated twice", code)
			seen[code] = true
		}
	})

	t.Run("retries until it finds an unused code", func(t *testing.T) {
		repo := &collidingRepo{mockRepo: newMockRepo(), collisions: 3}
		gen, err := shortener.NewGenerator(repo)
		require.NoError(t, err)

		code, err := gen.Generate(context.Background())

		require.NoError(t, err)
		assert.Regexp(t, codePattern, string(code))
		assert.Equal(t, 4, repo.checks)
	})

	t.Run("fails when every candidate already exists", func(t *testing.T) {
		repo := newMockRepo()
		repo.alwaysExists = true

		gen, err := shortener.NewGenerator(repo)
		require.NoError(t, err)

		_, err = gen.Generate(context.Background())

		assert.ErrorIs(t, err, shortener.ErrCapacityExhausted)
	})

	t.Run("propagates existence check errors", func(t *testing.T) {
		repo := newMockRepo()
		repo.existsErr = errMock

		gen, err := shortener.NewGenerator(repo)
		require.NoError(t, err)

		_, err = gen.Generate(context.Background())

		assert.ErrorIs(t, err, errMock)
	})
}

// collidingRepo reports a fixed number of collisions before admitting a
// candidate is free.
type collidingRepo struct {
	*mockRepo
	collisions int
	checks     int
}

func (r *collidingRepo) CodeExists(_ context.Context, _ shortener.Code) (bool, error) {
	r.checks++

	return r.checks <= r.collisions, nil
}
