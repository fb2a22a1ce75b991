package shortener

import (
	"context"
	"fmt"

	"github.com/jaevor/go-nanoid"
)

// CodeLength is the fixed length of generated short codes.
const CodeLength = 6

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// maxGenerateAttempts bounds the collision retry loop. At 62^6 possible
// codes a collision is astronomically unlikely, but a bound keeps a
// saturated store from turning generation into an infinite loop.
const maxGenerateAttempts = 100

// Generator produces unique fixed-length alphanumeric short codes,
// verified against the repository before being returned.
type Generator struct {
	repo         Repository
	newCandidate func() string
}

// NewGenerator creates a generator backed by the given repository.
func NewGenerator(repo Repository) (*Generator, error) {
	newCandidate, err := nanoid.CustomASCII(codeAlphabet, CodeLength)
	if err != nil {
		return nil, fmt.Errorf("init code generator: %w", err)
	}

	return &Generator{
		repo:         repo,
		newCandidate: newCandidate,
	}, nil
}

// Generate returns a code that does not yet exist in the repository.
// It retries on collision and fails with ErrCapacityExhausted after
// maxGenerateAttempts.
func (g *Generator) Generate(ctx context.Context) (Code, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		candidate := Code(g.newCandidate())

		exists, err := g.repo.CodeExists(ctx, candidate)
		if err != nil {
			return "", err
		}

		if !exists {
			return candidate, nil
		}
	}

	return "", ErrCapacityExhausted
}
