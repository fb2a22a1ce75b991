package shortener

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for a code or hash.
	ErrNotFound = errors.New("short url not found")

	// ErrCapacityExhausted is returned when code generation gives up
	// after the bounded number of collision retries.
	ErrCapacityExhausted = errors.New("short code space exhausted")

	// ErrHashConflict is returned by Repository.Save when another record
	// with the same URL hash already exists. The caller treats this as
	// "someone else won the race" and re-fetches the winner.
	ErrHashConflict = errors.New("url hash already exists")

	// ErrCodeConflict is returned by Repository.Save when the code is
	// already taken.
	ErrCodeConflict = errors.New("short code already exists")
)

// ValidationError describes user-correctable input failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
