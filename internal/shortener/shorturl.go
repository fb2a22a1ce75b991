package shortener

import "time"

// Code represents a short URL code.
type Code string

// URLHash represents a hash of an original URL, used for dedup lookups.
type URLHash string

// ShortURL represents a shortened URL entity.
// Records are created once and never mutated.
type ShortURL struct {
	Code        Code
	OriginalURL string
	URLHash     URLHash
	CreatedAt   time.Time
}

// View represents a single recorded visit to a short URL.
// Rows are append-only.
type View struct {
	Code        Code
	TimeVisited time.Time
	CreatedAt   time.Time
}
