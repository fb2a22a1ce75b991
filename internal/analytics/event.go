package analytics

import "time"

// TopicURLViewed is the topic for deferred view-recording events.
const TopicURLViewed = "url.viewed"

// ViewEvent carries a single view to be recorded out of the request
// cycle. Events are idempotent-safe to retry: a duplicate view row is
// an acceptable, bounded inaccuracy.
type ViewEvent struct {
	EventID     string    `json:"eventId"`
	Code        string    `json:"code"`
	TimeVisited time.Time `json:"timeVisited"`
}
