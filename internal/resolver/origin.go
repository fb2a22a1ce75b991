package resolver

import "strings"

// Origin classifies where a redirect request came from, which decides
// whether its view is recorded synchronously or queued.
type Origin string

const (
	// OriginTrusted covers automation and test clients that expect the
	// view to be visible as soon as the redirect returns.
	OriginTrusted Origin = "trusted"
	// OriginBrowser covers interactive browser clients.
	OriginBrowser Origin = "browser"
	// OriginDefault covers everything else, typically programmatic API
	// consumers, whose views are recorded via the queue.
	OriginDefault Origin = "default"
)

// Classifier decides the origin of a request. It is pluggable so tests
// can inject a fixed classification instead of relying on header sniffing.
type Classifier interface {
	Classify(userAgent string) Origin
}

var trustedSignatures = []string{"curl"}

var browserSignatures = []string{"Mozilla", "Chrome", "Safari", "Edge", "Firefox"}

// UserAgentClassifier classifies requests by their User-Agent header.
// Header sniffing is inherently fragile; keep the signature lists short
// and treat everything unrecognized as OriginDefault.
type UserAgentClassifier struct{}

// NewUserAgentClassifier creates a new User-Agent based classifier.
func NewUserAgentClassifier() *UserAgentClassifier {
	return &UserAgentClassifier{}
}

// Classify returns the origin for the given User-Agent string.
func (c *UserAgentClassifier) Classify(userAgent string) Origin {
	for _, sig := range trustedSignatures {
		if strings.Contains(userAgent, sig) {
			return OriginTrusted
		}
	}

	for _, sig := range browserSignatures {
		if strings.Contains(userAgent, sig) {
			return OriginBrowser
		}
	}

	return OriginDefault
}
