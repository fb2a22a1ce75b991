package shortener

import (
	"net/url"
	"strings"
)

// MaxURLLength is the maximum accepted length of an original URL.
const MaxURLLength = 2048

// ValidateURL checks that rawURL is a syntactically valid http(s) URL of
// acceptable length. It returns a *ValidationError naming the offending
// field on failure.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return &ValidationError{Field: "url", Message: "url is required"}
	}

	if len(rawURL) > MaxURLLength {
		return &ValidationError{Field: "url", Message: "url must not exceed 2048 characters"}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "url is not a valid url"}
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return &ValidationError{Field: "url", Message: "url must use the http or https scheme"}
	}

	if u.Host == "" {
		return &ValidationError{Field: "url", Message: "url must include a host"}
	}

	return nil
}
