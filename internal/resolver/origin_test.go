package resolver_test

import (
	"testing"

	"github.com/serroba/shortlinks/internal/resolver"
	"github.com/stretchr/testify/assert"
)

func TestUserAgentClassifier_Classify(t *testing.T) {
	classifier := resolver.NewUserAgentClassifier()

	tests := []struct {
		name      string
		userAgent string
		want      resolver.Origin
	}{
		{"curl", "curl/8.4.0", resolver.OriginTrusted},
		{"firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0", resolver.OriginBrowser},
		{"chrome", "Mozilla/5.0 (Macintosh) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", resolver.OriginBrowser},
		{"safari", "Safari/605.1.15", resolver.OriginBrowser},
		{"edge", "Edge/120.0", resolver.OriginBrowser},
		{"python client", "python-requests/2.31.0", resolver.OriginDefault},
		{"go client", "Go-http-client/2.0", resolver.OriginDefault},
		{"empty", "", resolver.OriginDefault},
		{"curl wins over browser markers", "curl-impersonate Mozilla/5.0", resolver.OriginTrusted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.userAgent))
		})
	}
}
