package shortener

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashURL computes the content hash of an original URL, used for dedup
// lookups. The hash is deterministic: the same URL always yields the
// same hash. Returned as a hex-encoded SHA256 string.
func HashURL(originalURL string) URLHash {
	h := sha256.Sum256([]byte(originalURL))

	return URLHash(hex.EncodeToString(h[:]))
}
