// Package resultcache caches classification results by text digest.
// Classification is deterministic for a fixed model, so a cached verdict
// is always valid until its TTL expires. Entries are ephemeral; this is
// a read-through cache, not persistence.
package resultcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/feedbacklens/classifier/internal/domain"
)

// Cache stores classification results keyed by text digest.
type Cache interface {
	// Get returns the cached result for key, or (nil, false) on a miss.
	Get(ctx context.Context, key string) (*domain.ClassificationResult, bool)
	// Set stores the result under key for the backend's TTL.
	Set(ctx context.Context, key string, result *domain.ClassificationResult)
}

// Key derives the cache key for a feedback text. Results depend only on
// the text, so request metadata is not part of the key.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
