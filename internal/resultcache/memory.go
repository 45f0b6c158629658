package resultcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/feedbacklens/classifier/internal/domain"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryCache is an in-process TTL cache backed by go-cache.
type MemoryCache struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewMemoryCache creates a memory cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(ttl, defaultCleanupInterval),
		ttl:   ttl,
	}
}

// Get returns the cached result for key, or (nil, false) on a miss.
func (m *MemoryCache) Get(_ context.Context, key string) (*domain.ClassificationResult, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	result, ok := v.(*domain.ClassificationResult)
	return result, ok
}

// Set stores the result under key for the configured TTL.
func (m *MemoryCache) Set(_ context.Context, key string, result *domain.ClassificationResult) {
	m.store.Set(key, result, m.ttl)
}
