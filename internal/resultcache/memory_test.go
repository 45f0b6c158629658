package resultcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/resultcache"
)

func TestKey(t *testing.T) {
	assert.Equal(t, resultcache.Key("same text"), resultcache.Key("same text"))
	assert.NotEqual(t, resultcache.Key("one"), resultcache.Key("two"))
	assert.Len(t, resultcache.Key(""), 64)
}

func TestMemoryCache_SetGet(t *testing.T) {
	cache := resultcache.NewMemoryCache(time.Minute)
	ctx := context.Background()

	result := &domain.ClassificationResult{
		Label:      domain.LabelPositive,
		Confidence: 0.9,
		Method:     domain.MethodTransformerPrimary,
	}
	key := resultcache.Key("great course")

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok)

	cache.Set(ctx, key, result)

	got, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, result, got)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	cache := resultcache.NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()
	key := resultcache.Key("short lived")

	cache.Set(ctx, key, &domain.ClassificationResult{Label: domain.LabelNeutral})

	time.Sleep(30 * time.Millisecond)

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok)
}
