package resultcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/logging"
)

const redisKeyPrefix = "sentiment:result:"

// RedisCache is a shared TTL cache for multi-instance deployments.
// Cache faults are treated as misses; Redis being down never fails a
// classification request.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewRedisCache creates a redis-backed cache with the given TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger logging.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached result for key, or (nil, false) on a miss or
// any redis fault.
func (r *RedisCache) Get(ctx context.Context, key string) (*domain.ClassificationResult, bool) {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Debug("result cache get failed", logging.Error(err))
		}
		return nil, false
	}

	var result domain.ClassificationResult
	if err := json.Unmarshal(data, &result); err != nil {
		r.logger.Warn("result cache entry corrupt, discarding", logging.Error(err))
		return nil, false
	}
	return &result, true
}

// Set stores the result under key for the configured TTL. Failures are
// logged and otherwise ignored.
func (r *RedisCache) Set(ctx context.Context, key string, result *domain.ClassificationResult) {
	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Warn("result cache marshal failed", logging.Error(err))
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, data, r.ttl).Err(); err != nil {
		r.logger.Debug("result cache set failed", logging.Error(err))
	}
}
