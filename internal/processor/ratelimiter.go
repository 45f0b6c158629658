package processor

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/feedbacklens/classifier/internal/logging"
)

const defaultRPS = 100

// RateLimiter throttles calls to the statistical model sidecar so a
// large batch cannot overwhelm it.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  logging.Logger
}

// NewRateLimiter creates a rate limiter.
// rps: requests per second. burst: maximum burst size.
func NewRateLimiter(rps, burst int, logger logging.Logger) *RateLimiter {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = rps
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

// Wait blocks until the rate limit allows the operation or the context
// is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		r.logger.Warn("rate limiter wait failed", logging.Error(err))
		return err
	}
	return nil
}

// Allow checks if an operation is allowed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}
