// Package processor runs batches of feedback texts through the
// classification pipeline with a bounded worker pool.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/feedbacklens/classifier/internal/classifier"
	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/logging"
)

const defaultConcurrency = 10

// Item is a single feedback text to classify, with request metadata.
type Item struct {
	FeedbackText string
	Domain       string
}

// ProcessResult pairs an input item with its classification.
type ProcessResult struct {
	Item   Item
	Result *domain.ClassificationResult
}

// BatchProcessor classifies batches in parallel. The pipeline is
// stateless per call, so workers need no coordination beyond the
// optional rate limiter in front of model-bound work.
type BatchProcessor struct {
	classifier  *classifier.Classifier
	limiter     *RateLimiter
	concurrency int
	logger      logging.Logger
}

// NewBatchProcessor creates a batch processor. The limiter may be nil
// when model calls need no throttling.
func NewBatchProcessor(cls *classifier.Classifier, limiter *RateLimiter, concurrency int, logger logging.Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchProcessor{
		classifier:  cls,
		limiter:     limiter,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Process classifies every item, preserving input order in the result
// slice. Classification is total, so every item yields a result; a
// cancelled context stops the workers early and leaves the remaining
// slots nil.
func (b *BatchProcessor) Process(ctx context.Context, items []Item) []*ProcessResult {
	if len(items) == 0 {
		return []*ProcessResult{}
	}

	b.logger.Info("starting batch classification",
		logging.Int("batch_size", len(items)),
		logging.Int("concurrency", b.concurrency),
	)
	start := time.Now()

	type job struct {
		index int
		item  Item
	}

	jobs := make(chan job, len(items))
	results := make([]*ProcessResult, len(items))

	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					b.logger.Warn("batch worker stopping, context cancelled")
					return
				default:
				}

				if b.limiter != nil && b.classifier.ModelAvailable() {
					if err := b.limiter.Wait(ctx); err != nil {
						return
					}
				}

				results[j.index] = &ProcessResult{
					Item:   j.item,
					Result: b.classifier.Classify(ctx, j.item.FeedbackText),
				}
			}
		}()
	}

	for i, item := range items {
		jobs <- job{index: i, item: item}
	}
	close(jobs)
	wg.Wait()

	duration := time.Since(start)
	b.logger.Info("batch classification complete",
		logging.Int("total", len(items)),
		logging.Int64("duration_ms", duration.Milliseconds()),
	)

	return results
}

// Concurrency returns the worker pool size.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}
