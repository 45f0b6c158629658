// Package classifier implements the layered sentiment decision pipeline:
// structural heuristics first, then the statistical model, then keyword
// counts, then a default-neutral fallback. The check order is the
// contract; earlier stages intentionally shadow later ones.
package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/lexicon"
	"github.com/feedbacklens/classifier/internal/logging"
	"github.com/feedbacklens/classifier/internal/telemetry"
)

// defaultTruncationLength is the model input cap in characters. This is
// a platform constraint of the underlying transformer, not a tunable.
const defaultTruncationLength = 512

// Config holds construction-time settings for the pipeline.
type Config struct {
	// TruncationLength caps the text passed to the statistical model.
	TruncationLength int
	// ModelConfidenceThreshold is carried as a tuning knob but does not
	// gate the transformer trust branch. Do not wire gating behavior
	// around it without product input.
	ModelConfidenceThreshold float64
	// Lightweight forces the model capability to be treated as absent,
	// for memory-constrained deployments.
	Lightweight bool
}

func (c *Config) setDefaults() {
	if c.TruncationLength == 0 {
		c.TruncationLength = defaultTruncationLength
	}
}

// Validate fails fast on misconfiguration that would otherwise produce
// silently wrong thresholds.
func (c *Config) Validate() error {
	if c.TruncationLength < 0 {
		return fmt.Errorf("truncation length must be non-negative, got %d", c.TruncationLength)
	}
	if c.ModelConfidenceThreshold < 0 || c.ModelConfidenceThreshold > 1 {
		return fmt.Errorf("model confidence threshold must be in [0,1], got %g", c.ModelConfidenceThreshold)
	}
	return nil
}

// Classifier runs the sentiment decision pipeline. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	lex       *lexicon.Lexicon
	model     Model
	cfg       Config
	logger    logging.Logger
	telemetry *telemetry.Provider
}

// New creates a Classifier. The model capability may be nil; the
// pipeline then classifies from lexicon counts alone. Construction is
// the only place an error can surface; Classify itself is total.
func New(lex *lexicon.Lexicon, model Model, cfg Config, logger logging.Logger, tp *telemetry.Provider) (*Classifier, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("classifier config: %w", err)
	}

	if cfg.Lightweight && model != nil {
		logger.Info("lightweight mode enabled, statistical model disabled")
		model = nil
	}
	if model == nil {
		logger.Info("statistical model unavailable, keyword backup will decide")
	}

	return &Classifier{
		lex:       lex,
		model:     model,
		cfg:       cfg,
		logger:    logger,
		telemetry: tp,
	}, nil
}

// ModelAvailable reports whether a statistical model capability is wired in.
func (c *Classifier) ModelAvailable() bool {
	return c.model != nil
}

// Lexicon returns the shared read-only lexicon.
func (c *Classifier) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// Classify assigns a sentiment label to the given feedback text. It is
// total over all strings and deterministic for a fixed model capability:
// every call returns a valid result and never an error.
func (c *Classifier) Classify(ctx context.Context, text string) *domain.ClassificationResult {
	start := time.Now()
	ctx, endSpan := c.startSpan(ctx, text)

	result := c.run(ctx, text)

	duration := time.Since(start)
	endSpan(result.Label, result.Method)
	if c.telemetry != nil {
		c.telemetry.RecordClassification(ctx, result.Label, result.Method, duration)
	}
	c.logVerdict(text, result, duration)

	return result
}

// run walks the decision chain. Exactly one exit point fires per call.
func (c *Classifier) run(ctx context.Context, text string) *domain.ClassificationResult {
	if strings.TrimSpace(text) == "" {
		return &domain.ClassificationResult{
			Label:      domain.LabelNeutral,
			Confidence: 0.0,
			Method:     domain.MethodEmptyText,
			Detail:     map[string]any{},
		}
	}

	folded := lexicon.Fold(text)

	if verdict := c.heuristicGate(folded); verdict != nil {
		return verdict
	}

	counts := c.countKeywords(folded)

	if c.model != nil {
		if verdict := c.stageModel(ctx, text, counts); verdict != nil {
			return verdict
		}
	}

	return c.stageKeywordBackup(counts)
}

// startSpan opens a trace span around a classification when telemetry is
// wired, and is a no-op otherwise.
func (c *Classifier) startSpan(ctx context.Context, text string) (context.Context, func(label, method string)) {
	if c.telemetry == nil {
		return ctx, func(string, string) {}
	}
	ctx, span := c.telemetry.StartSpan(ctx, "classifier.Classify",
		attribute.Int("text_length", len(text)))
	return ctx, func(label, method string) {
		span.SetAttributes(
			attribute.String("label", label),
			attribute.String("method", method),
		)
		span.End()
	}
}
