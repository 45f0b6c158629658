// Package telemetry provides OpenTelemetry instrumentation for the
// classifier service. It exports Prometheus metrics and tracing spans.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "sentiment-classifier"

// Metrics holds all classifier Prometheus metrics.
type Metrics struct {
	// Pipeline metrics
	ClassificationsTotal   *prometheus.CounterVec
	ClassificationDuration prometheus.Histogram

	// Statistical model metrics
	ModelCallsTotal    prometheus.Counter
	ModelFailuresTotal *prometheus.CounterVec

	// Result cache metrics
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// Batch metrics
	BatchSize prometheus.Histogram
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		ClassificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiment_classifications_total",
			Help: "Total feedback texts classified, by label and deciding method",
		}, []string{"label", "method"}),

		ClassificationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sentiment_classification_duration_seconds",
			Help:    "Time to classify a single feedback text",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0},
		}),

		ModelCallsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sentiment_model_calls_total",
			Help: "Total inference calls to the statistical model",
		}),

		ModelFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiment_model_failures_total",
			Help: "Model inference faults that degraded to keyword backup, by error type",
		}, []string{"error_type"}),

		CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sentiment_result_cache_hits_total",
			Help: "Classification results served from the result cache",
		}),

		CacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sentiment_result_cache_misses_total",
			Help: "Classification requests not found in the result cache",
		}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sentiment_batch_size",
			Help:    "Number of feedback texts per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),
	}
}

// RecordClassification records metrics for a single classification.
func (p *Provider) RecordClassification(ctx context.Context, label, method string, duration time.Duration) {
	p.Metrics.ClassificationsTotal.WithLabelValues(label, method).Inc()
	p.Metrics.ClassificationDuration.Observe(duration.Seconds())
}

// RecordModelCall records a successful model inference call.
func (p *Provider) RecordModelCall(ctx context.Context) {
	p.Metrics.ModelCallsTotal.Inc()
}

// RecordModelFailure records a model inference fault by error type.
func (p *Provider) RecordModelFailure(ctx context.Context, errorType string) {
	p.Metrics.ModelFailuresTotal.WithLabelValues(errorType).Inc()
}

// RecordCacheHit records a result cache hit.
func (p *Provider) RecordCacheHit(ctx context.Context) {
	p.Metrics.CacheHitsTotal.Inc()
}

// RecordCacheMiss records a result cache miss.
func (p *Provider) RecordCacheMiss(ctx context.Context) {
	p.Metrics.CacheMissesTotal.Inc()
}

// RecordBatchSize records the size of a processed batch.
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
