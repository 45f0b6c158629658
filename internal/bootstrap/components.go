// Package bootstrap wires the classifier service's components from
// configuration.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feedbacklens/classifier/internal/api"
	"github.com/feedbacklens/classifier/internal/classifier"
	"github.com/feedbacklens/classifier/internal/config"
	"github.com/feedbacklens/classifier/internal/lexicon"
	"github.com/feedbacklens/classifier/internal/logging"
	"github.com/feedbacklens/classifier/internal/mlclient"
	"github.com/feedbacklens/classifier/internal/mlhealth"
	"github.com/feedbacklens/classifier/internal/processor"
	"github.com/feedbacklens/classifier/internal/resultcache"
	"github.com/feedbacklens/classifier/internal/telemetry"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPComponents holds everything the HTTP entrypoint needs.
type HTTPComponents struct {
	Classifier *classifier.Classifier
	Handler    *api.Handler
	Server     *api.Server
	Telemetry  *telemetry.Provider
}

// NewHTTPComponents builds the full component graph for the HTTP server.
func NewHTTPComponents(cfg *config.Config, logger logging.Logger) (*HTTPComponents, error) {
	tp := telemetry.NewProvider()
	lex := lexicon.New()

	var model classifier.Model
	var tracker *mlhealth.Tracker
	if cfg.Classification.ModelEnabled && !cfg.Classification.Lightweight {
		client := mlclient.NewClient(cfg.Classification.ModelServiceURL)
		model = client
		tracker = mlhealth.NewTracker(client.BaseURL(), nil)
		logger.Info("sentiment model sidecar enabled",
			logging.String("url", cfg.Classification.ModelServiceURL))
	}

	cls, err := classifier.New(lex, model, classifier.Config{
		TruncationLength:         cfg.Classification.TruncationLength,
		ModelConfidenceThreshold: cfg.Classification.ModelConfidenceThreshold,
		Lightweight:              cfg.Classification.Lightweight,
	}, logger, tp)
	if err != nil {
		return nil, fmt.Errorf("create classifier: %w", err)
	}

	var limiter *processor.RateLimiter
	if model != nil {
		limiter = processor.NewRateLimiter(
			cfg.Classification.ModelRPS, cfg.Classification.ModelBurst, logger)
	}
	batchProcessor := processor.NewBatchProcessor(cls, limiter, cfg.Service.Concurrency, logger)
	logger.Info("batch processor initialized",
		logging.Int("concurrency", batchProcessor.Concurrency()))

	cache := setupCache(cfg, logger)

	handler := api.NewHandler(cls, batchProcessor, cache, tracker, tp, cfg, logger)
	server := api.NewServer(handler, tp, cfg.Service.Port, cfg.Service.Debug, logger)

	return &HTTPComponents{
		Classifier: cls,
		Handler:    handler,
		Server:     server,
		Telemetry:  tp,
	}, nil
}

// setupCache builds the configured result cache backend, or nil when
// caching is disabled.
func setupCache(cfg *config.Config, logger logging.Logger) resultcache.Cache {
	switch cfg.Cache.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisURL,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		logger.Info("result cache enabled",
			logging.String("backend", "redis"),
			logging.String("addr", cfg.Cache.RedisURL))
		return resultcache.NewRedisCache(client, cfg.Cache.TTL, logger)
	case "memory":
		logger.Info("result cache enabled", logging.String("backend", "memory"))
		return resultcache.NewMemoryCache(cfg.Cache.TTL)
	default:
		logger.Info("result cache disabled")
		return nil
	}
}

// HTTPShutdownTimeout returns the timeout for graceful HTTP shutdown.
func HTTPShutdownTimeout() time.Duration {
	return defaultHTTPTimeout
}
