// Package api exposes the sentiment classification pipeline over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feedbacklens/classifier/internal/classifier"
	"github.com/feedbacklens/classifier/internal/config"
	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/logging"
	"github.com/feedbacklens/classifier/internal/mlhealth"
	"github.com/feedbacklens/classifier/internal/processor"
	"github.com/feedbacklens/classifier/internal/resultcache"
	"github.com/feedbacklens/classifier/internal/telemetry"
)

// Handler handles HTTP requests for the classifier API.
type Handler struct {
	classifier     *classifier.Classifier
	batchProcessor *processor.BatchProcessor
	cache          resultcache.Cache
	mlTracker      *mlhealth.Tracker
	telemetry      *telemetry.Provider
	cfg            *config.Config
	logger         logging.Logger
}

// NewHandler creates a new API handler. cache and mlTracker may be nil
// when the corresponding features are disabled.
func NewHandler(
	cls *classifier.Classifier,
	batchProcessor *processor.BatchProcessor,
	cache resultcache.Cache,
	mlTracker *mlhealth.Tracker,
	tp *telemetry.Provider,
	cfg *config.Config,
	logger logging.Logger,
) *Handler {
	return &Handler{
		classifier:     cls,
		batchProcessor: batchProcessor,
		cache:          cache,
		mlTracker:      mlTracker,
		telemetry:      tp,
		cfg:            cfg,
		logger:         logger,
	}
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid classification request", logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	studentDomain := domain.NormalizeStudentDomain(req.Domain)
	ctx := c.Request.Context()
	start := time.Now()

	var result *domain.ClassificationResult
	cacheKey := resultcache.Key(req.FeedbackText)
	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, cacheKey); ok {
			h.telemetry.RecordCacheHit(ctx)
			result = cached
		} else {
			h.telemetry.RecordCacheMiss(ctx)
		}
	}

	if result == nil {
		result = h.classifier.Classify(ctx, req.FeedbackText)
		if h.cache != nil {
			h.cache.Set(ctx, cacheKey, result)
		}
	}

	c.JSON(http.StatusOK, toClassifiedFeedback(req.FeedbackText, studentDomain, result, time.Since(start)))
}

// ClassifyBatch handles POST /api/v1/classify/batch.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch classification request", logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Items) > h.cfg.Service.BatchLimit {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "batch size exceeds limit",
		})
		return
	}

	h.telemetry.RecordBatchSize(len(req.Items))

	items := make([]processor.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = processor.Item{
			FeedbackText: it.FeedbackText,
			Domain:       domain.NormalizeStudentDomain(it.Domain),
		}
	}

	start := time.Now()
	results := h.batchProcessor.Process(c.Request.Context(), items)

	out := make([]*domain.ClassifiedFeedback, 0, len(results))
	for _, r := range results {
		if r == nil {
			// Context cancelled before this slot ran.
			continue
		}
		out = append(out, toClassifiedFeedback(r.Item.FeedbackText, r.Item.Domain, r.Result, 0))
	}

	c.JSON(http.StatusOK, BatchClassifyResponse{
		Results:          out,
		Total:            len(items),
		Classified:       len(out),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// LexiconInfo handles GET /api/v1/lexicon. It exposes marker set sizes
// for diagnostics; the markers themselves are build-time constants.
func (h *Handler) LexiconInfo(c *gin.Context) {
	sets := h.classifier.Lexicon().Sets()
	info := make([]LexiconSetInfo, len(sets))
	for i, s := range sets {
		info[i] = LexiconSetInfo{Name: s.Name(), Size: s.Size()}
	}
	c.JSON(http.StatusOK, LexiconResponse{Sets: info})
}

// ListDomains handles GET /api/v1/domains.
func (h *Handler) ListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, DomainsResponse{
		Domains: domain.StudentDomains(),
		Default: domain.DefaultStudentDomain,
	})
}

// GetMLHealth handles GET /api/v1/metrics/ml-health. It polls the model
// sidecar and returns the fresh snapshot.
func (h *Handler) GetMLHealth(c *gin.Context) {
	if h.mlTracker == nil {
		c.JSON(http.StatusOK, MLHealthResponse{
			Enabled: false,
			Mode:    "keyword_only",
		})
		return
	}

	status := h.mlTracker.Check(c.Request.Context())
	c.JSON(http.StatusOK, MLHealthResponse{
		Enabled: true,
		Mode:    "hybrid",
		Status:  &status,
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.cfg.Service.Name,
		"version": h.cfg.Service.Version,
	})
}

// ReadyCheck handles GET /ready. The pipeline degrades to keyword-only
// when the model sidecar is down, so readiness never depends on it.
func (h *Handler) ReadyCheck(c *gin.Context) {
	modelStatus := "disabled"
	if h.classifier.ModelAvailable() {
		modelStatus = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{
			"classifier": "ok",
			"model":      modelStatus,
		},
	})
}

func toClassifiedFeedback(text, studentDomain string, result *domain.ClassificationResult, elapsed time.Duration) *domain.ClassifiedFeedback {
	return &domain.ClassifiedFeedback{
		ClassificationID: uuid.New().String(),
		FeedbackText:     text,
		Domain:           studentDomain,
		Label:            result.Label,
		Confidence:       result.Confidence,
		Method:           result.Method,
		Detail:           result.Detail,
		ProcessingTimeMs: elapsed.Milliseconds(),
		ClassifiedAt:     time.Now().UTC(),
	}
}
