package api

import (
	"github.com/gin-gonic/gin"

	"github.com/feedbacklens/classifier/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(tp.Handler()))

	v1 := router.Group("/api/v1")
	{
		classify := v1.Group("/classify")
		{
			classify.POST("", handler.Classify)            // POST /api/v1/classify
			classify.POST("/batch", handler.ClassifyBatch) // POST /api/v1/classify/batch
		}

		v1.GET("/lexicon", handler.LexiconInfo) // GET /api/v1/lexicon
		v1.GET("/domains", handler.ListDomains) // GET /api/v1/domains

		metrics := v1.Group("/metrics")
		{
			metrics.GET("/ml-health", handler.GetMLHealth) // GET /api/v1/metrics/ml-health
		}
	}
}
