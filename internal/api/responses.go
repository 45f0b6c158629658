package api

import (
	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/mlhealth"
)

// ClassifyRequest is a single feedback classification request.
type ClassifyRequest struct {
	FeedbackText string `json:"feedback_text" binding:"required"`
	Domain       string `json:"domain"`
}

// BatchItem is one feedback text within a batch request. Empty texts are
// accepted; the pipeline classifies them Neutral with zero confidence.
type BatchItem struct {
	FeedbackText string `json:"feedback_text"`
	Domain       string `json:"domain"`
}

// BatchClassifyRequest is a batch classification request.
type BatchClassifyRequest struct {
	Items []BatchItem `json:"items" binding:"required,min=1,max=100"`
}

// BatchClassifyResponse carries batch results in input order.
type BatchClassifyResponse struct {
	Results          []*domain.ClassifiedFeedback `json:"results"`
	Total            int                          `json:"total"`
	Classified       int                          `json:"classified"`
	ProcessingTimeMs int64                        `json:"processing_time_ms"`
}

// LexiconSetInfo describes one marker set.
type LexiconSetInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// LexiconResponse lists the pipeline's marker sets.
type LexiconResponse struct {
	Sets []LexiconSetInfo `json:"sets"`
}

// DomainsResponse lists the recognized student domains.
type DomainsResponse struct {
	Domains []string `json:"domains"`
	Default string   `json:"default"`
}

// MLHealthResponse reports statistical model sidecar health.
type MLHealthResponse struct {
	Enabled bool             `json:"enabled"`
	Mode    string           `json:"mode"` // "hybrid" or "keyword_only"
	Status  *mlhealth.Status `json:"status,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
