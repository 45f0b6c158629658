package domain

import "time"

// Sentiment labels produced by the classification pipeline.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Raw labels emitted by the binary sentiment model. The model has no
// native Neutral class.
const (
	RawLabelPositive = "POSITIVE"
	RawLabelNegative = "NEGATIVE"
)

// Method identifiers for the pipeline stage that produced a verdict.
// Exactly one of these appears on every ClassificationResult.
const (
	MethodEmptyText             = "empty_text"
	MethodBalancedStructure     = "balanced_structure_detected"
	MethodSuccessWithLimitation = "success_with_limitation"
	MethodKeywordStrongOverride = "keyword_strong_override"
	MethodTransformerPrimary    = "transformer_primary"
	MethodKeywordBackupStrong   = "keyword_backup_strong"
	MethodKeywordBackupNeutral  = "keyword_backup_neutral"
	MethodDefaultNeutral        = "default_neutral"
)

// ClassificationResult is the verdict for a single piece of feedback.
// It is produced fresh per call and never retained by the pipeline.
type ClassificationResult struct {
	Label      string         `json:"label"`      // Positive, Negative, or Neutral
	Confidence float64        `json:"confidence"` // 0.0-1.0
	Method     string         `json:"method"`     // pipeline stage that decided
	Detail     map[string]any `json:"detail"`     // stage-specific diagnostics
}

// ClassifiedFeedback wraps a ClassificationResult with request metadata
// for the HTTP layer.
type ClassifiedFeedback struct {
	ClassificationID string         `json:"classification_id"`
	FeedbackText     string         `json:"feedback_text"`
	Domain           string         `json:"domain"`
	Label            string         `json:"label"`
	Confidence       float64        `json:"confidence"`
	Method           string         `json:"method"`
	Detail           map[string]any `json:"detail,omitempty"`
	ProcessingTimeMs int64          `json:"processing_time_ms"`
	ClassifiedAt     time.Time      `json:"classified_at"`
}

// IsValidLabel reports whether s is one of the three sentiment labels.
func IsValidLabel(s string) bool {
	return s == LabelPositive || s == LabelNegative || s == LabelNeutral
}
