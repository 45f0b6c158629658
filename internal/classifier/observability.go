package classifier

import (
	"strings"
	"time"

	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/logging"
)

const textExcerptWordLimit = 10

// truncateWords returns the first n words of s, appending "..." if truncated.
func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ") + "..."
}

// classifyErrorType categorizes a model inference error message for
// dashboard filtering.
func classifyErrorType(errMsg string) string {
	lower := strings.ToLower(errMsg)
	switch {
	case strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout"):
		return "timeout"
	case strings.Contains(lower, "returned 5"):
		return "5xx"
	case strings.Contains(lower, "returned 4"):
		return "4xx"
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "dial tcp") ||
		strings.Contains(lower, "no such host"):
		return "connection"
	case strings.Contains(lower, "decode") || strings.Contains(lower, "unmarshal") ||
		strings.Contains(lower, "eof"):
		return "decode"
	default:
		return "unknown"
	}
}

// logVerdict emits a structured Info log for a completed classification.
func (c *Classifier) logVerdict(text string, result *domain.ClassificationResult, duration time.Duration) {
	c.logger.Info("classification complete",
		logging.String("label", result.Label),
		logging.Float64("confidence", result.Confidence),
		logging.String("method", result.Method),
		logging.String("text_excerpt", truncateWords(text, textExcerptWordLimit)),
		logging.Int64("duration_ms", duration.Milliseconds()),
	)
}
