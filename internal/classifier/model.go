package classifier

import (
	"context"

	"github.com/feedbacklens/classifier/internal/logging"
)

// ModelVerdict is the normalized output of the binary sentiment model:
// a raw POSITIVE/NEGATIVE label and the model's own confidence in [0,1].
type ModelVerdict struct {
	Label        string
	Score        float64
	ModelVersion string
}

// Model is the statistical classifier capability. Implementations must
// be safe for concurrent inference. The capability is injected at
// construction; availability is a flag resolved once, not discovered by
// fault interception on the hot path.
type Model interface {
	Infer(ctx context.Context, text string) (*ModelVerdict, error)
}

// queryModel passes the truncated text to the model and normalizes any
// fault to "no verdict". Inference errors degrade to the keyword backup
// and are never propagated to the caller.
func (c *Classifier) queryModel(ctx context.Context, text string) *ModelVerdict {
	input := truncateRunes(text, c.cfg.TruncationLength)

	verdict, err := c.model.Infer(ctx, input)
	if err != nil {
		c.logger.Warn("statistical model inference failed, using keyword backup",
			logging.String("error_type", classifyErrorType(err.Error())),
			logging.Error(err))
		if c.telemetry != nil {
			c.telemetry.RecordModelFailure(ctx, classifyErrorType(err.Error()))
		}
		return nil
	}
	if verdict == nil {
		c.logger.Error("statistical model returned nil verdict without error")
		return nil
	}

	if c.telemetry != nil {
		c.telemetry.RecordModelCall(ctx)
	}
	return verdict
}

// truncateRunes caps text at max characters. Counting is by rune so a
// multibyte character is never split.
func truncateRunes(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
