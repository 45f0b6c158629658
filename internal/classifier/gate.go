package classifier

import (
	"github.com/feedbacklens/classifier/internal/domain"
)

// Gate confidence and threshold constants.
const (
	// balancedStructureConfidence is returned when a mixed-structure
	// conjunction resolves the text to Neutral.
	balancedStructureConfidence = 0.85
	// successLimitationConfidence is returned for the
	// achievement-plus-limitation pattern.
	successLimitationConfidence = 0.80
	// extremeNegativeGateCount is the number of extreme-negative markers
	// at which the balanced-structure heuristic stands down and lets the
	// statistical model judge the text.
	extremeNegativeGateCount = 2
)

// heuristicGate runs the structural pre-checks on the folded text.
// It returns a terminal Neutral verdict for balanced feedback, or nil
// when the pipeline should continue to the statistical model.
//
// Short texts that juxtapose praise and criticism ("good but struggles
// with X") are systematically mis-scored by both raw keyword counts and
// a binary model, which pick the stronger-worded side. The structural
// check catches that class before any model call.
func (c *Classifier) heuristicGate(folded string) *domain.ClassificationResult {
	if c.lex.MixedStructure.Contains(folded) {
		// Extreme negativity overrides the balanced-text heuristic; the
		// remaining checks still run.
		if c.lex.ExtremeNegative.Count(folded) < extremeNegativeGateCount {
			return &domain.ClassificationResult{
				Label:      domain.LabelNeutral,
				Confidence: balancedStructureConfidence,
				Method:     domain.MethodBalancedStructure,
				Detail: map[string]any{
					"reason": "'but/however' indicates balanced feedback with both strengths and areas for growth",
				},
			}
		}
	}

	if c.lex.Success.Contains(folded) &&
		c.lex.Limitation.Contains(folded) &&
		!c.lex.HardNegative.Contains(folded) {
		return &domain.ClassificationResult{
			Label:      domain.LabelNeutral,
			Confidence: successLimitationConfidence,
			Method:     domain.MethodSuccessWithLimitation,
			Detail: map[string]any{
				"reason": "achievement mentioned with limitation (not criticism) suggests balanced performance",
			},
		}
	}

	return nil
}
