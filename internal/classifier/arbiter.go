package classifier

import (
	"context"

	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/logging"
)

// Arbiter threshold constants. Fixed design constants, named so they can
// be tuned without touching control flow.
const (
	// strongOverrideCount is the number of opposing lexicon markers at
	// which keyword evidence supersedes the model verdict.
	strongOverrideCount = 4
	// backupStrongCount is the marker count at which keywords alone
	// decide Positive or Negative when no model verdict is available.
	backupStrongCount = 3
	// backupNeutralCount is the neutral-marker count for the keyword
	// backup Neutral verdict.
	backupNeutralCount = 3
)

// Arbiter confidence constants.
const (
	overrideConfidence       = 0.90
	backupStrongConfidence   = 0.85
	backupNeutralConfidence  = 0.75
	defaultNeutralConfidence = 0.50
)

// keywordCounts holds the distinct-marker counts over the full folded text.
type keywordCounts struct {
	negative int
	positive int
	neutral  int
}

func (c *Classifier) countKeywords(folded string) keywordCounts {
	return keywordCounts{
		negative: c.lex.Negative.Count(folded),
		positive: c.lex.Positive.Count(folded),
		neutral:  c.lex.Neutral.Count(folded),
	}
}

// stageModel queries the statistical model and arbitrates its verdict
// against the lexicon counts. Negative evidence is checked before
// positive: false negatives on at-risk feedback cost more than false
// positives. Returns nil when the model fails or returns an unknown
// label, so the keyword backup can decide.
func (c *Classifier) stageModel(ctx context.Context, text string, counts keywordCounts) *domain.ClassificationResult {
	verdict := c.queryModel(ctx, text)
	if verdict == nil {
		return nil
	}

	switch verdict.Label {
	case domain.RawLabelPositive:
		if counts.negative >= strongOverrideCount {
			return &domain.ClassificationResult{
				Label:      domain.LabelNegative,
				Confidence: overrideConfidence,
				Method:     domain.MethodKeywordStrongOverride,
				Detail: map[string]any{
					"transformer_said": domain.LabelPositive,
					"negative_count":   counts.negative,
					"reason":           "4+ negative keywords override transformer",
				},
			}
		}
		return trustModel(domain.LabelPositive, verdict, counts)

	case domain.RawLabelNegative:
		if counts.positive >= strongOverrideCount {
			return &domain.ClassificationResult{
				Label:      domain.LabelPositive,
				Confidence: overrideConfidence,
				Method:     domain.MethodKeywordStrongOverride,
				Detail: map[string]any{
					"transformer_said": domain.LabelNegative,
					"positive_count":   counts.positive,
					"reason":           "4+ positive keywords override transformer",
				},
			}
		}
		return trustModel(domain.LabelNegative, verdict, counts)

	default:
		c.logger.Warn("statistical model returned unknown label, using keyword backup",
			logging.String("raw_label", verdict.Label))
		return nil
	}
}

// trustModel returns the model verdict verbatim. The model's own score
// is used unmodified; ModelConfidenceThreshold does not gate this branch.
func trustModel(label string, verdict *ModelVerdict, counts keywordCounts) *domain.ClassificationResult {
	return &domain.ClassificationResult{
		Label:      label,
		Confidence: verdict.Score,
		Method:     domain.MethodTransformerPrimary,
		Detail: map[string]any{
			"model_confidence": verdict.Score,
			"negative_count":   counts.negative,
			"positive_count":   counts.positive,
		},
	}
}

// stageKeywordBackup decides from lexicon counts alone. The final
// default-neutral verdict is always defined and never fails.
func (c *Classifier) stageKeywordBackup(counts keywordCounts) *domain.ClassificationResult {
	switch {
	case counts.negative >= backupStrongCount:
		return &domain.ClassificationResult{
			Label:      domain.LabelNegative,
			Confidence: backupStrongConfidence,
			Method:     domain.MethodKeywordBackupStrong,
			Detail: map[string]any{
				"negative_count": counts.negative,
				"positive_count": counts.positive,
				"reason":         "no model verdict, using keywords",
			},
		}
	case counts.positive >= backupStrongCount:
		return &domain.ClassificationResult{
			Label:      domain.LabelPositive,
			Confidence: backupStrongConfidence,
			Method:     domain.MethodKeywordBackupStrong,
			Detail: map[string]any{
				"positive_count": counts.positive,
				"negative_count": counts.negative,
				"reason":         "no model verdict, using keywords",
			},
		}
	case counts.neutral >= backupNeutralCount:
		return &domain.ClassificationResult{
			Label:      domain.LabelNeutral,
			Confidence: backupNeutralConfidence,
			Method:     domain.MethodKeywordBackupNeutral,
			Detail: map[string]any{
				"neutral_count": counts.neutral,
			},
		}
	default:
		return &domain.ClassificationResult{
			Label:      domain.LabelNeutral,
			Confidence: defaultNeutralConfidence,
			Method:     domain.MethodDefaultNeutral,
			Detail:     map[string]any{},
		}
	}
}
