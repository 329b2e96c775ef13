package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05

	fallbackConfidenceThreshold = 0.7
	fallbackMinTextLength       = 20
)

// LabelForScore maps a compound score to a label. Scores at the thresholds
// are not neutral: 0.05 is positive and -0.05 is negative.
func LabelForScore(compound float64) domain.SentimentLabel {
	switch {
	case compound >= positiveThreshold:
		return domain.SentimentPositive
	case compound <= negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// EligibleForFallback reports whether a comment qualifies for probabilistic
// reclassification: a compound score strictly inside the neutral window and
// a text longer than the minimum length, counted in runes.
func EligibleForFallback(compound float64, text string) bool {
	if compound <= negativeThreshold || compound >= positiveThreshold {
		return false
	}
	return utf8.RuneCountInString(text) > fallbackMinTextLength
}

// ResolveFinalLabel decides which label a comment ends up with after the
// fallback call. A successful provider result at or above the confidence
// threshold replaces the deterministic label. A low-confidence result or a
// failed call keeps it.
func ResolveFinalLabel(deterministic domain.SentimentLabel, result *domain.Classification, err error) domain.SentimentLabel {
	if err != nil || result == nil {
		return deterministic
	}
	if result.Confidence >= fallbackConfidenceThreshold {
		return domain.SentimentLabel(result.Label)
	}
	return deterministic
}

// SentimentClassifier runs the two-stage sentiment pipeline: a deterministic
// scoring pass over every unscored comment, and a probabilistic fallback pass
// over the ambiguous ones.
type SentimentClassifier struct {
	scorer   Scorer
	provider Provider
	scores   ScoreStore
	logger   *slog.Logger
}

func NewSentimentClassifier(scorer Scorer, provider Provider, scores ScoreStore, logger *slog.Logger) *SentimentClassifier {
	return &SentimentClassifier{
		scorer:   scorer,
		provider: provider,
		scores:   scores,
		logger:   logger,
	}
}

// AnalyzeBatch scores every comment that has no sentiment row yet. Comments
// scored by an earlier run are skipped, never rescored.
func (c *SentimentClassifier) AnalyzeBatch(ctx context.Context) (domain.SentimentStats, error) {
	var stats domain.SentimentStats

	comments, err := c.scores.ListUnscored(ctx)
	if err != nil {
		return stats, fmt.Errorf("list unscored comments: %w", err)
	}

	for _, comment := range comments {
		sc := c.scorer.Score(comment.Text)
		label := LabelForScore(sc.Compound)

		score := &domain.SentimentScore{
			ID:         uuid.New(),
			CommentID:  comment.ID,
			Compound:   sc.Compound,
			Positive:   sc.Positive,
			Negative:   sc.Negative,
			Neutral:    sc.Neutral,
			VaderLabel: label,
			FinalLabel: label,
		}

		inserted, err := c.scores.Insert(ctx, score)
		if err != nil {
			stats.Failed++
			c.logger.Warn("sentiment insert failed", "comment_id", comment.ID, "error", err)
			continue
		}
		if !inserted {
			stats.Skipped++
			continue
		}
		stats.Analyzed++
	}

	c.logger.Info("sentiment batch finished",
		"analyzed", stats.Analyzed,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)

	return stats, nil
}

// ReclassifyAmbiguous sends eligible ambiguous comments to the provider and
// applies the resolution rule. Provider failures leave the deterministic
// label untouched and never abort the pass. Each comment is sent at most
// once across all runs.
func (c *SentimentClassifier) ReclassifyAmbiguous(ctx context.Context) (domain.FallbackStats, error) {
	var stats domain.FallbackStats

	candidates, err := c.scores.ListAmbiguous(ctx, negativeThreshold, positiveThreshold)
	if err != nil {
		return stats, fmt.Errorf("list ambiguous comments: %w", err)
	}

	for _, cand := range candidates {
		if utf8.RuneCountInString(cand.Text) <= fallbackMinTextLength {
			continue
		}

		result, err := c.provider.ClassifySentiment(ctx, cand.Text)
		final := ResolveFinalLabel(cand.VaderLabel, result, err)
		if err != nil {
			stats.Failed++
			c.logger.Warn("fallback classification failed", "comment_id", cand.CommentID, "error", err)
			continue
		}
		stats.Calls++

		applied, err := c.scores.ApplyFallback(ctx, cand.CommentID, *result, final)
		if err != nil {
			stats.Failed++
			c.logger.Warn("fallback update failed", "comment_id", cand.CommentID, "error", err)
			continue
		}
		if !applied {
			continue
		}

		if result.Confidence >= fallbackConfidenceThreshold {
			stats.Upgraded++
		} else {
			stats.Retained++
		}
	}

	c.logger.Info("fallback pass finished",
		"calls", stats.Calls,
		"upgraded", stats.Upgraded,
		"retained", stats.Retained,
		"failed", stats.Failed,
	)

	return stats, nil
}
