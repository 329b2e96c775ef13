package classifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

// ThemeClassifier assigns themes to comments: a keyword pass over every
// untagged comment, then a probabilistic enrichment pass over comments the
// keyword pass could only file under the catch-all theme.
type ThemeClassifier struct {
	provider  Provider
	store     ThemeStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewThemeClassifier(provider Provider, store ThemeStore, txManager TransactionManager, logger *slog.Logger) *ThemeClassifier {
	return &ThemeClassifier{
		provider:  provider,
		store:     store,
		txManager: txManager,
		logger:    logger,
	}
}

// ClassifyBatch tags every comment without theme rows, then enriches the
// catch-all ones. A failure on one comment never blocks the rest.
func (c *ThemeClassifier) ClassifyBatch(ctx context.Context) (domain.ThemeStats, error) {
	var stats domain.ThemeStats

	comments, err := c.store.ListUntagged(ctx)
	if err != nil {
		return stats, fmt.Errorf("list untagged comments: %w", err)
	}

	for _, comment := range comments {
		tags := MatchThemes(comment.Text)
		for i := range tags {
			tags[i].ID = uuid.New()
			tags[i].CommentID = comment.ID
		}

		err := c.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return c.store.InsertTags(txCtx, tags)
		})
		if err != nil {
			stats.Failed++
			c.logger.Warn("theme tagging failed", "comment_id", comment.ID, "error", err)
			continue
		}

		stats.Processed++
		stats.Tagged += len(tags)
	}

	enriched, err := c.enrich(ctx, &stats)
	if err != nil {
		return stats, err
	}
	stats.Enriched = enriched

	c.logger.Info("theme batch finished",
		"processed", stats.Processed,
		"tagged", stats.Tagged,
		"enriched", stats.Enriched,
		"failed", stats.Failed,
	)

	return stats, nil
}

// enrich asks the provider for a theme on comments that only carry the
// catch-all tag. Provider failures and unusable answers are skipped.
func (c *ThemeClassifier) enrich(ctx context.Context, stats *domain.ThemeStats) (int, error) {
	if c.provider == nil {
		return 0, nil
	}

	comments, err := c.store.ListEnrichable(ctx)
	if err != nil {
		return 0, fmt.Errorf("list enrichable comments: %w", err)
	}

	enriched := 0
	for _, comment := range comments {
		result, err := c.provider.SuggestTheme(ctx, comment.Text)
		if err != nil {
			c.logger.Warn("theme suggestion failed", "comment_id", comment.ID, "error", err)
			continue
		}
		if result.Label == string(domain.ThemeOutros) {
			continue
		}

		tag := domain.ThemeTag{
			ID:         uuid.New(),
			CommentID:  comment.ID,
			Theme:      domain.Theme(result.Label),
			Confidence: result.Confidence,
			Method:     domain.MethodProbabilistic,
		}

		if err := c.store.InsertTags(ctx, []domain.ThemeTag{tag}); err != nil {
			stats.Failed++
			c.logger.Warn("theme enrichment insert failed", "comment_id", comment.ID, "error", err)
			continue
		}
		enriched++
	}

	return enriched, nil
}
