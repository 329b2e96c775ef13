package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campaign_pulse/internal/domain"
)

type SentimentStore struct {
	db *sqlx.DB
}

func NewSentimentStore(db *sqlx.DB) *SentimentStore {
	return &SentimentStore{db: db}
}

// ListUnscored returns comments that have no sentiment score yet, oldest first.
func (s *SentimentStore) ListUnscored(ctx context.Context) ([]domain.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.scraping_run_id, c.external_id, c.text,
			c.author_username, c.like_count, c.reply_count, c.commented_at,
			c.scraped_at, c.raw_data, c.created_at
		FROM comments c
		LEFT JOIN sentiment_scores ss ON ss.comment_id = c.id
		WHERE ss.id IS NULL
		ORDER BY c.created_at`

	var comments []domain.Comment
	if err := s.db.SelectContext(ctx, &comments, query); err != nil {
		return nil, err
	}

	return comments, nil
}

// ListAmbiguous returns scored comments whose compound fell strictly inside
// the (lower, upper) window and which the fallback provider has not labeled.
func (s *SentimentStore) ListAmbiguous(ctx context.Context, lower, upper float64) ([]domain.AmbiguousComment, error) {
	query := `
		SELECT ss.comment_id, c.text, ss.vader_label
		FROM sentiment_scores ss
		JOIN comments c ON c.id = ss.comment_id
		WHERE ss.compound > $1 AND ss.compound < $2
			AND ss.llm_label IS NULL
		ORDER BY ss.analyzed_at`

	var comments []domain.AmbiguousComment
	if err := s.db.SelectContext(ctx, &comments, query, lower, upper); err != nil {
		return nil, err
	}

	return comments, nil
}

// Insert stores the score for a comment. It reports false when the comment is
// already scored, leaving the existing row untouched.
func (s *SentimentStore) Insert(ctx context.Context, score *domain.SentimentScore) (bool, error) {
	query := `
		INSERT INTO sentiment_scores (
			id, comment_id, compound, positive, negative, neutral,
			vader_label, final_label
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (comment_id) DO NOTHING`

	result, err := s.db.ExecContext(ctx, query,
		score.ID,
		score.CommentID,
		score.Compound,
		score.Positive,
		score.Negative,
		score.Neutral,
		score.VaderLabel,
		score.FinalLabel,
	)
	if err != nil {
		return false, err
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return inserted > 0, nil
}

// ApplyFallback records the provider verdict for a comment. The llm_label IS
// NULL guard makes the update a no-op when a concurrent pass got there first,
// reported as false.
func (s *SentimentStore) ApplyFallback(ctx context.Context, commentID uuid.UUID, result domain.Classification, finalLabel domain.SentimentLabel) (bool, error) {
	query := `
		UPDATE sentiment_scores SET
			llm_label = $2,
			llm_confidence = $3,
			llm_model = $4,
			final_label = $5,
			updated_at = now()
		WHERE comment_id = $1 AND llm_label IS NULL`

	res, err := s.db.ExecContext(ctx, query, commentID, result.Label, result.Confidence, result.Model, finalLabel)
	if err != nil {
		return false, err
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return updated > 0, nil
}
