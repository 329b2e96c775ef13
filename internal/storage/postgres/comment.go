package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campaign_pulse/internal/domain"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Upsert inserts the comment or, when the external id is already known,
// refreshes its engagement counters and scrape metadata. The text, author and
// created_at of the stored row are kept, as are its id and scraping_run_id, so
// existing sentiment scores and theme tags stay attached.
func (s *CommentStore) Upsert(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (
			id, post_id, scraping_run_id, external_id, text, author_username,
			like_count, reply_count, commented_at, raw_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (external_id) DO UPDATE SET
			like_count = EXCLUDED.like_count,
			reply_count = EXCLUDED.reply_count,
			scraped_at = now(),
			raw_data = EXCLUDED.raw_data
		RETURNING id`

	return s.db.QueryRowContext(ctx, query,
		comment.ID,
		comment.PostID,
		comment.ScrapingRunID,
		comment.ExternalID,
		comment.Text,
		comment.AuthorUsername,
		comment.LikeCount,
		comment.ReplyCount,
		comment.CommentedAt,
		comment.RawData,
	).Scan(&comment.ID)
}

func (s *CommentStore) ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]bool, error) {
	if len(externalIDs) == 0 {
		return map[string]bool{}, nil
	}

	query := `SELECT external_id FROM comments WHERE external_id = ANY($1)`

	var existing []string
	if err := s.db.SelectContext(ctx, &existing, query, pq.Array(externalIDs)); err != nil {
		return nil, err
	}

	result := make(map[string]bool, len(existing))
	for _, id := range existing {
		result[id] = true
	}

	return result, nil
}
