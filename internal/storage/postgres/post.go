package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campaign_pulse/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// Upsert inserts the post or, when the external id is already known, refreshes
// its engagement counters and scrape metadata. The original created_at and
// scraping_run_id are kept so the post stays attributed to the run that first
// saw it. The stored row id is written back to post.ID.
func (s *PostStore) Upsert(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (
			id, candidate_id, scraping_run_id, external_id, url, shortcode,
			caption, like_count, comment_count, media_type, is_sponsored,
			video_view_count, posted_at, raw_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (external_id) DO UPDATE SET
			url = EXCLUDED.url,
			shortcode = EXCLUDED.shortcode,
			caption = EXCLUDED.caption,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			media_type = EXCLUDED.media_type,
			is_sponsored = EXCLUDED.is_sponsored,
			video_view_count = EXCLUDED.video_view_count,
			posted_at = EXCLUDED.posted_at,
			scraped_at = now(),
			raw_data = EXCLUDED.raw_data
		RETURNING id`

	return s.db.QueryRowContext(ctx, query,
		post.ID,
		post.CandidateID,
		post.ScrapingRunID,
		post.ExternalID,
		post.URL,
		post.Shortcode,
		post.Caption,
		post.LikeCount,
		post.CommentCount,
		post.MediaType,
		post.IsSponsored,
		post.VideoViewCount,
		post.PostedAt,
		post.RawData,
	).Scan(&post.ID)
}

func (s *PostStore) ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]bool, error) {
	if len(externalIDs) == 0 {
		return map[string]bool{}, nil
	}

	query := `SELECT external_id FROM posts WHERE external_id = ANY($1)`

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

// ListNeedingComments returns posts of active candidates whose comments have
// not been scraped since the cutoff, newest first.
func (s *PostStore) ListNeedingComments(ctx context.Context, cutoff time.Time) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.candidate_id, p.scraping_run_id, p.external_id, p.url,
			p.shortcode, p.caption, p.like_count, p.comment_count, p.media_type,
			p.is_sponsored, p.video_view_count, p.posted_at, p.scraped_at,
			p.raw_data, p.created_at
		FROM posts p
		JOIN candidates c ON c.id = p.candidate_id
		WHERE c.is_active
			AND NOT EXISTS (
				SELECT 1 FROM comments cm
				WHERE cm.post_id = p.id AND cm.scraped_at > $1
			)
		ORDER BY p.posted_at DESC NULLS LAST`

	var posts []domain.Post
	if err := s.db.SelectContext(ctx, &posts, query, cutoff); err != nil {
		return nil, err
	}

	return posts, nil
}
