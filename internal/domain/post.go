package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaCarousel MediaType = "carousel"
	MediaUnknown  MediaType = "unknown"
)

type Post struct {
	ID             uuid.UUID      `db:"id"`
	CandidateID    uuid.UUID      `db:"candidate_id"`
	ScrapingRunID  uuid.UUID      `db:"scraping_run_id"`
	ExternalID     string         `db:"external_id"`
	URL            string         `db:"url"`
	Shortcode      *string        `db:"shortcode"`
	Caption        *string        `db:"caption"`
	LikeCount      int            `db:"like_count"`
	CommentCount   int            `db:"comment_count"`
	MediaType      MediaType      `db:"media_type"`
	IsSponsored    bool           `db:"is_sponsored"`
	VideoViewCount *int64         `db:"video_view_count"`
	PostedAt       *time.Time     `db:"posted_at"`
	ScrapedAt      time.Time      `db:"scraped_at"`
	RawData        types.JSONText `db:"raw_data"`
	CreatedAt      time.Time      `db:"created_at"`
}
