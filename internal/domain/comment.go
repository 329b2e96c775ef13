package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type Comment struct {
	ID             uuid.UUID      `db:"id"`
	PostID         uuid.UUID      `db:"post_id"`
	ScrapingRunID  uuid.UUID      `db:"scraping_run_id"`
	ExternalID     string         `db:"external_id"`
	Text           string         `db:"text"`
	AuthorUsername *string        `db:"author_username"`
	LikeCount      int            `db:"like_count"`
	ReplyCount     int            `db:"reply_count"`
	CommentedAt    *time.Time     `db:"commented_at"`
	ScrapedAt      time.Time      `db:"scraped_at"`
	RawData        types.JSONText `db:"raw_data"`
	CreatedAt      time.Time      `db:"created_at"`
}
