package domain

import (
	"time"

	"github.com/google/uuid"
)

// SentimentDistribution counts final labels within a scope.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

type CandidateOverview struct {
	CandidateID      uuid.UUID             `json:"candidate_id"`
	Username         string                `json:"username"`
	DisplayName      *string               `json:"display_name,omitempty"`
	TotalPosts       int                   `json:"total_posts"`
	TotalComments    int                   `json:"total_comments"`
	AverageSentiment float64               `json:"average_sentiment"`
	Distribution     SentimentDistribution `json:"sentiment_distribution"`
	TotalEngagement  int                   `json:"total_engagement"`
}

type Overview struct {
	Candidates            []CandidateOverview `json:"candidates"`
	TotalCommentsAnalyzed int                 `json:"total_comments_analyzed"`
	LastScrape            *time.Time          `json:"last_scrape,omitempty"`
}

// TimelinePoint is one post with its aggregated comment sentiment, ordered by
// publish time.
type TimelinePoint struct {
	PostID            uuid.UUID  `db:"post_id" json:"post_id"`
	CandidateID       uuid.UUID  `db:"candidate_id" json:"candidate_id"`
	CandidateUsername string     `db:"candidate_username" json:"candidate_username"`
	PostURL           string     `db:"post_url" json:"post_url"`
	Caption           *string    `db:"caption" json:"caption,omitempty"`
	PostedAt          *time.Time `db:"posted_at" json:"posted_at,omitempty"`
	AverageSentiment  float64    `db:"avg_sentiment" json:"average_sentiment"`
	CommentCount      int        `db:"comment_count" json:"comment_count"`
}

// ThemeSlice is one theme's share of the tagged comments in scope, with the
// per-candidate split of its count.
type ThemeSlice struct {
	Theme       Theme                 `json:"theme"`
	Count       int                   `json:"count"`
	Percentage  float64               `json:"percentage"`
	ByCandidate []CandidateThemeCount `json:"by_candidate,omitempty"`
}

type ThemeDistribution struct {
	Themes      []ThemeSlice `json:"themes"`
	TotalTagged int          `json:"total_tagged"`
}

type ThemeCount struct {
	Theme Theme `db:"theme" json:"theme"`
	Count int   `db:"count" json:"count"`
}

// CandidateThemeCount attributes one theme tally to a candidate. The theme is
// carried for grouping and omitted from JSON, where the parent slice names it.
type CandidateThemeCount struct {
	CandidateID uuid.UUID `db:"candidate_id" json:"candidate_id"`
	Username    string    `db:"username" json:"username"`
	Theme       Theme     `db:"theme" json:"-"`
	Count       int       `db:"count" json:"count"`
}

// RankingQuery selects and orders posts for the ranking endpoint.
type RankingQuery struct {
	CandidateID *uuid.UUID
	SortBy      string
	Order       string
	Limit       int
	Offset      int
}

type PostRanking struct {
	PostID            uuid.UUID  `db:"post_id" json:"post_id"`
	CandidateUsername string     `db:"candidate_username" json:"candidate_username"`
	URL               string     `db:"url" json:"url"`
	Caption           *string    `db:"caption" json:"caption,omitempty"`
	PostedAt          *time.Time `db:"posted_at" json:"posted_at,omitempty"`
	LikeCount         int        `db:"like_count" json:"like_count"`
	CommentCount      int        `db:"comment_count" json:"comment_count"`
	PositiveRatio     float64    `db:"positive_ratio" json:"positive_ratio"`
	NegativeRatio     float64    `db:"negative_ratio" json:"negative_ratio"`
	AverageSentiment  float64    `db:"avg_sentiment" json:"average_sentiment"`
}

type RankingPage struct {
	Posts  []PostRanking `json:"posts"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// Trend compares mean sentiment across the two most recent post windows.
type Trend struct {
	Direction   TrendDirection `json:"direction"`
	RecentAvg   float64        `json:"recent_avg"`
	PreviousAvg float64        `json:"previous_avg"`
	Delta       float64        `json:"delta"`
}

type CandidateComparison struct {
	CandidateOverview
	TopThemes []ThemeCount `json:"top_themes"`
	Trend     Trend        `json:"trend"`
}

type Comparison struct {
	Candidates  []CandidateComparison `json:"candidates"`
	GeneratedAt time.Time             `json:"generated_at"`
}

type WordEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type WordCloud struct {
	Words []WordEntry `json:"words"`
	Total int         `json:"total"`
}

// AnalyticsSnapshot is the condensed analytics state handed to the suggestion
// provider.
type AnalyticsSnapshot struct {
	Candidates            []CandidateOverview     `json:"candidates"`
	TopThemes             map[string][]ThemeCount `json:"top_themes"`
	TotalCommentsAnalyzed int                     `json:"total_comments_analyzed"`
	LastScrape            *time.Time              `json:"last_scrape,omitempty"`
}
