package domain

import (
	"time"

	"github.com/google/uuid"
)

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// SentimentScore holds the analysis result for a single comment. The vader
// fields are always present; the llm fields are filled at most once, when the
// fallback pass reclassifies an ambiguous comment.
type SentimentScore struct {
	ID            uuid.UUID      `db:"id"`
	CommentID     uuid.UUID      `db:"comment_id"`
	Compound      float64        `db:"compound"`
	Positive      float64        `db:"positive"`
	Negative      float64        `db:"negative"`
	Neutral       float64        `db:"neutral"`
	VaderLabel    SentimentLabel `db:"vader_label"`
	LLMLabel      *string        `db:"llm_label"`
	LLMConfidence *float64       `db:"llm_confidence"`
	LLMModel      *string        `db:"llm_model"`
	FinalLabel    SentimentLabel `db:"final_label"`
	AnalyzedAt    time.Time      `db:"analyzed_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// Classification is a probabilistic label returned by an external provider.
type Classification struct {
	Label      string
	Confidence float64
	Model      string
}

// AmbiguousComment is a comment whose deterministic score fell inside the
// neutral window and which has not been sent to the fallback provider yet.
type AmbiguousComment struct {
	CommentID  uuid.UUID      `db:"comment_id"`
	Text       string         `db:"text"`
	VaderLabel SentimentLabel `db:"vader_label"`
}
