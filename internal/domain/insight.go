package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type InsightPriority string

const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

// Suggestion is one recommendation parsed from a provider response.
type Suggestion struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	SupportingData string          `json:"supporting_data"`
	Priority       InsightPriority `json:"priority"`
}

// Insight is a persisted suggestion together with the snapshot it was
// generated from.
type Insight struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	ScrapingRunID  *uuid.UUID      `db:"scraping_run_id" json:"scraping_run_id,omitempty"`
	CandidateID    *uuid.UUID      `db:"candidate_id" json:"candidate_id,omitempty"`
	Title          string          `db:"title" json:"title"`
	Description    string          `db:"description" json:"description"`
	SupportingData *string         `db:"supporting_data" json:"supporting_data,omitempty"`
	Priority       InsightPriority `db:"priority" json:"priority"`
	LLMModel       *string         `db:"llm_model" json:"llm_model,omitempty"`
	InputSummary   types.JSONText  `db:"input_summary" json:"-"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// SuggestionReport is the response of an on-demand suggestion request.
type SuggestionReport struct {
	Suggestions []Suggestion `json:"suggestions"`
	GeneratedAt time.Time    `json:"generated_at"`
}
