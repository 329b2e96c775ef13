package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunPartial   RunStatus = "partial"
	RunFailed    RunStatus = "failed"
)

// Trigger values recorded on a run.
const (
	TriggerScheduler = "scheduler"
	TriggerManual    = "manual"
)

// RunError records one failure inside a pipeline run without aborting it.
type RunError struct {
	Candidate string    `json:"candidate,omitempty"`
	Phase     string    `json:"phase"`
	PostID    string    `json:"post_id,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RunErrorList stores run errors as a jsonb column.
type RunErrorList []RunError

func (l RunErrorList) Value() (driver.Value, error) {
	if l == nil {
		l = RunErrorList{}
	}
	return json.Marshal(l)
}

func (l *RunErrorList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = RunErrorList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into RunErrorList", src)
}

type ScrapingRun struct {
	ID              uuid.UUID    `db:"id" json:"id"`
	StartedAt       time.Time    `db:"started_at" json:"started_at"`
	CompletedAt     *time.Time   `db:"completed_at" json:"completed_at,omitempty"`
	Status          RunStatus    `db:"status" json:"status"`
	TriggeredBy     string       `db:"triggered_by" json:"triggered_by"`
	PostsScraped    int          `db:"posts_scraped" json:"posts_scraped"`
	CommentsScraped int          `db:"comments_scraped" json:"comments_scraped"`
	DurationSeconds float64      `db:"duration_seconds" json:"duration_seconds"`
	Errors          RunErrorList `db:"errors" json:"errors"`
}

// IngestStats counts the outcome of one ingestion pass.
type IngestStats struct {
	Created int
	Updated int
	Failed  int
}

// SentimentStats counts the outcome of one deterministic scoring batch.
type SentimentStats struct {
	Analyzed int
	Skipped  int
	Failed   int
}

// FallbackStats counts the outcome of one probabilistic reclassification pass.
type FallbackStats struct {
	Calls    int
	Upgraded int
	Retained int
	Failed   int
}

// ThemeStats counts the outcome of one theme classification batch.
type ThemeStats struct {
	Processed int
	Tagged    int
	Enriched  int
	Failed    int
}

// RunEvent is published to the message broker when a run reaches a terminal
// status.
type RunEvent struct {
	RunID           uuid.UUID `json:"run_id"`
	Status          RunStatus `json:"status"`
	TriggeredBy     string    `json:"triggered_by"`
	PostsScraped    int       `json:"posts_scraped"`
	CommentsScraped int       `json:"comments_scraped"`
	ErrorCount      int       `json:"error_count"`
	DurationSeconds float64   `json:"duration_seconds"`
	CompletedAt     time.Time `json:"completed_at"`
}

// PipelineStatus reports whether a run is in flight plus the last terminal run.
type PipelineStatus struct {
	Running       bool         `json:"running"`
	CurrentRun    *ScrapingRun `json:"current_run,omitempty"`
	LastRun       *ScrapingRun `json:"last_run,omitempty"`
	LastSuccessAt *time.Time   `json:"last_success_at,omitempty"`
}
