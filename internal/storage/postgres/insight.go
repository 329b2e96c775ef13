package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"campaign_pulse/internal/domain"
)

type InsightStore struct {
	db *sqlx.DB
}

func NewInsightStore(db *sqlx.DB) *InsightStore {
	return &InsightStore{db: db}
}

func (s *InsightStore) Insert(ctx context.Context, insight *domain.Insight) error {
	query := `
		INSERT INTO strategic_insights (
			id, scraping_run_id, candidate_id, title, description,
			supporting_data, priority, llm_model, input_summary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		insight.ID,
		insight.ScrapingRunID,
		insight.CandidateID,
		insight.Title,
		insight.Description,
		insight.SupportingData,
		insight.Priority,
		insight.LLMModel,
		insight.InputSummary,
	)
	return err
}

// List returns the most recent insights, newest first.
func (s *InsightStore) List(ctx context.Context, limit int) ([]domain.Insight, error) {
	query := `
		SELECT id, scraping_run_id, candidate_id, title, description,
			supporting_data, priority, llm_model, input_summary, created_at
		FROM strategic_insights
		ORDER BY created_at DESC
		LIMIT $1`

	var insights []domain.Insight
	if err := s.db.SelectContext(ctx, &insights, query, limit); err != nil {
		return nil, err
	}

	return insights, nil
}
