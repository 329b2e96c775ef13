package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"campaign_pulse/internal/domain"
)

const (
	maxSuggestions      = 5
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Service produces strategic suggestions on demand: it condenses the current
// analytics into a snapshot, hands it to the language model, and persists
// whatever comes back together with the snapshot it was generated from.
type Service struct {
	snapshots SnapshotSource
	generator Generator
	insights  InsightStore
	runs      RunSource
	logger    *slog.Logger
}

func New(snapshots SnapshotSource, generator Generator, insights InsightStore, runs RunSource, logger *slog.Logger) *Service {
	return &Service{
		snapshots: snapshots,
		generator: generator,
		insights:  insights,
		runs:      runs,
		logger:    logger.With("component", "suggest"),
	}
}

func (s *Service) Generate(ctx context.Context, candidateID *uuid.UUID) (*domain.SuggestionReport, error) {
	snapshot, err := s.snapshots.Snapshot(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("build analytics snapshot: %w", err)
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	suggestions, err := s.generator.GenerateSuggestions(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("provider returned no suggestions")
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	runID := s.latestRunID(ctx)
	model := s.generator.Model()

	for _, suggestion := range suggestions {
		insight := &domain.Insight{
			ID:            uuid.New(),
			ScrapingRunID: runID,
			CandidateID:   candidateID,
			Title:         suggestion.Title,
			Description:   suggestion.Description,
			Priority:      suggestion.Priority,
			LLMModel:      &model,
			InputSummary:  types.JSONText(payload),
		}
		if suggestion.SupportingData != "" {
			insight.SupportingData = &suggestion.SupportingData
		}

		if err := s.insights.Insert(ctx, insight); err != nil {
			return nil, fmt.Errorf("store insight: %w", err)
		}
	}

	s.logger.Info("suggestions generated",
		"count", len(suggestions),
		"model", model,
		"scoped", candidateID != nil,
	)

	return &domain.SuggestionReport{
		Suggestions: suggestions,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]domain.Insight, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	insights, err := s.insights.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}

	return insights, nil
}

// latestRunID links new insights to the data they were computed from. A
// missing or failing lookup degrades to an unlinked insight.
func (s *Service) latestRunID(ctx context.Context) *uuid.UUID {
	run, err := s.runs.LatestFinished(ctx)
	if err != nil {
		s.logger.Warn("latest run lookup failed", "error", err)
		return nil
	}
	if run == nil {
		return nil
	}

	return &run.ID
}
