package server

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

type PipelineService interface {
	Trigger(ctx context.Context, trigger string) (*domain.ScrapingRun, error)
	Status(ctx context.Context) (*domain.PipelineStatus, error)
}

type AnalyticsService interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	Timeline(ctx context.Context, candidateID *uuid.UUID, days int) ([]domain.TimelinePoint, error)
	ThemeDistribution(ctx context.Context, candidateID *uuid.UUID) (*domain.ThemeDistribution, error)
	Rankings(ctx context.Context, q domain.RankingQuery) (*domain.RankingPage, error)
	Comparison(ctx context.Context) (*domain.Comparison, error)
	WordCloud(ctx context.Context, candidateID *uuid.UUID, limit int) (*domain.WordCloud, error)
}

type SuggestionService interface {
	Generate(ctx context.Context, candidateID *uuid.UUID) (*domain.SuggestionReport, error)
	History(ctx context.Context, limit int) ([]domain.Insight, error)
}

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Liveness is satisfied by the scheduler.
type Liveness interface {
	Running() bool
}
