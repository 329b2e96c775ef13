package suggest

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

type SnapshotSource interface {
	Snapshot(ctx context.Context, candidateID *uuid.UUID) (*domain.AnalyticsSnapshot, error)
}

type Generator interface {
	GenerateSuggestions(ctx context.Context, snapshot []byte) ([]domain.Suggestion, error)
	Model() string
}

type InsightStore interface {
	Insert(ctx context.Context, insight *domain.Insight) error
	List(ctx context.Context, limit int) ([]domain.Insight, error)
}

type RunSource interface {
	LatestFinished(ctx context.Context) (*domain.ScrapingRun, error)
}
