package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

type CandidateSource interface {
	ListActive(ctx context.Context) ([]domain.Candidate, error)
}

type Collector interface {
	CollectPosts(ctx context.Context, candidate domain.Candidate, runID uuid.UUID) (domain.IngestStats, error)
	CollectComments(ctx context.Context, post domain.Post, runID uuid.UUID) (domain.IngestStats, error)
}

type PostSource interface {
	ListNeedingComments(ctx context.Context, cutoff time.Time) ([]domain.Post, error)
}

type SentimentAnalyzer interface {
	AnalyzeBatch(ctx context.Context) (domain.SentimentStats, error)
	ReclassifyAmbiguous(ctx context.Context) (domain.FallbackStats, error)
}

type ThemeAnalyzer interface {
	ClassifyBatch(ctx context.Context) (domain.ThemeStats, error)
}

type RunStore interface {
	Create(ctx context.Context, run *domain.ScrapingRun) error
	Update(ctx context.Context, run *domain.ScrapingRun) error
	FailStale(ctx context.Context) (int, error)
	Latest(ctx context.Context) (*domain.ScrapingRun, error)
	LatestFinished(ctx context.Context) (*domain.ScrapingRun, error)
	LastFinishedAt(ctx context.Context) (*time.Time, error)
}

type Publisher interface {
	PublishRunEvent(ctx context.Context, event domain.RunEvent) error
	Close() error
}
