package analytics

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

// Store is the read-side query surface the aggregations are computed from.
type Store interface {
	CandidateOverviews(ctx context.Context) ([]domain.CandidateOverview, error)
	Timeline(ctx context.Context, candidateID *uuid.UUID, since, until time.Time) ([]domain.TimelinePoint, error)
	ThemeCounts(ctx context.Context, candidateID *uuid.UUID) ([]domain.ThemeCount, error)
	ThemeCountsByCandidate(ctx context.Context, candidateID *uuid.UUID) ([]domain.CandidateThemeCount, error)
	PostRankings(ctx context.Context, q domain.RankingQuery) ([]domain.PostRanking, error)
	CountPosts(ctx context.Context, candidateID *uuid.UUID) (int, error)
	RecentPostIDs(ctx context.Context, candidateID uuid.UUID, limit int) ([]uuid.UUID, error)
	MeanCompound(ctx context.Context, postIDs []uuid.UUID) (float64, error)
	CommentTexts(ctx context.Context, candidateID *uuid.UUID, limit int) ([]string, error)
}

// RunSource reports scrape recency.
type RunSource interface {
	LastFinishedAt(ctx context.Context) (*time.Time, error)
}
