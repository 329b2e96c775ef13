package classifier

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

// Scorer produces a deterministic sentiment score for a text.
type Scorer interface {
	Score(text string) Scores
}

// Provider is the probabilistic classification backend.
type Provider interface {
	ClassifySentiment(ctx context.Context, text string) (*domain.Classification, error)
	SuggestTheme(ctx context.Context, text string) (*domain.Classification, error)
}

type ScoreStore interface {
	ListUnscored(ctx context.Context) ([]domain.Comment, error)
	ListAmbiguous(ctx context.Context, lower, upper float64) ([]domain.AmbiguousComment, error)
	Insert(ctx context.Context, score *domain.SentimentScore) (bool, error)
	ApplyFallback(ctx context.Context, commentID uuid.UUID, result domain.Classification, finalLabel domain.SentimentLabel) (bool, error)
}

type ThemeStore interface {
	ListUntagged(ctx context.Context) ([]domain.Comment, error)
	ListEnrichable(ctx context.Context) ([]domain.Comment, error)
	InsertTags(ctx context.Context, tags []domain.ThemeTag) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
