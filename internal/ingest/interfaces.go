package ingest

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"campaign_pulse/internal/domain"
	"campaign_pulse/internal/source/apify"
)

type Source interface {
	FetchPosts(ctx context.Context, username string) ([]apify.PostRecord, error)
	FetchComments(ctx context.Context, postURL string) ([]apify.CommentRecord, error)
}

type PostStore interface {
	Upsert(ctx context.Context, post *domain.Post) error
	ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]bool, error)
}

type CommentStore interface {
	Upsert(ctx context.Context, comment *domain.Comment) error
	ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]bool, error)
}
