package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
	"campaign_pulse/internal/source/apify"
)

// Service fetches provider records and upserts them as posts and comments.
type Service struct {
	source   Source
	posts    PostStore
	comments CommentStore
	logger   *slog.Logger
}

func New(source Source, posts PostStore, comments CommentStore, logger *slog.Logger) *Service {
	return &Service{
		source:   source,
		posts:    posts,
		comments: comments,
		logger:   logger,
	}
}

// CollectPosts fetches the recent posts of one candidate and ingests them.
func (s *Service) CollectPosts(ctx context.Context, candidate domain.Candidate, runID uuid.UUID) (domain.IngestStats, error) {
	records, err := s.source.FetchPosts(ctx, candidate.Username)
	if err != nil {
		return domain.IngestStats{}, fmt.Errorf("fetch posts: %w", err)
	}

	stats, err := s.IngestPosts(ctx, candidate, runID, records)
	if err != nil {
		return stats, err
	}

	s.logger.Info("posts ingested",
		"candidate", candidate.Username,
		"created", stats.Created,
		"updated", stats.Updated,
		"failed", stats.Failed,
	)

	return stats, nil
}

// IngestPosts upserts a batch of provider records for one candidate.
// Malformed records and per-record store failures are skipped.
func (s *Service) IngestPosts(ctx context.Context, candidate domain.Candidate, runID uuid.UUID, records []apify.PostRecord) (domain.IngestStats, error) {
	var stats domain.IngestStats

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.ID != "" {
			ids = append(ids, rec.ID)
		}
	}

	existing, err := s.posts.ExistingExternalIDs(ctx, ids)
	if err != nil {
		return stats, fmt.Errorf("check existing posts: %w", err)
	}

	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		post, err := MapPost(rec, candidate.ID, runID)
		if err != nil {
			stats.Failed++
			s.logger.Warn("skipping malformed post record",
				"candidate", candidate.Username,
				"error", err,
			)
			continue
		}

		if seen[post.ExternalID] {
			continue
		}
		seen[post.ExternalID] = true

		if err := s.posts.Upsert(ctx, &post); err != nil {
			stats.Failed++
			s.logger.Warn("post upsert failed",
				"candidate", candidate.Username,
				"external_id", post.ExternalID,
				"error", err,
			)
			continue
		}

		if existing[post.ExternalID] {
			stats.Updated++
		} else {
			stats.Created++
		}
	}

	return stats, nil
}

// CollectComments fetches the comments of one post and ingests them.
func (s *Service) CollectComments(ctx context.Context, post domain.Post, runID uuid.UUID) (domain.IngestStats, error) {
	records, err := s.source.FetchComments(ctx, post.URL)
	if err != nil {
		return domain.IngestStats{}, fmt.Errorf("fetch comments: %w", err)
	}

	stats, err := s.IngestComments(ctx, post, runID, records)
	if err != nil {
		return stats, err
	}

	s.logger.Info("comments ingested",
		"post_id", post.ID,
		"created", stats.Created,
		"updated", stats.Updated,
		"failed", stats.Failed,
	)

	return stats, nil
}

// IngestComments upserts a batch of provider records for one post.
func (s *Service) IngestComments(ctx context.Context, post domain.Post, runID uuid.UUID, records []apify.CommentRecord) (domain.IngestStats, error) {
	var stats domain.IngestStats

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.ID != "" {
			ids = append(ids, rec.ID)
		}
	}

	existing, err := s.comments.ExistingExternalIDs(ctx, ids)
	if err != nil {
		return stats, fmt.Errorf("check existing comments: %w", err)
	}

	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		comment, err := MapComment(rec, post.ID, runID)
		if err != nil {
			stats.Failed++
			s.logger.Warn("skipping malformed comment record",
				"post_id", post.ID,
				"error", err,
			)
			continue
		}

		if seen[comment.ExternalID] {
			continue
		}
		seen[comment.ExternalID] = true

		if err := s.comments.Upsert(ctx, &comment); err != nil {
			stats.Failed++
			s.logger.Warn("comment upsert failed",
				"post_id", post.ID,
				"external_id", comment.ExternalID,
				"error", err,
			)
			continue
		}

		if existing[comment.ExternalID] {
			stats.Updated++
		} else {
			stats.Created++
		}
	}

	return stats, nil
}
