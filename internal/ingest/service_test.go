package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"campaign_pulse/internal/domain"
	"campaign_pulse/internal/ingest/mocks"
	"campaign_pulse/internal/source/apify"
)

type IngestServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source   *mocks.MockSource
	posts    *mocks.MockPostStore
	comments *mocks.MockCommentStore

	service *Service
	logger  *slog.Logger

	candidate domain.Candidate
	runID     uuid.UUID
}

func (s *IngestServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.comments = mocks.NewMockCommentStore(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = New(s.source, s.posts, s.comments, s.logger)

	s.candidate = domain.Candidate{ID: uuid.New(), Username: "candidate_a"}
	s.runID = uuid.New()
}

func (s *IngestServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceTestSuite))
}

func (s *IngestServiceTestSuite) postRecords(raws ...string) []apify.PostRecord {
	records := make([]apify.PostRecord, 0, len(raws))
	for _, raw := range raws {
		var rec apify.PostRecord
		s.Require().NoError(json.Unmarshal([]byte(raw), &rec))
		records = append(records, rec)
	}
	return records
}

func (s *IngestServiceTestSuite) commentRecords(raws ...string) []apify.CommentRecord {
	records := make([]apify.CommentRecord, 0, len(raws))
	for _, raw := range raws {
		var rec apify.CommentRecord
		s.Require().NoError(json.Unmarshal([]byte(raw), &rec))
		records = append(records, rec)
	}
	return records
}

func (s *IngestServiceTestSuite) TestCollectPosts_NewAndExisting() {
	ctx := context.Background()

	records := s.postRecords(
		`{"id": "p1", "url": "https://example.com/p/1"}`,
		`{"id": "p2", "url": "https://example.com/p/2"}`,
	)

	s.source.EXPECT().FetchPosts(ctx, "candidate_a").Return(records, nil)
	s.posts.EXPECT().ExistingExternalIDs(ctx, []string{"p1", "p2"}).Return(map[string]bool{"p1": true}, nil)
	s.posts.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)

	stats, err := s.service.CollectPosts(ctx, s.candidate, s.runID)

	s.NoError(err)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Updated)
	s.Equal(0, stats.Failed)
}

func (s *IngestServiceTestSuite) TestCollectPosts_SourceError() {
	ctx := context.Background()

	s.source.EXPECT().FetchPosts(ctx, "candidate_a").Return(nil, errors.New("actor timed out"))

	_, err := s.service.CollectPosts(ctx, s.candidate, s.runID)

	s.Error(err)
	s.Contains(err.Error(), "fetch posts")
}

func (s *IngestServiceTestSuite) TestIngestPosts_SkipsMalformed() {
	ctx := context.Background()

	records := s.postRecords(
		`{"url": "https://example.com/p/0"}`,
		`{"id": "p1", "url": "https://example.com/p/1"}`,
	)

	s.posts.EXPECT().ExistingExternalIDs(ctx, []string{"p1"}).Return(map[string]bool{}, nil)
	s.posts.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.IngestPosts(ctx, s.candidate, s.runID, records)

	s.NoError(err)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Failed)
}

func (s *IngestServiceTestSuite) TestIngestPosts_DeduplicatesBatch() {
	ctx := context.Background()

	records := s.postRecords(
		`{"id": "p1", "url": "https://example.com/p/1"}`,
		`{"id": "p1", "url": "https://example.com/p/1"}`,
	)

	s.posts.EXPECT().ExistingExternalIDs(ctx, []string{"p1", "p1"}).Return(map[string]bool{}, nil)
	s.posts.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(1)

	stats, err := s.service.IngestPosts(ctx, s.candidate, s.runID, records)

	s.NoError(err)
	s.Equal(1, stats.Created)
}

func (s *IngestServiceTestSuite) TestIngestPosts_UpsertFailureIsolated() {
	ctx := context.Background()

	records := s.postRecords(
		`{"id": "p1", "url": "https://example.com/p/1"}`,
		`{"id": "p2", "url": "https://example.com/p/2"}`,
	)

	s.posts.EXPECT().ExistingExternalIDs(ctx, []string{"p1", "p2"}).Return(map[string]bool{}, nil)

	gomock.InOrder(
		s.posts.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db down")),
		s.posts.EXPECT().Upsert(ctx, gomock.Any()).Return(nil),
	)

	stats, err := s.service.IngestPosts(ctx, s.candidate, s.runID, records)

	s.NoError(err)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Failed)
}

func (s *IngestServiceTestSuite) TestIngestPosts_ExistingCheckError() {
	ctx := context.Background()

	records := s.postRecords(`{"id": "p1", "url": "https://example.com/p/1"}`)

	s.posts.EXPECT().ExistingExternalIDs(ctx, []string{"p1"}).Return(nil, errors.New("db down"))

	_, err := s.service.IngestPosts(ctx, s.candidate, s.runID, records)

	s.Error(err)
	s.Contains(err.Error(), "check existing posts")
}

func (s *IngestServiceTestSuite) TestCollectComments() {
	ctx := context.Background()
	post := domain.Post{ID: uuid.New(), URL: "https://example.com/p/1"}

	records := s.commentRecords(
		`{"id": "c1", "text": "otimo"}`,
		`{"id": "c2", "text": "pessimo"}`,
		`{"text": "sem id"}`,
	)

	s.source.EXPECT().FetchComments(ctx, post.URL).Return(records, nil)
	s.comments.EXPECT().ExistingExternalIDs(ctx, []string{"c1", "c2"}).Return(map[string]bool{"c2": true}, nil)
	s.comments.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)

	stats, err := s.service.CollectComments(ctx, post, s.runID)

	s.NoError(err)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Updated)
	s.Equal(1, stats.Failed)
}
