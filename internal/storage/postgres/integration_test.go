//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"campaign_pulse/internal/domain"
	"campaign_pulse/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_core_tables.up.sql"),
			filepath.Join(migrationsPath, "002_create_analysis_tables.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM strategic_insights")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM themes")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sentiment_scores")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM comments")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM posts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM scraping_runs")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM candidates")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createCandidate(username string) *domain.Candidate {
	candidate, err := NewCandidateStore(s.db).Ensure(s.ctx, username, "")
	s.Require().NoError(err)
	return candidate
}

func (s *PostgresIntegrationSuite) createRun() *domain.ScrapingRun {
	run := &domain.ScrapingRun{
		ID:          uuid.New(),
		StartedAt:   time.Now().UTC(),
		Status:      domain.RunRunning,
		TriggeredBy: "manual",
	}
	s.Require().NoError(NewRunStore(s.db).Create(s.ctx, run))
	return run
}

func (s *PostgresIntegrationSuite) createPost(candidateID, runID uuid.UUID, externalID string) *domain.Post {
	post := &domain.Post{
		ID:            uuid.New(),
		CandidateID:   candidateID,
		ScrapingRunID: runID,
		ExternalID:    externalID,
		URL:           "https://instagram.com/p/" + externalID + "/",
		MediaType:     domain.MediaImage,
		RawData:       types.JSONText(`{}`),
	}
	s.Require().NoError(NewPostStore(s.db).Upsert(s.ctx, post))
	return post
}

func (s *PostgresIntegrationSuite) createComment(postID, runID uuid.UUID, externalID, text string) *domain.Comment {
	comment := &domain.Comment{
		ID:            uuid.New(),
		PostID:        postID,
		ScrapingRunID: runID,
		ExternalID:    externalID,
		Text:          text,
		RawData:       types.JSONText(`{}`),
	}
	s.Require().NoError(NewCommentStore(s.db).Upsert(s.ctx, comment))
	return comment
}

func (s *PostgresIntegrationSuite) insertScore(commentID uuid.UUID, compound float64, label domain.SentimentLabel) {
	inserted, err := NewSentimentStore(s.db).Insert(s.ctx, &domain.SentimentScore{
		ID:         uuid.New(),
		CommentID:  commentID,
		Compound:   compound,
		Neutral:    1,
		VaderLabel: label,
		FinalLabel: label,
	})
	s.Require().NoError(err)
	s.Require().True(inserted)
}

func (s *PostgresIntegrationSuite) TestCandidateStore_Ensure_InsertsAndRefreshes() {
	store := NewCandidateStore(s.db)

	first, err := store.Ensure(s.ctx, "candidate_a", "Candidate A")
	s.NoError(err)
	s.Equal("candidate_a", first.Username)
	s.Equal("Candidate A", *first.DisplayName)
	s.True(first.IsActive)

	second, err := store.Ensure(s.ctx, "candidate_a", "Renamed A")
	s.NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal("Renamed A", *second.DisplayName)

	third, err := store.Ensure(s.ctx, "candidate_a", "")
	s.NoError(err)
	s.Equal(first.ID, third.ID)
	s.Equal("Renamed A", *third.DisplayName)
}

func (s *PostgresIntegrationSuite) TestCandidateStore_GetByUsername_NotFound() {
	_, err := NewCandidateStore(s.db).GetByUsername(s.ctx, "nobody")
	s.ErrorIs(err, domain.ErrCandidateNotFound)
}

func (s *PostgresIntegrationSuite) TestPostStore_Upsert_RefreshesCountersKeepsAttribution() {
	candidate := s.createCandidate("candidate_a")
	firstRun := s.createRun()
	secondRun := s.createRun()

	post := s.createPost(candidate.ID, firstRun.ID, "post-1")

	var createdAt time.Time
	s.NoError(s.db.GetContext(s.ctx, &createdAt, "SELECT created_at FROM posts WHERE id = $1", post.ID))

	update := &domain.Post{
		ID:            uuid.New(),
		CandidateID:   candidate.ID,
		ScrapingRunID: secondRun.ID,
		ExternalID:    "post-1",
		URL:           post.URL,
		Caption:       utils.Ptr("updated caption"),
		LikeCount:     150,
		CommentCount:  30,
		MediaType:     domain.MediaImage,
		RawData:       types.JSONText(`{}`),
	}
	s.NoError(NewPostStore(s.db).Upsert(s.ctx, update))
	s.Equal(post.ID, update.ID)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM posts"))
	s.Equal(1, count)

	var row struct {
		LikeCount     int       `db:"like_count"`
		Caption       *string   `db:"caption"`
		ScrapingRunID uuid.UUID `db:"scraping_run_id"`
		CreatedAt     time.Time `db:"created_at"`
	}
	s.NoError(s.db.GetContext(s.ctx, &row,
		"SELECT like_count, caption, scraping_run_id, created_at FROM posts WHERE id = $1", post.ID))
	s.Equal(150, row.LikeCount)
	s.Equal("updated caption", *row.Caption)
	s.Equal(firstRun.ID, row.ScrapingRunID)
	s.Equal(createdAt, row.CreatedAt)
}

func (s *PostgresIntegrationSuite) TestPostStore_ExistingExternalIDs() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	s.createPost(candidate.ID, run.ID, "post-1")
	s.createPost(candidate.ID, run.ID, "post-2")

	existing, err := NewPostStore(s.db).ExistingExternalIDs(s.ctx, []string{"post-1", "post-2", "post-9"})
	s.NoError(err)
	s.Len(existing, 2)
	s.True(existing["post-1"])
	s.True(existing["post-2"])
	s.False(existing["post-9"])
}

func (s *PostgresIntegrationSuite) TestPostStore_ListNeedingComments() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	store := NewPostStore(s.db)
	cutoff := time.Now().Add(-12 * time.Hour)

	posts, err := store.ListNeedingComments(s.ctx, cutoff)
	s.NoError(err)
	s.Len(posts, 1)
	s.Equal(post.ID, posts[0].ID)

	comment := s.createComment(post.ID, run.ID, "comment-1", "fresh")
	posts, err = store.ListNeedingComments(s.ctx, cutoff)
	s.NoError(err)
	s.Empty(posts)

	_, err = s.db.ExecContext(s.ctx,
		"UPDATE comments SET scraped_at = now() - interval '1 day' WHERE id = $1", comment.ID)
	s.NoError(err)
	posts, err = store.ListNeedingComments(s.ctx, cutoff)
	s.NoError(err)
	s.Len(posts, 1)

	_, err = s.db.ExecContext(s.ctx,
		"UPDATE candidates SET is_active = FALSE WHERE id = $1", candidate.ID)
	s.NoError(err)
	posts, err = store.ListNeedingComments(s.ctx, cutoff)
	s.NoError(err)
	s.Empty(posts)
}

func (s *PostgresIntegrationSuite) TestCommentStore_Upsert_KeepsTextAndAttribution() {
	candidate := s.createCandidate("candidate_a")
	firstRun := s.createRun()
	secondRun := s.createRun()
	post := s.createPost(candidate.ID, firstRun.ID, "post-1")

	comment := s.createComment(post.ID, firstRun.ID, "comment-1", "original text")

	update := &domain.Comment{
		ID:            uuid.New(),
		PostID:        post.ID,
		ScrapingRunID: secondRun.ID,
		ExternalID:    "comment-1",
		Text:          "rewritten text",
		LikeCount:     7,
		RawData:       types.JSONText(`{}`),
	}
	s.NoError(NewCommentStore(s.db).Upsert(s.ctx, update))
	s.Equal(comment.ID, update.ID)

	var row struct {
		Text          string    `db:"text"`
		LikeCount     int       `db:"like_count"`
		ScrapingRunID uuid.UUID `db:"scraping_run_id"`
	}
	s.NoError(s.db.GetContext(s.ctx, &row,
		"SELECT text, like_count, scraping_run_id FROM comments WHERE id = $1", comment.ID))
	s.Equal("original text", row.Text)
	s.Equal(7, row.LikeCount)
	s.Equal(firstRun.ID, row.ScrapingRunID)
}

func (s *PostgresIntegrationSuite) TestSentimentStore_Insert_OncePerComment() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	comment := s.createComment(post.ID, run.ID, "comment-1", "muito bom")
	store := NewSentimentStore(s.db)

	inserted, err := store.Insert(s.ctx, &domain.SentimentScore{
		ID: uuid.New(), CommentID: comment.ID, Compound: 0.6,
		VaderLabel: domain.SentimentPositive, FinalLabel: domain.SentimentPositive,
	})
	s.NoError(err)
	s.True(inserted)

	inserted, err = store.Insert(s.ctx, &domain.SentimentScore{
		ID: uuid.New(), CommentID: comment.ID, Compound: -0.6,
		VaderLabel: domain.SentimentNegative, FinalLabel: domain.SentimentNegative,
	})
	s.NoError(err)
	s.False(inserted)

	var compound float64
	s.NoError(s.db.GetContext(s.ctx, &compound,
		"SELECT compound FROM sentiment_scores WHERE comment_id = $1", comment.ID))
	s.Equal(0.6, compound)
}

func (s *PostgresIntegrationSuite) TestSentimentStore_ListUnscored() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	scored := s.createComment(post.ID, run.ID, "comment-1", "scored")
	pending := s.createComment(post.ID, run.ID, "comment-2", "pending")
	s.insertScore(scored.ID, 0.5, domain.SentimentPositive)

	comments, err := NewSentimentStore(s.db).ListUnscored(s.ctx)
	s.NoError(err)
	s.Len(comments, 1)
	s.Equal(pending.ID, comments[0].ID)
}

func (s *PostgresIntegrationSuite) TestSentimentStore_ListAmbiguous_StrictWindow() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	store := NewSentimentStore(s.db)

	inWindow := s.createComment(post.ID, run.ID, "comment-1", "talvez melhore")
	s.insertScore(inWindow.ID, -0.04, domain.SentimentNeutral)

	atUpper := s.createComment(post.ID, run.ID, "comment-2", "bom")
	s.insertScore(atUpper.ID, 0.05, domain.SentimentPositive)

	atLower := s.createComment(post.ID, run.ID, "comment-3", "ruim")
	s.insertScore(atLower.ID, -0.05, domain.SentimentNegative)

	resolved := s.createComment(post.ID, run.ID, "comment-4", "sei la")
	s.insertScore(resolved.ID, 0.0, domain.SentimentNeutral)
	applied, err := store.ApplyFallback(s.ctx, resolved.ID,
		domain.Classification{Label: "negative", Confidence: 0.9, Model: "test-model"},
		domain.SentimentNegative)
	s.NoError(err)
	s.True(applied)

	ambiguous, err := store.ListAmbiguous(s.ctx, -0.05, 0.05)
	s.NoError(err)
	s.Len(ambiguous, 1)
	s.Equal(inWindow.ID, ambiguous[0].CommentID)
	s.Equal("talvez melhore", ambiguous[0].Text)
	s.Equal(domain.SentimentNeutral, ambiguous[0].VaderLabel)
}

func (s *PostgresIntegrationSuite) TestSentimentStore_ApplyFallback_OnlyOnce() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	comment := s.createComment(post.ID, run.ID, "comment-1", "sei la, talvez")
	s.insertScore(comment.ID, 0.0, domain.SentimentNeutral)
	store := NewSentimentStore(s.db)

	applied, err := store.ApplyFallback(s.ctx, comment.ID,
		domain.Classification{Label: "positive", Confidence: 0.8, Model: "test-model"},
		domain.SentimentPositive)
	s.NoError(err)
	s.True(applied)

	applied, err = store.ApplyFallback(s.ctx, comment.ID,
		domain.Classification{Label: "negative", Confidence: 0.95, Model: "test-model"},
		domain.SentimentNegative)
	s.NoError(err)
	s.False(applied)

	var row struct {
		FinalLabel    string  `db:"final_label"`
		LLMLabel      string  `db:"llm_label"`
		LLMConfidence float64 `db:"llm_confidence"`
	}
	s.NoError(s.db.GetContext(s.ctx, &row,
		"SELECT final_label, llm_label, llm_confidence FROM sentiment_scores WHERE comment_id = $1", comment.ID))
	s.Equal("positive", row.FinalLabel)
	s.Equal("positive", row.LLMLabel)
	s.Equal(0.8, row.LLMConfidence)
}

func (s *PostgresIntegrationSuite) TestThemeStore_InsertTags_UniquePerMethod() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	comment := s.createComment(post.ID, run.ID, "comment-1", "hospital lotado")
	store := NewThemeStore(s.db)

	tag := domain.ThemeTag{
		ID: uuid.New(), CommentID: comment.ID,
		Theme: domain.ThemeSaude, Confidence: 1.0, Method: domain.MethodKeyword,
	}
	s.NoError(store.InsertTags(s.ctx, []domain.ThemeTag{tag}))

	tag.ID = uuid.New()
	s.NoError(store.InsertTags(s.ctx, []domain.ThemeTag{tag}))

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM themes WHERE comment_id = $1", comment.ID))
	s.Equal(1, count)

	s.NoError(store.InsertTags(s.ctx, []domain.ThemeTag{{
		ID: uuid.New(), CommentID: comment.ID,
		Theme: domain.ThemeSaude, Confidence: 0.9, Method: domain.MethodProbabilistic,
	}}))
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM themes WHERE comment_id = $1", comment.ID))
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestThemeStore_ListUntaggedAndEnrichable() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	store := NewThemeStore(s.db)

	catchAll := s.createComment(post.ID, run.ID, "comment-1", "bom dia a todos")
	themed := s.createComment(post.ID, run.ID, "comment-2", "hospital lotado")
	untagged := s.createComment(post.ID, run.ID, "comment-3", "sem tag ainda")

	s.NoError(store.InsertTags(s.ctx, []domain.ThemeTag{
		{ID: uuid.New(), CommentID: catchAll.ID, Theme: domain.ThemeOutros, Confidence: 0.5, Method: domain.MethodKeyword},
		{ID: uuid.New(), CommentID: themed.ID, Theme: domain.ThemeSaude, Confidence: 1.0, Method: domain.MethodKeyword},
	}))

	pending, err := store.ListUntagged(s.ctx)
	s.NoError(err)
	s.Len(pending, 1)
	s.Equal(untagged.ID, pending[0].ID)

	enrichable, err := store.ListEnrichable(s.ctx)
	s.NoError(err)
	s.Len(enrichable, 1)
	s.Equal(catchAll.ID, enrichable[0].ID)

	s.NoError(store.InsertTags(s.ctx, []domain.ThemeTag{
		{ID: uuid.New(), CommentID: catchAll.ID, Theme: domain.ThemeSeguranca, Confidence: 0.8, Method: domain.MethodProbabilistic},
	}))
	enrichable, err = store.ListEnrichable(s.ctx)
	s.NoError(err)
	s.Empty(enrichable)
}

func (s *PostgresIntegrationSuite) TestRunStore_Lifecycle() {
	store := NewRunStore(s.db)
	run := s.createRun()

	latest, err := store.Latest(s.ctx)
	s.NoError(err)
	s.Require().NotNil(latest)
	s.Equal(run.ID, latest.ID)
	s.Equal(domain.RunRunning, latest.Status)

	finished, err := store.LatestFinished(s.ctx)
	s.NoError(err)
	s.Nil(finished)

	completedAt := time.Now().UTC()
	run.CompletedAt = &completedAt
	run.Status = domain.RunPartial
	run.PostsScraped = 12
	run.CommentsScraped = 340
	run.DurationSeconds = 42.5
	run.Errors = domain.RunErrorList{{
		Candidate: "candidate_a",
		Phase:     "post_scraping",
		Message:   "provider timeout",
		Timestamp: completedAt,
	}}
	s.NoError(store.Update(s.ctx, run))

	finished, err = store.LatestFinished(s.ctx)
	s.NoError(err)
	s.Require().NotNil(finished)
	s.Equal(domain.RunPartial, finished.Status)
	s.Equal(12, finished.PostsScraped)
	s.Require().Len(finished.Errors, 1)
	s.Equal("provider timeout", finished.Errors[0].Message)
	s.Equal("post_scraping", finished.Errors[0].Phase)

	lastFinished, err := store.LastFinishedAt(s.ctx)
	s.NoError(err)
	s.Require().NotNil(lastFinished)
	s.WithinDuration(completedAt, *lastFinished, time.Second)
}

func (s *PostgresIntegrationSuite) TestRunStore_Latest_Empty() {
	latest, err := NewRunStore(s.db).Latest(s.ctx)
	s.NoError(err)
	s.Nil(latest)

	lastFinished, err := NewRunStore(s.db).LastFinishedAt(s.ctx)
	s.NoError(err)
	s.Nil(lastFinished)
}

func (s *PostgresIntegrationSuite) TestRunStore_FailStale() {
	store := NewRunStore(s.db)
	stale1 := s.createRun()
	stale2 := s.createRun()

	done := s.createRun()
	completedAt := time.Now().UTC()
	done.CompletedAt = &completedAt
	done.Status = domain.RunCompleted
	s.NoError(store.Update(s.ctx, done))

	reconciled, err := store.FailStale(s.ctx)
	s.NoError(err)
	s.Equal(2, reconciled)

	var statuses []string
	s.NoError(s.db.SelectContext(s.ctx, &statuses,
		"SELECT status FROM scraping_runs WHERE id IN ($1, $2) ORDER BY started_at", stale1.ID, stale2.ID))
	s.Equal([]string{"failed", "failed"}, statuses)

	var completed string
	s.NoError(s.db.GetContext(s.ctx, &completed,
		"SELECT status FROM scraping_runs WHERE id = $1", done.ID))
	s.Equal("completed", completed)
}

func (s *PostgresIntegrationSuite) TestTransaction_CommitAndRollback() {
	candidate := s.createCandidate("candidate_a")
	run := s.createRun()
	post := s.createPost(candidate.ID, run.ID, "post-1")
	comment := s.createComment(post.ID, run.ID, "comment-1", "hospital lotado")
	tm := NewTransactionManager(s.db)
	store := NewThemeStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.InsertTags(ctx, []domain.ThemeTag{
			{ID: uuid.New(), CommentID: comment.ID, Theme: domain.ThemeSaude, Confidence: 1.0, Method: domain.MethodKeyword},
		})
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM themes"))
	s.Equal(1, count)

	err = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := store.InsertTags(ctx, []domain.ThemeTag{
			{ID: uuid.New(), CommentID: comment.ID, Theme: domain.ThemeEducacao, Confidence: 1.0, Method: domain.MethodKeyword},
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM themes"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestAnalyticsStore_CandidateOverviews() {
	alpha := s.createCandidate("alpha")
	beta := s.createCandidate("beta")
	run := s.createRun()

	post1 := s.createPost(alpha.ID, run.ID, "post-1")
	_, err := s.db.ExecContext(s.ctx,
		"UPDATE posts SET like_count = 10, comment_count = 5 WHERE id = $1", post1.ID)
	s.NoError(err)
	post2 := s.createPost(alpha.ID, run.ID, "post-2")
	_, err = s.db.ExecContext(s.ctx,
		"UPDATE posts SET like_count = 20, comment_count = 5 WHERE id = $1", post2.ID)
	s.NoError(err)

	c1 := s.createComment(post1.ID, run.ID, "comment-1", "otimo")
	c2 := s.createComment(post1.ID, run.ID, "comment-2", "excelente")
	c3 := s.createComment(post2.ID, run.ID, "comment-3", "pessimo")
	s.insertScore(c1.ID, 0.8, domain.SentimentPositive)
	s.insertScore(c2.ID, 0.6, domain.SentimentPositive)
	s.insertScore(c3.ID, -0.5, domain.SentimentNegative)

	overviews, err := NewAnalyticsStore(s.db).CandidateOverviews(s.ctx)
	s.NoError(err)
	s.Require().Len(overviews, 2)

	s.Equal("alpha", overviews[0].Username)
	s.Equal(2, overviews[0].TotalPosts)
	s.Equal(3, overviews[0].TotalComments)
	s.InDelta(0.3, overviews[0].AverageSentiment, 1e-9)
	s.Equal(2, overviews[0].Distribution.Positive)
	s.Equal(1, overviews[0].Distribution.Negative)
	s.Equal(0, overviews[0].Distribution.Neutral)
	s.Equal(40, overviews[0].TotalEngagement)

	s.Equal("beta", overviews[1].Username)
	s.Equal(0, overviews[1].TotalPosts)
	s.Equal(0, overviews[1].TotalComments)
	s.Equal(0.0, overviews[1].AverageSentiment)
	s.Equal(beta.ID, overviews[1].CandidateID)
}

func (s *PostgresIntegrationSuite) TestAnalyticsStore_Timeline_AscendingWithWindow() {
	alpha := s.createCandidate("alpha")
	beta := s.createCandidate("beta")
	run := s.createRun()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	newer := s.createPost(alpha.ID, run.ID, "post-1")
	older := s.createPost(alpha.ID, run.ID, "post-2")
	other := s.createPost(beta.ID, run.ID, "post-3")
	outside := s.createPost(alpha.ID, run.ID, "post-4")
	for post, postedAt := range map[uuid.UUID]time.Time{
		newer.ID:   base.AddDate(0, 0, 2),
		older.ID:   base,
		other.ID:   base.AddDate(0, 0, 1),
		outside.ID: base.AddDate(0, -2, 0),
	} {
		_, err := s.db.ExecContext(s.ctx, "UPDATE posts SET posted_at = $2 WHERE id = $1", post, postedAt)
		s.NoError(err)
	}

	c1 := s.createComment(older.ID, run.ID, "comment-1", "bom")
	s.insertScore(c1.ID, 0.4, domain.SentimentPositive)

	points, err := NewAnalyticsStore(s.db).Timeline(s.ctx, nil, base.AddDate(0, -1, 0), base.AddDate(0, 1, 0))
	s.NoError(err)
	s.Require().Len(points, 3)
	s.Equal(older.ID, points[0].PostID)
	s.Equal(other.ID, points[1].PostID)
	s.Equal(newer.ID, points[2].PostID)
	s.InDelta(0.4, points[0].AverageSentiment, 1e-9)
	s.Equal(1, points[0].CommentCount)
	s.Equal(0, points[2].CommentCount)

	points, err = NewAnalyticsStore(s.db).Timeline(s.ctx, &alpha.ID, base.AddDate(0, -1, 0), base.AddDate(0, 1, 0))
	s.NoError(err)
	s.Require().Len(points, 2)
	s.Equal("alpha", points[0].CandidateUsername)
}

func (s *PostgresIntegrationSuite) TestAnalyticsStore_PostRankings_SortAndTieBreak() {
	alpha := s.createCandidate("alpha")
	run := s.createRun()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	posts := make([]*domain.Post, 3)
	for i, tc := range []struct {
		likes, comments int
		postedAt        time.Time
	}{
		{likes: 50, comments: 10, postedAt: base},
		{likes: 50, comments: 20, postedAt: base.AddDate(0, 0, -1)},
		{likes: 90, comments: 1, postedAt: base.AddDate(0, 0, -2)},
	} {
		posts[i] = s.createPost(alpha.ID, run.ID, "post-"+string(rune('a'+i)))
		_, err := s.db.ExecContext(s.ctx,
			"UPDATE posts SET like_count = $2, comment_count = $3, posted_at = $4 WHERE id = $1",
			posts[i].ID, tc.likes, tc.comments, tc.postedAt)
		s.NoError(err)
	}

	c1 := s.createComment(posts[0].ID, run.ID, "comment-1", "bom")
	c2 := s.createComment(posts[0].ID, run.ID, "comment-2", "ruim")
	s.insertScore(c1.ID, 0.6, domain.SentimentPositive)
	s.insertScore(c2.ID, -0.6, domain.SentimentNegative)

	store := NewAnalyticsStore(s.db)

	rankings, err := store.PostRankings(s.ctx, domain.RankingQuery{
		SortBy: "like_count", Order: "desc", Limit: 10,
	})
	s.NoError(err)
	s.Require().Len(rankings, 3)
	s.Equal(posts[2].ID, rankings[0].PostID)
	s.Equal(posts[1].ID, rankings[1].PostID)
	s.Equal(posts[0].ID, rankings[2].PostID)
	s.InDelta(0.5, rankings[2].PositiveRatio, 1e-9)
	s.InDelta(0.5, rankings[2].NegativeRatio, 1e-9)
	s.InDelta(0.0, rankings[2].AverageSentiment, 1e-9)

	rankings, err = store.PostRankings(s.ctx, domain.RankingQuery{
		SortBy: "comment_count", Order: "desc", Limit: 2, Offset: 1,
	})
	s.NoError(err)
	s.Require().Len(rankings, 2)
	s.Equal(posts[0].ID, rankings[0].PostID)
	s.Equal(posts[2].ID, rankings[1].PostID)

	total, err := store.CountPosts(s.ctx, &alpha.ID)
	s.NoError(err)
	s.Equal(3, total)
}

func (s *PostgresIntegrationSuite) TestAnalyticsStore_RecentPostIDsAndMeanCompound() {
	alpha := s.createCandidate("alpha")
	run := s.createRun()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		post := s.createPost(alpha.ID, run.ID, "post-"+string(rune('a'+i)))
		_, err := s.db.ExecContext(s.ctx,
			"UPDATE posts SET posted_at = $2 WHERE id = $1", post.ID, base.AddDate(0, 0, -i))
		s.NoError(err)
		ids = append(ids, post.ID)
	}

	store := NewAnalyticsStore(s.db)

	recent, err := store.RecentPostIDs(s.ctx, alpha.ID, 2)
	s.NoError(err)
	s.Equal([]uuid.UUID{ids[0], ids[1]}, recent)

	c1 := s.createComment(ids[0], run.ID, "comment-1", "bom")
	c2 := s.createComment(ids[1], run.ID, "comment-2", "otimo")
	c3 := s.createComment(ids[2], run.ID, "comment-3", "pessimo")
	s.insertScore(c1.ID, 0.2, domain.SentimentPositive)
	s.insertScore(c2.ID, 0.4, domain.SentimentPositive)
	s.insertScore(c3.ID, -0.9, domain.SentimentNegative)

	mean, err := store.MeanCompound(s.ctx, recent)
	s.NoError(err)
	s.InDelta(0.3, mean, 1e-9)

	mean, err = store.MeanCompound(s.ctx, nil)
	s.NoError(err)
	s.Equal(0.0, mean)
}

func (s *PostgresIntegrationSuite) TestAnalyticsStore_ThemeCounts() {
	alpha := s.createCandidate("alpha")
	beta := s.createCandidate("beta")
	run := s.createRun()
	alphaPost := s.createPost(alpha.ID, run.ID, "post-1")
	betaPost := s.createPost(beta.ID, run.ID, "post-2")

	themeStore := NewThemeStore(s.db)
	var tags []domain.ThemeTag
	for i, tc := range []struct {
		post  *domain.Post
		theme domain.Theme
	}{
		{alphaPost, domain.ThemeSaude},
		{alphaPost, domain.ThemeSaude},
		{alphaPost, domain.ThemeSeguranca},
		{betaPost, domain.ThemeEconomia},
	} {
		comment := s.createComment(tc.post.ID, run.ID, "comment-"+string(rune('a'+i)), "texto")
		tags = append(tags, domain.ThemeTag{
			ID: uuid.New(), CommentID: comment.ID,
			Theme: tc.theme, Confidence: 1.0, Method: domain.MethodKeyword,
		})
	}
	s.NoError(themeStore.InsertTags(s.ctx, tags))

	store := NewAnalyticsStore(s.db)

	counts, err := store.ThemeCounts(s.ctx, nil)
	s.NoError(err)
	s.Require().Len(counts, 3)
	s.Equal(domain.ThemeSaude, counts[0].Theme)
	s.Equal(2, counts[0].Count)

	counts, err = store.ThemeCounts(s.ctx, &beta.ID)
	s.NoError(err)
	s.Require().Len(counts, 1)
	s.Equal(domain.ThemeEconomia, counts[0].Theme)

	byCandidate, err := store.ThemeCountsByCandidate(s.ctx, nil)
	s.NoError(err)
	s.Require().Len(byCandidate, 3)
	s.Equal("alpha", byCandidate[0].Username)
	s.Equal(alpha.ID, byCandidate[0].CandidateID)
	s.Equal(domain.ThemeSaude, byCandidate[0].Theme)
	s.Equal(2, byCandidate[0].Count)

	byCandidate, err = store.ThemeCountsByCandidate(s.ctx, &beta.ID)
	s.NoError(err)
	s.Require().Len(byCandidate, 1)
	s.Equal(domain.ThemeEconomia, byCandidate[0].Theme)
}

func (s *PostgresIntegrationSuite) TestAnalyticsStore_CommentTexts() {
	alpha := s.createCandidate("alpha")
	beta := s.createCandidate("beta")
	run := s.createRun()
	alphaPost := s.createPost(alpha.ID, run.ID, "post-1")
	betaPost := s.createPost(beta.ID, run.ID, "post-2")
	s.createComment(alphaPost.ID, run.ID, "comment-1", "texto alpha")
	s.createComment(betaPost.ID, run.ID, "comment-2", "texto beta")

	store := NewAnalyticsStore(s.db)

	texts, err := store.CommentTexts(s.ctx, nil, 100)
	s.NoError(err)
	s.Len(texts, 2)

	texts, err = store.CommentTexts(s.ctx, &beta.ID, 100)
	s.NoError(err)
	s.Equal([]string{"texto beta"}, texts)
}

func (s *PostgresIntegrationSuite) TestInsightStore_InsertAndList() {
	candidate := s.createCandidate("alpha")
	run := s.createRun()
	store := NewInsightStore(s.db)

	first := &domain.Insight{
		ID:             uuid.New(),
		ScrapingRunID:  &run.ID,
		CandidateID:    &candidate.ID,
		Title:          "Reforcar pauta de saude",
		Description:    "Comentarios sobre saude concentram o maior volume negativo.",
		SupportingData: utils.Ptr("42% dos comentarios negativos citam saude"),
		Priority:       domain.PriorityHigh,
		LLMModel:       utils.Ptr("gpt-4o-mini"),
		InputSummary:   types.JSONText(`{"total_comments_analyzed": 120}`),
	}
	s.NoError(store.Insert(s.ctx, first))

	second := &domain.Insight{
		ID:          uuid.New(),
		Title:       "Ampliar presenca em video",
		Description: "Posts em video recebem o dobro de comentarios.",
		Priority:    domain.PriorityMedium,
	}
	s.NoError(store.Insert(s.ctx, second))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []uuid.UUID{first.ID, second.ID} {
		_, err := s.db.ExecContext(s.ctx,
			"UPDATE strategic_insights SET created_at = $2 WHERE id = $1",
			id, base.Add(time.Duration(i)*time.Minute))
		s.NoError(err)
	}

	insights, err := store.List(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(insights, 2)
	s.Equal(second.ID, insights[0].ID)
	s.Nil(insights[0].ScrapingRunID)
	s.Nil(insights[0].SupportingData)

	stored := insights[1]
	s.Equal(first.ID, stored.ID)
	s.Require().NotNil(stored.ScrapingRunID)
	s.Equal(run.ID, *stored.ScrapingRunID)
	s.Require().NotNil(stored.CandidateID)
	s.Equal(candidate.ID, *stored.CandidateID)
	s.Equal(domain.PriorityHigh, stored.Priority)
	s.Equal("42% dos comentarios negativos citam saude", *stored.SupportingData)
	s.Equal("gpt-4o-mini", *stored.LLMModel)

	var summary map[string]any
	s.NoError(stored.InputSummary.Unmarshal(&summary))
	s.Equal(float64(120), summary["total_comments_analyzed"])

	insights, err = store.List(s.ctx, 1)
	s.NoError(err)
	s.Require().Len(insights, 1)
	s.Equal(second.ID, insights[0].ID)
}
