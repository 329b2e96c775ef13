package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campaign_pulse/internal/domain"
)

// AnalyticsStore serves the read side: rollups over posts, comments and their
// classification results. It never writes.
type AnalyticsStore struct {
	db *sqlx.DB
}

func NewAnalyticsStore(db *sqlx.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

type overviewRow struct {
	CandidateID     uuid.UUID `db:"candidate_id"`
	Username        string    `db:"username"`
	DisplayName     *string   `db:"display_name"`
	TotalPosts      int       `db:"total_posts"`
	TotalComments   int       `db:"total_comments"`
	AvgSentiment    float64   `db:"avg_sentiment"`
	PositiveCount   int       `db:"positive_count"`
	NegativeCount   int       `db:"negative_count"`
	NeutralCount    int       `db:"neutral_count"`
	TotalEngagement int       `db:"total_engagement"`
}

// CandidateOverviews returns one rollup per active candidate: post and comment
// totals, mean compound score, final-label counts and the engagement sum.
func (s *AnalyticsStore) CandidateOverviews(ctx context.Context) ([]domain.CandidateOverview, error) {
	query := `
		SELECT
			c.id AS candidate_id,
			c.username,
			c.display_name,
			count(DISTINCT p.id) AS total_posts,
			count(DISTINCT cm.id) AS total_comments,
			COALESCE(avg(ss.compound), 0) AS avg_sentiment,
			count(ss.id) FILTER (WHERE ss.final_label = 'positive') AS positive_count,
			count(ss.id) FILTER (WHERE ss.final_label = 'negative') AS negative_count,
			count(ss.id) FILTER (WHERE ss.final_label = 'neutral') AS neutral_count,
			(
				SELECT COALESCE(sum(p2.like_count + p2.comment_count), 0)
				FROM posts p2 WHERE p2.candidate_id = c.id
			) AS total_engagement
		FROM candidates c
		LEFT JOIN posts p ON p.candidate_id = c.id
		LEFT JOIN comments cm ON cm.post_id = p.id
		LEFT JOIN sentiment_scores ss ON ss.comment_id = cm.id
		WHERE c.is_active
		GROUP BY c.id, c.username, c.display_name
		ORDER BY c.username`

	var rows []overviewRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	overviews := make([]domain.CandidateOverview, 0, len(rows))
	for _, row := range rows {
		overviews = append(overviews, domain.CandidateOverview{
			CandidateID:      row.CandidateID,
			Username:         row.Username,
			DisplayName:      row.DisplayName,
			TotalPosts:       row.TotalPosts,
			TotalComments:    row.TotalComments,
			AverageSentiment: row.AvgSentiment,
			Distribution: domain.SentimentDistribution{
				Positive: row.PositiveCount,
				Negative: row.NegativeCount,
				Neutral:  row.NeutralCount,
			},
			TotalEngagement: row.TotalEngagement,
		})
	}

	return overviews, nil
}

// Timeline returns posts published inside [since, until] with the mean
// compound score and the number of scored comments per post, oldest first.
func (s *AnalyticsStore) Timeline(ctx context.Context, candidateID *uuid.UUID, since, until time.Time) ([]domain.TimelinePoint, error) {
	builder := psql.
		Select(
			"p.id AS post_id",
			"p.candidate_id",
			"c.username AS candidate_username",
			"p.url AS post_url",
			"p.caption",
			"p.posted_at",
			"COALESCE(avg(ss.compound), 0) AS avg_sentiment",
			"count(ss.id) AS comment_count",
		).
		From("posts p").
		Join("candidates c ON c.id = p.candidate_id").
		LeftJoin("comments cm ON cm.post_id = p.id").
		LeftJoin("sentiment_scores ss ON ss.comment_id = cm.id").
		Where(sq.GtOrEq{"p.posted_at": since}).
		Where(sq.LtOrEq{"p.posted_at": until}).
		GroupBy("p.id", "p.candidate_id", "c.username", "p.url", "p.caption", "p.posted_at").
		OrderBy("p.posted_at ASC")

	if candidateID != nil {
		builder = builder.Where(sq.Eq{"p.candidate_id": *candidateID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var points []domain.TimelinePoint
	if err := s.db.SelectContext(ctx, &points, query, args...); err != nil {
		return nil, err
	}

	return points, nil
}

// ThemeCounts tallies theme tags, optionally scoped to one candidate. Both
// classification methods count, duplicates being impossible per method.
func (s *AnalyticsStore) ThemeCounts(ctx context.Context, candidateID *uuid.UUID) ([]domain.ThemeCount, error) {
	builder := psql.
		Select("t.theme", "count(*) AS count").
		From("themes t").
		GroupBy("t.theme").
		OrderBy("count DESC", "t.theme ASC")

	if candidateID != nil {
		builder = builder.
			Join("comments cm ON cm.id = t.comment_id").
			Join("posts p ON p.id = cm.post_id").
			Where(sq.Eq{"p.candidate_id": *candidateID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var counts []domain.ThemeCount
	if err := s.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, err
	}

	return counts, nil
}

// ThemeCountsByCandidate tallies theme tags per candidate, optionally scoped
// to one.
func (s *AnalyticsStore) ThemeCountsByCandidate(ctx context.Context, candidateID *uuid.UUID) ([]domain.CandidateThemeCount, error) {
	builder := psql.
		Select("c.id AS candidate_id", "c.username", "t.theme", "count(*) AS count").
		From("themes t").
		Join("comments cm ON cm.id = t.comment_id").
		Join("posts p ON p.id = cm.post_id").
		Join("candidates c ON c.id = p.candidate_id").
		GroupBy("c.id", "c.username", "t.theme").
		OrderBy("c.username", "count DESC", "t.theme ASC")

	if candidateID != nil {
		builder = builder.Where(sq.Eq{"p.candidate_id": *candidateID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var counts []domain.CandidateThemeCount
	if err := s.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, err
	}

	return counts, nil
}

// rankingSorts maps the public sort keys onto order expressions. positive and
// negative ratios and the mean score come from the scored comments of each
// post; likes and comments come from the provider counters.
var rankingSorts = map[string]string{
	"comment_count":  "p.comment_count",
	"like_count":     "p.like_count",
	"positive_ratio": "positive_ratio",
	"negative_ratio": "negative_ratio",
	"avg_sentiment":  "avg_sentiment",
}

// PostRankings returns one page of posts ordered by the requested metric, ties
// broken by comment count and then publish time, both descending. The sort key
// and order must already be validated.
func (s *AnalyticsStore) PostRankings(ctx context.Context, q domain.RankingQuery) ([]domain.PostRanking, error) {
	direction := "DESC"
	if q.Order == "asc" {
		direction = "ASC"
	}

	builder := psql.
		Select(
			"p.id AS post_id",
			"c.username AS candidate_username",
			"p.url",
			"p.caption",
			"p.posted_at",
			"p.like_count",
			"p.comment_count",
			"COALESCE((count(ss.id) FILTER (WHERE ss.final_label = 'positive'))::float / NULLIF(count(ss.id), 0), 0) AS positive_ratio",
			"COALESCE((count(ss.id) FILTER (WHERE ss.final_label = 'negative'))::float / NULLIF(count(ss.id), 0), 0) AS negative_ratio",
			"COALESCE(avg(ss.compound), 0) AS avg_sentiment",
		).
		From("posts p").
		Join("candidates c ON c.id = p.candidate_id").
		LeftJoin("comments cm ON cm.post_id = p.id").
		LeftJoin("sentiment_scores ss ON ss.comment_id = cm.id").
		GroupBy("p.id", "c.username").
		OrderBy(
			rankingSorts[q.SortBy]+" "+direction,
			"p.comment_count DESC",
			"p.posted_at DESC NULLS LAST",
		).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset))

	if q.CandidateID != nil {
		builder = builder.Where(sq.Eq{"p.candidate_id": *q.CandidateID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rankings []domain.PostRanking
	if err := s.db.SelectContext(ctx, &rankings, query, args...); err != nil {
		return nil, err
	}

	return rankings, nil
}

func (s *AnalyticsStore) CountPosts(ctx context.Context, candidateID *uuid.UUID) (int, error) {
	builder := psql.Select("count(*)").From("posts p")
	if candidateID != nil {
		builder = builder.Where(sq.Eq{"p.candidate_id": *candidateID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}

	return count, nil
}

// RecentPostIDs returns the ids of the candidate's most recently published
// posts, newest first.
func (s *AnalyticsStore) RecentPostIDs(ctx context.Context, candidateID uuid.UUID, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM posts
		WHERE candidate_id = $1
		ORDER BY posted_at DESC NULLS LAST
		LIMIT $2`

	var ids []uuid.UUID
	if err := s.db.SelectContext(ctx, &ids, query, candidateID, limit); err != nil {
		return nil, err
	}

	return ids, nil
}

// MeanCompound averages the compound score over every scored comment of the
// given posts, 0 when none are scored.
func (s *AnalyticsStore) MeanCompound(ctx context.Context, postIDs []uuid.UUID) (float64, error) {
	if len(postIDs) == 0 {
		return 0, nil
	}

	ids := make([]string, len(postIDs))
	for i, id := range postIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT COALESCE(avg(ss.compound), 0)
		FROM sentiment_scores ss
		JOIN comments cm ON cm.id = ss.comment_id
		WHERE cm.post_id = ANY($1::uuid[])`

	var mean float64
	if err := s.db.GetContext(ctx, &mean, query, pq.Array(ids)); err != nil {
		return 0, err
	}

	return mean, nil
}

// CommentTexts returns the text of the most recent comments, optionally scoped
// to one candidate.
func (s *AnalyticsStore) CommentTexts(ctx context.Context, candidateID *uuid.UUID, limit int) ([]string, error) {
	builder := psql.
		Select("cm.text").
		From("comments cm").
		Join("posts p ON p.id = cm.post_id").
		OrderBy("cm.created_at DESC").
		Limit(uint64(limit))

	if candidateID != nil {
		builder = builder.Where(sq.Eq{"p.candidate_id": *candidateID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var texts []string
	if err := s.db.SelectContext(ctx, &texts, query, args...); err != nil {
		return nil, err
	}

	return texts, nil
}
