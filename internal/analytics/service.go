package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"campaign_pulse/internal/domain"
)

const (
	defaultTimelineDays = 30
	defaultRankingSort  = "comment_count"
	defaultRankingLimit = 20
	maxRankingLimit     = 100
	trendWindow         = 5
	trendThreshold      = 0.02
	topThemeCount       = 3
	snapshotThemeCount  = 5
	wordCloudSample     = 10000
	maxWordCloudWords   = 200
)

// SortKeys enumerates the accepted ranking sort keys.
var SortKeys = map[string]bool{
	"comment_count":  true,
	"like_count":     true,
	"positive_ratio": true,
	"negative_ratio": true,
	"avg_sentiment":  true,
}

// Service computes the dashboard aggregations. All operations are pure reads.
type Service struct {
	store Store
	runs  RunSource
}

func NewService(store Store, runs RunSource) *Service {
	return &Service{store: store, runs: runs}
}

func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	overviews, err := s.store.CandidateOverviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate overviews: %w", err)
	}

	total := 0
	for _, overview := range overviews {
		total += overview.TotalComments
	}

	lastScrape, err := s.runs.LastFinishedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last scrape time: %w", err)
	}

	return &domain.Overview{
		Candidates:            overviews,
		TotalCommentsAnalyzed: total,
		LastScrape:            lastScrape,
	}, nil
}

// Timeline returns per-post sentiment over the trailing window, oldest first.
// A non-positive days value falls back to the default window.
func (s *Service) Timeline(ctx context.Context, candidateID *uuid.UUID, days int) ([]domain.TimelinePoint, error) {
	if days <= 0 {
		days = defaultTimelineDays
	}
	until := time.Now().UTC()
	since := until.AddDate(0, 0, -days)

	points, err := s.store.Timeline(ctx, candidateID, since, until)
	if err != nil {
		return nil, fmt.Errorf("load timeline: %w", err)
	}
	if points == nil {
		points = []domain.TimelinePoint{}
	}

	return points, nil
}

// ThemeDistribution reports the share of each theme among tagged comments,
// with the per-candidate split of every count. Percentages are computed
// against the scope's total, which an empty scope treats as zero share.
func (s *Service) ThemeDistribution(ctx context.Context, candidateID *uuid.UUID) (*domain.ThemeDistribution, error) {
	rows, err := s.store.ThemeCountsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("load theme counts: %w", err)
	}

	totals := make(map[domain.Theme]int)
	perTheme := make(map[domain.Theme][]domain.CandidateThemeCount)
	totalTagged := 0
	for _, row := range rows {
		totals[row.Theme] += row.Count
		perTheme[row.Theme] = append(perTheme[row.Theme], row)
		totalTagged += row.Count
	}

	denominator := totalTagged
	if denominator == 0 {
		denominator = 1
	}

	themes := make([]domain.ThemeSlice, 0, len(totals))
	for theme, count := range totals {
		themes = append(themes, domain.ThemeSlice{
			Theme:       theme,
			Count:       count,
			Percentage:  round2(float64(count) * 100 / float64(denominator)),
			ByCandidate: perTheme[theme],
		})
	}
	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Count != themes[j].Count {
			return themes[i].Count > themes[j].Count
		}
		return themes[i].Theme < themes[j].Theme
	})

	return &domain.ThemeDistribution{Themes: themes, TotalTagged: totalTagged}, nil
}

// Rankings returns one page of posts ordered by the requested metric. Missing
// or out-of-range query fields fall back to defaults.
func (s *Service) Rankings(ctx context.Context, q domain.RankingQuery) (*domain.RankingPage, error) {
	if !SortKeys[q.SortBy] {
		q.SortBy = defaultRankingSort
	}
	if q.Order != "asc" {
		q.Order = "desc"
	}
	if q.Limit <= 0 {
		q.Limit = defaultRankingLimit
	}
	if q.Limit > maxRankingLimit {
		q.Limit = maxRankingLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	posts, err := s.store.PostRankings(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load post rankings: %w", err)
	}
	if posts == nil {
		posts = []domain.PostRanking{}
	}

	total, err := s.store.CountPosts(ctx, q.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	return &domain.RankingPage{
		Posts:  posts,
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}

// Comparison puts the candidates side by side: overview metrics, their three
// strongest themes and the sentiment trend over recent posts.
func (s *Service) Comparison(ctx context.Context) (*domain.Comparison, error) {
	overviews, err := s.store.CandidateOverviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate overviews: %w", err)
	}

	comparison := &domain.Comparison{
		Candidates:  make([]domain.CandidateComparison, 0, len(overviews)),
		GeneratedAt: time.Now().UTC(),
	}
	for _, overview := range overviews {
		counts, err := s.store.ThemeCounts(ctx, &overview.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("load themes for %s: %w", overview.Username, err)
		}
		if len(counts) > topThemeCount {
			counts = counts[:topThemeCount]
		}

		trend, err := s.trend(ctx, overview.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("compute trend for %s: %w", overview.Username, err)
		}

		comparison.Candidates = append(comparison.Candidates, domain.CandidateComparison{
			CandidateOverview: overview,
			TopThemes:         counts,
			Trend:             trend,
		})
	}

	return comparison, nil
}

// Snapshot condenses the analytics state for the suggestion provider:
// overview metrics plus the strongest real themes per candidate, the
// catch-all excluded.
func (s *Service) Snapshot(ctx context.Context, candidateID *uuid.UUID) (*domain.AnalyticsSnapshot, error) {
	overviews, err := s.store.CandidateOverviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate overviews: %w", err)
	}
	if candidateID != nil {
		scoped := make([]domain.CandidateOverview, 0, 1)
		for _, overview := range overviews {
			if overview.CandidateID == *candidateID {
				scoped = append(scoped, overview)
			}
		}
		overviews = scoped
	}

	topThemes := make(map[string][]domain.ThemeCount, len(overviews))
	total := 0
	for _, overview := range overviews {
		counts, err := s.store.ThemeCounts(ctx, &overview.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("load themes for %s: %w", overview.Username, err)
		}
		top := make([]domain.ThemeCount, 0, snapshotThemeCount)
		for _, count := range counts {
			if count.Theme == domain.ThemeOutros {
				continue
			}
			top = append(top, count)
			if len(top) == snapshotThemeCount {
				break
			}
		}
		topThemes[overview.Username] = top
		total += overview.TotalComments
	}

	lastScrape, err := s.runs.LastFinishedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last scrape time: %w", err)
	}

	return &domain.AnalyticsSnapshot{
		Candidates:            overviews,
		TopThemes:             topThemes,
		TotalCommentsAnalyzed: total,
		LastScrape:            lastScrape,
	}, nil
}

// WordCloud tokenizes recent comment text into ranked phrases.
func (s *Service) WordCloud(ctx context.Context, candidateID *uuid.UUID, limit int) (*domain.WordCloud, error) {
	if limit <= 0 || limit > maxWordCloudWords {
		limit = maxWordCloudWords
	}

	texts, err := s.store.CommentTexts(ctx, candidateID, wordCloudSample)
	if err != nil {
		return nil, fmt.Errorf("load comment texts: %w", err)
	}

	return buildWordCloud(texts, limit), nil
}

// trend compares the mean compound score of the candidate's five most recent
// posts against the five before those.
func (s *Service) trend(ctx context.Context, candidateID uuid.UUID) (domain.Trend, error) {
	ids, err := s.store.RecentPostIDs(ctx, candidateID, 2*trendWindow)
	if err != nil {
		return domain.Trend{}, err
	}

	recent, previous := splitWindows(ids)

	recentAvg, err := s.windowMean(ctx, recent)
	if err != nil {
		return domain.Trend{}, err
	}
	previousAvg, err := s.windowMean(ctx, previous)
	if err != nil {
		return domain.Trend{}, err
	}

	complete := len(recent) == trendWindow && len(previous) == trendWindow
	return classifyTrend(recentAvg, previousAvg, complete), nil
}

func splitWindows(ids []uuid.UUID) (recent, previous []uuid.UUID) {
	if len(ids) <= trendWindow {
		return ids, nil
	}
	return ids[:trendWindow], ids[trendWindow:]
}

// windowMean reports 0.0 for a window with fewer than trendWindow posts, so a
// thin history never reads as a signal.
func (s *Service) windowMean(ctx context.Context, ids []uuid.UUID) (float64, error) {
	if len(ids) < trendWindow {
		return 0, nil
	}
	return s.store.MeanCompound(ctx, ids)
}

// classifyTrend derives the direction from the delta between the window
// means. Incomplete windows classify as stable regardless of delta.
func classifyTrend(recentAvg, previousAvg float64, complete bool) domain.Trend {
	trend := domain.Trend{
		Direction:   domain.TrendStable,
		RecentAvg:   round4(recentAvg),
		PreviousAvg: round4(previousAvg),
		Delta:       round4(recentAvg - previousAvg),
	}
	if !complete {
		return trend
	}

	switch {
	case trend.Delta > trendThreshold:
		trend.Direction = domain.TrendImproving
	case trend.Delta < -trendThreshold:
		trend.Direction = domain.TrendDeclining
	}

	return trend
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
