package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"campaign_pulse/internal/domain"
)

type RunStore struct {
	db *sqlx.DB
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Create(ctx context.Context, run *domain.ScrapingRun) error {
	query := `
		INSERT INTO scraping_runs (id, started_at, status, triggered_by, errors)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, run.ID, run.StartedAt, run.Status, run.TriggeredBy, run.Errors)
	return err
}

func (s *RunStore) Update(ctx context.Context, run *domain.ScrapingRun) error {
	query := `
		UPDATE scraping_runs SET
			completed_at = $2,
			status = $3,
			posts_scraped = $4,
			comments_scraped = $5,
			duration_seconds = $6,
			errors = $7
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query,
		run.ID,
		run.CompletedAt,
		run.Status,
		run.PostsScraped,
		run.CommentsScraped,
		run.DurationSeconds,
		run.Errors,
	)
	return err
}

// FailStale marks runs still recorded as running as failed. It is called once
// at startup, when no run can actually be in flight, to reconcile rows left
// behind by a crash. Returns the number of rows reconciled.
func (s *RunStore) FailStale(ctx context.Context) (int, error) {
	query := `
		UPDATE scraping_runs SET
			status = $1,
			completed_at = now(),
			duration_seconds = EXTRACT(EPOCH FROM (now() - started_at))
		WHERE status = $2`

	result, err := s.db.ExecContext(ctx, query, domain.RunFailed, domain.RunRunning)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}

// Latest returns the most recently started run, or nil when none exist.
func (s *RunStore) Latest(ctx context.Context) (*domain.ScrapingRun, error) {
	query := `
		SELECT id, started_at, completed_at, status, triggered_by,
			posts_scraped, comments_scraped, duration_seconds, errors
		FROM scraping_runs
		ORDER BY started_at DESC
		LIMIT 1`

	return s.getRun(ctx, query)
}

// LatestFinished returns the most recent run that reached a terminal status,
// or nil when none exist.
func (s *RunStore) LatestFinished(ctx context.Context) (*domain.ScrapingRun, error) {
	query := `
		SELECT id, started_at, completed_at, status, triggered_by,
			posts_scraped, comments_scraped, duration_seconds, errors
		FROM scraping_runs
		WHERE status <> 'running'
		ORDER BY started_at DESC
		LIMIT 1`

	return s.getRun(ctx, query)
}

// LastFinishedAt returns when the last run with any scraped data finished, or
// nil when no run has succeeded yet.
func (s *RunStore) LastFinishedAt(ctx context.Context) (*time.Time, error) {
	query := `
		SELECT max(completed_at)
		FROM scraping_runs
		WHERE status IN ('completed', 'partial')`

	var finished sql.NullTime
	if err := s.db.GetContext(ctx, &finished, query); err != nil {
		return nil, err
	}
	if !finished.Valid {
		return nil, nil
	}

	return &finished.Time, nil
}

func (s *RunStore) getRun(ctx context.Context, query string, args ...any) (*domain.ScrapingRun, error) {
	var run domain.ScrapingRun
	err := s.db.GetContext(ctx, &run, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &run, nil
}
