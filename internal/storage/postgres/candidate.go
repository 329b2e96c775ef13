package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campaign_pulse/internal/domain"
)

type CandidateStore struct {
	db *sqlx.DB
}

func NewCandidateStore(db *sqlx.DB) *CandidateStore {
	return &CandidateStore{db: db}
}

// Ensure inserts the candidate or refreshes its display name, returning the
// stored row either way.
func (s *CandidateStore) Ensure(ctx context.Context, username, displayName string) (*domain.Candidate, error) {
	query := `
		INSERT INTO candidates (id, username, display_name)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (username) DO UPDATE SET
			display_name = COALESCE(NULLIF(EXCLUDED.display_name, ''), candidates.display_name),
			updated_at = now()
		RETURNING id, username, display_name, is_active, created_at, updated_at`

	var candidate domain.Candidate
	if err := s.db.GetContext(ctx, &candidate, query, uuid.New(), username, displayName); err != nil {
		return nil, err
	}

	return &candidate, nil
}

func (s *CandidateStore) ListActive(ctx context.Context) ([]domain.Candidate, error) {
	query := `
		SELECT id, username, display_name, is_active, created_at, updated_at
		FROM candidates
		WHERE is_active
		ORDER BY username`

	var candidates []domain.Candidate
	if err := s.db.SelectContext(ctx, &candidates, query); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (s *CandidateStore) GetByUsername(ctx context.Context, username string) (*domain.Candidate, error) {
	query := `
		SELECT id, username, display_name, is_active, created_at, updated_at
		FROM candidates
		WHERE username = $1`

	var candidate domain.Candidate
	err := s.db.GetContext(ctx, &candidate, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}

	return &candidate, nil
}
