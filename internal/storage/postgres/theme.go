package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"campaign_pulse/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ThemeStore struct {
	db *sqlx.DB
}

func NewThemeStore(db *sqlx.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// ListUntagged returns comments without any theme tag, oldest first.
func (s *ThemeStore) ListUntagged(ctx context.Context) ([]domain.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.scraping_run_id, c.external_id, c.text,
			c.author_username, c.like_count, c.reply_count, c.commented_at,
			c.scraped_at, c.raw_data, c.created_at
		FROM comments c
		WHERE NOT EXISTS (SELECT 1 FROM themes t WHERE t.comment_id = c.id)
		ORDER BY c.created_at`

	var comments []domain.Comment
	if err := s.db.SelectContext(ctx, &comments, query); err != nil {
		return nil, err
	}

	return comments, nil
}

// ListEnrichable returns comments whose only tag is the keyword catch-all, so
// the probabilistic pass can try to place them in a real theme.
func (s *ThemeStore) ListEnrichable(ctx context.Context) ([]domain.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.scraping_run_id, c.external_id, c.text,
			c.author_username, c.like_count, c.reply_count, c.commented_at,
			c.scraped_at, c.raw_data, c.created_at
		FROM comments c
		WHERE EXISTS (
				SELECT 1 FROM themes t
				WHERE t.comment_id = c.id AND t.theme = $1 AND t.method = $2
			)
			AND NOT EXISTS (
				SELECT 1 FROM themes t
				WHERE t.comment_id = c.id AND (t.theme <> $1 OR t.method <> $2)
			)
		ORDER BY c.created_at`

	var comments []domain.Comment
	err := s.db.SelectContext(ctx, &comments, query, domain.ThemeOutros, domain.MethodKeyword)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// InsertTags stores a batch of theme tags, ignoring ones already present for
// the same comment, theme and method. It joins the transaction carried by ctx
// when there is one.
func (s *ThemeStore) InsertTags(ctx context.Context, tags []domain.ThemeTag) error {
	if len(tags) == 0 {
		return nil
	}

	builder := psql.Insert("themes").Columns("id", "comment_id", "theme", "confidence", "method")
	for _, tag := range tags {
		builder = builder.Values(tag.ID, tag.CommentID, tag.Theme, tag.Confidence, tag.Method)
	}

	query, args, err := builder.Suffix("ON CONFLICT (comment_id, theme, method) DO NOTHING").ToSql()
	if err != nil {
		return err
	}

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	return err
}
