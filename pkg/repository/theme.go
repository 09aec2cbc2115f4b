package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/moltwatch/pkg/domain"
)

// ThemeRepository handles taxonomy theme persistence
type ThemeRepository struct {
	db *sqlx.DB
}

// NewThemeRepository creates a new theme repository
func NewThemeRepository(db *sqlx.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// GetThemes returns all themes, optionally only non-deprecated ones
func (r *ThemeRepository) GetThemes(ctx context.Context, activeOnly bool) ([]domain.Theme, error) {
	query := "SELECT * FROM themes ORDER BY name"
	if activeOnly {
		query = "SELECT * FROM themes WHERE deprecated_at IS NULL ORDER BY name"
	}
	var rows []dbTheme
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get themes: %w", err)
	}
	themes := make([]domain.Theme, len(rows))
	for i := range rows {
		themes[i] = rows[i].toDomain()
	}
	return themes, nil
}

// GetTheme returns one theme by name, nil when absent
func (r *ThemeRepository) GetTheme(ctx context.Context, name string) (*domain.Theme, error) {
	var row dbTheme
	err := r.db.GetContext(ctx, &row, "SELECT * FROM themes WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get theme %s: %w", name, err)
	}
	theme := row.toDomain()
	return &theme, nil
}

// UpsertTheme inserts or fully replaces a theme definition
func (r *ThemeRepository) UpsertTheme(ctx context.Context, theme *domain.Theme) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		createdAt := theme.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		var deprecatedAt sql.NullTime
		if theme.DeprecatedAt != nil {
			deprecatedAt = sql.NullTime{Time: *theme.DeprecatedAt, Valid: true}
		}

		query := `
			INSERT INTO themes (name, description, keywords, goals, parent, post_count, created_at, deprecated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				description = excluded.description,
				keywords = excluded.keywords,
				goals = excluded.goals,
				parent = excluded.parent,
				deprecated_at = excluded.deprecated_at
		`
		_, err := r.db.ExecContext(ctx, query, theme.Name, theme.Description,
			KeywordMap(theme.Keywords), StringList(theme.Goals), theme.Parent,
			theme.PostCount, createdAt, deprecatedAt)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert theme: %w", err)}
		}
		return nil
	})
}

// DeprecateTheme soft-deletes a theme, history stays queryable
func (r *ThemeRepository) DeprecateTheme(ctx context.Context, name string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE themes SET deprecated_at = ? WHERE name = ? AND deprecated_at IS NULL", at, name)
	if err != nil {
		return fmt.Errorf("deprecate theme %s: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("theme %s not found or already deprecated", name)
	}
	return nil
}
