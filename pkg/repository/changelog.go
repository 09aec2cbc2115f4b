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

// ChangelogRepository handles the append-only taxonomy changelog
type ChangelogRepository struct {
	db *sqlx.DB
}

// NewChangelogRepository creates a new changelog repository
func NewChangelogRepository(db *sqlx.DB) *ChangelogRepository {
	return &ChangelogRepository{db: db}
}

// AppendChangelog appends an entry, entries are never updated except for
// review metadata
func (r *ChangelogRepository) AppendChangelog(ctx context.Context, entry *domain.ChangelogEntry) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		createdAt := entry.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		query := `
			INSERT INTO changelog (id, action, themes, details, created_at, reviewed_by)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		_, err := r.db.ExecContext(ctx, query, entry.ID, string(entry.Action),
			StringList(entry.Themes), DetailsMap(entry.Details), createdAt, entry.ReviewedBy)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("append changelog: %w", err)}
		}
		return nil
	})
}

// GetChangelogEntry returns one entry by ID, nil when absent
func (r *ChangelogRepository) GetChangelogEntry(ctx context.Context, id string) (*domain.ChangelogEntry, error) {
	var row dbChangelogEntry
	err := r.db.GetContext(ctx, &row, "SELECT * FROM changelog WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get changelog entry %s: %w", id, err)
	}
	entry := row.toDomain()
	return &entry, nil
}

// ListChangelog returns entries newest first. pendingOnly limits to
// unreviewed proposals.
func (r *ChangelogRepository) ListChangelog(ctx context.Context, pendingOnly bool, limit int) ([]domain.ChangelogEntry, error) {
	query := "SELECT * FROM changelog ORDER BY created_at DESC LIMIT ?"
	if pendingOnly {
		query = "SELECT * FROM changelog WHERE reviewed_at IS NULL ORDER BY created_at DESC LIMIT ?"
	}
	var rows []dbChangelogEntry
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list changelog: %w", err)
	}
	entries := make([]domain.ChangelogEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].toDomain()
	}
	return entries, nil
}

// ReviewChangelog stamps review metadata on an entry, a second review is
// rejected at this level too
func (r *ChangelogRepository) ReviewChangelog(ctx context.Context, id, reviewer string, approved bool, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE changelog SET reviewed_at = ?, reviewed_by = ?, approved = ? WHERE id = ? AND reviewed_at IS NULL",
		at, reviewer, approved, id)
	if err != nil {
		return fmt.Errorf("review changelog %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("changelog entry %s not found or already reviewed", id)
	}
	return nil
}
