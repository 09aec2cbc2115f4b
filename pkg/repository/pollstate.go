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

// PollStateRepository persists per-endpoint scheduler state across restarts
type PollStateRepository struct {
	db *sqlx.DB
}

// NewPollStateRepository creates a new poll state repository
func NewPollStateRepository(db *sqlx.DB) *PollStateRepository {
	return &PollStateRepository{db: db}
}

// GetPollState returns the persisted state for an endpoint, nil when absent
func (r *PollStateRepository) GetPollState(ctx context.Context, endpoint string) (*domain.EndpointPollState, error) {
	var row dbPollState
	err := r.db.GetContext(ctx, &row, "SELECT * FROM poll_state WHERE endpoint = ?", endpoint)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get poll state %s: %w", endpoint, err)
	}
	state := row.toDomain()
	return &state, nil
}

// ListPollStates returns all persisted endpoint states
func (r *PollStateRepository) ListPollStates(ctx context.Context) ([]domain.EndpointPollState, error) {
	var rows []dbPollState
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM poll_state ORDER BY endpoint"); err != nil {
		return nil, fmt.Errorf("list poll states: %w", err)
	}
	states := make([]domain.EndpointPollState, len(rows))
	for i := range rows {
		states[i] = rows[i].toDomain()
	}
	return states, nil
}

// SavePollState upserts the full state row for an endpoint
func (r *PollStateRepository) SavePollState(ctx context.Context, state *domain.EndpointPollState) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		var lastPoll, nextPoll sql.NullTime
		if state.LastPollAt != nil {
			lastPoll = sql.NullTime{Time: *state.LastPollAt, Valid: true}
		}
		if state.NextPollAt != nil {
			nextPoll = sql.NullTime{Time: *state.NextPollAt, Valid: true}
		}

		query := `
			INSERT INTO poll_state (endpoint, last_post_id, last_poll_at, next_poll_at,
				error_count, last_error, fetched_last, fetched_total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(endpoint) DO UPDATE SET
				last_post_id = excluded.last_post_id,
				last_poll_at = excluded.last_poll_at,
				next_poll_at = excluded.next_poll_at,
				error_count = excluded.error_count,
				last_error = excluded.last_error,
				fetched_last = excluded.fetched_last,
				fetched_total = excluded.fetched_total
		`
		_, err := r.db.ExecContext(ctx, query, state.Endpoint, state.LastPostID,
			lastPoll, nextPoll, state.ErrorCount, state.LastError,
			state.FetchedLast, state.FetchedTotal)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save poll state: %w", err)}
		}
		return nil
	})
}
