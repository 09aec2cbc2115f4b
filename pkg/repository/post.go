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

// PostRepository handles post, comment and dedup persistence
type PostRepository struct {
	db *sqlx.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// SavePost upserts a post with its classification. matched carries the theme
// keywords found in the post and feeds the taxonomy split analysis. On
// conflict the volatile fields (score, comment count, classification,
// last_seen_at) are refreshed and first_seen_at is preserved.
func (r *PostRepository) SavePost(ctx context.Context, post *domain.Post, matched map[string][]string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		now := time.Now()
		firstSeen := post.FirstSeenAt
		if firstSeen.IsZero() {
			firstSeen = now
		}
		lastSeen := post.LastSeenAt
		if lastSeen.IsZero() {
			lastSeen = now
		}

		var sentiment sql.NullFloat64
		if post.Sentiment != nil {
			sentiment = sql.NullFloat64{Float64: *post.Sentiment, Valid: true}
		}

		query := `
			INSERT INTO posts (
				id, title, content, url, submolt, agent_id, score, comment_count,
				created_at, content_hash, themes, confidence, sentiment, unclassified,
				first_seen_at, last_seen_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				score = excluded.score,
				comment_count = excluded.comment_count,
				themes = excluded.themes,
				confidence = excluded.confidence,
				sentiment = excluded.sentiment,
				unclassified = excluded.unclassified,
				last_seen_at = excluded.last_seen_at
		`
		_, err := r.db.ExecContext(ctx, query,
			post.ID, post.Title, post.Content, post.URL, post.Submolt, post.AgentID,
			post.Score, post.CommentCount, nullTime(post.CreatedAt), post.ContentHash,
			StringList(post.Themes), post.Confidence, sentiment, post.Unclassified,
			firstSeen, lastSeen)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save post: %w", err)}
		}

		for _, theme := range post.Themes {
			res, err := r.db.ExecContext(ctx,
				`INSERT OR IGNORE INTO post_themes (post_id, theme, matched_keywords, assigned_at) VALUES (?, ?, ?, ?)`,
				post.ID, theme, StringList(matched[theme]), now)
			if err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("save theme assignment: %w", err)}
			}
			if n, _ := res.RowsAffected(); n > 0 {
				if _, err := r.db.ExecContext(ctx,
					`UPDATE themes SET post_count = post_count + 1 WHERE name = ?`, theme); err != nil {
					if isLockError(err) {
						return err
					}
					return &criticalError{err: fmt.Errorf("bump theme count: %w", err)}
				}
			}
		}
		return nil
	})
}

// GetPost retrieves a post by ID, nil when absent
func (r *PostRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	var p dbPost
	err := r.db.GetContext(ctx, &p, "SELECT * FROM posts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return p.toDomain(), nil
}

// ListRecent returns the newest posts by first-seen time
func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Post, error) {
	var rows []dbPost
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM posts ORDER BY first_seen_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	posts := make([]*domain.Post, len(rows))
	for i := range rows {
		posts[i] = rows[i].toDomain()
	}
	return posts, nil
}

// SaveComment upserts a comment, volatile score refreshed on conflict
func (r *PostRepository) SaveComment(ctx context.Context, comment *domain.Comment) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO comments (id, post_id, parent_id, content, agent_id, score, created_at, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET score = excluded.score, fetched_at = excluded.fetched_at
		`
		_, err := r.db.ExecContext(ctx, query, comment.ID, comment.PostID, comment.ParentID,
			comment.Content, comment.AgentID, comment.Score, nullTime(comment.CreatedAt), time.Now())
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("save comment: %w", err)}
		}
		return nil
	})
}

// SaveSubmolt upserts a community record
func (r *PostRepository) SaveSubmolt(ctx context.Context, s *domain.Submolt) error {
	query := `
		INSERT INTO submolts (name, display_name, description, subscriber_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			display_name = excluded.display_name,
			description = excluded.description,
			subscriber_count = excluded.subscriber_count,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, s.Name, s.DisplayName, s.Description,
		s.SubscriberCount, nullTime(s.CreatedAt), time.Now()); err != nil {
		return fmt.Errorf("save submolt %s: %w", s.Name, err)
	}
	return nil
}

// SaveAgent upserts an agent profile
func (r *PostRepository) SaveAgent(ctx context.Context, a *domain.Agent) error {
	query := `
		INSERT INTO agents (id, name, description, karma, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			karma = excluded.karma,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Description,
		a.Karma, nullTime(a.CreatedAt), time.Now()); err != nil {
		return fmt.Errorf("save agent %s: %w", a.ID, err)
	}
	return nil
}

// HasPostID reports dedup membership by post ID
func (r *PostRepository) HasPostID(ctx context.Context, postID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM seen_posts WHERE post_id = ?)", postID)
	if err != nil {
		return false, fmt.Errorf("check seen post id: %w", err)
	}
	return exists, nil
}

// HasContentHash reports dedup membership by content hash
func (r *PostRepository) HasContentHash(ctx context.Context, hash string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM seen_posts WHERE content_hash = ?)", hash)
	if err != nil {
		return false, fmt.Errorf("check seen content hash: %w", err)
	}
	return exists, nil
}

// MarkSeen records dedup membership, repeats bump the seen counter
func (r *PostRepository) MarkSeen(ctx context.Context, postID, hash string, seenAt time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO seen_posts (post_id, content_hash, first_seen_at, last_seen_at, seen_count)
			VALUES (?, ?, ?, ?, 1)
			ON CONFLICT(post_id) DO UPDATE SET
				last_seen_at = excluded.last_seen_at,
				seen_count = seen_count + 1
		`
		if _, err := r.db.ExecContext(ctx, query, postID, hash, seenAt, seenAt); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("mark seen: %w", err)}
		}
		return nil
	})
}

// DeleteSeenBefore removes expired dedup records, returns removed count
func (r *PostRepository) DeleteSeenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM seen_posts WHERE last_seen_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete seen before %s: %w", cutoff, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get removed count: %w", err)
	}
	return removed, nil
}

// CountThemePosts counts posts and distinct authors assigned to a theme in
// the time range, by first-seen time
func (r *PostRepository) CountThemePosts(ctx context.Context, theme string, from, to time.Time) (posts, uniqueAuthors int, err error) {
	query := `
		SELECT COUNT(*), COUNT(DISTINCT p.agent_id)
		FROM post_themes pt JOIN posts p ON p.id = pt.post_id
		WHERE pt.theme = ? AND p.first_seen_at >= ? AND p.first_seen_at < ?
	`
	row := r.db.QueryRowContext(ctx, query, theme, from, to)
	if err := row.Scan(&posts, &uniqueAuthors); err != nil {
		return 0, 0, fmt.Errorf("count theme posts: %w", err)
	}
	return posts, uniqueAuthors, nil
}

// CountAllPosts counts posts first seen in the time range
func (r *PostRepository) CountAllPosts(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM posts WHERE first_seen_at >= ? AND first_seen_at < ?", from, to)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// GetThemePostIDs returns post IDs assigned to a theme, newest first
func (r *PostRepository) GetThemePostIDs(ctx context.Context, theme string, limit int) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		"SELECT post_id FROM post_themes WHERE theme = ? ORDER BY assigned_at DESC LIMIT ?", theme, limit)
	if err != nil {
		return nil, fmt.Errorf("get theme post ids: %w", err)
	}
	return ids, nil
}

// GetThemeKeywordSets returns per-post matched keyword sets for a theme
func (r *PostRepository) GetThemeKeywordSets(ctx context.Context, theme string, limit int) (map[string][]string, error) {
	var rows []struct {
		PostID   string     `db:"post_id"`
		Keywords StringList `db:"matched_keywords"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT post_id, matched_keywords FROM post_themes WHERE theme = ? ORDER BY assigned_at DESC LIMIT ?",
		theme, limit)
	if err != nil {
		return nil, fmt.Errorf("get theme keyword sets: %w", err)
	}
	sets := make(map[string][]string, len(rows))
	for _, row := range rows {
		sets[row.PostID] = row.Keywords
	}
	return sets, nil
}

// LastAssignedAt returns when a theme last received a post, nil when never
func (r *PostRepository) LastAssignedAt(ctx context.Context, theme string) (*time.Time, error) {
	var last sql.NullTime
	err := r.db.GetContext(ctx, &last,
		"SELECT MAX(assigned_at) FROM post_themes WHERE theme = ?", theme)
	if err != nil {
		return nil, fmt.Errorf("get last assignment: %w", err)
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

// GetUnclassifiedSince returns posts no theme claimed, for emerging-pattern
// detection
func (r *PostRepository) GetUnclassifiedSince(ctx context.Context, since time.Time) ([]domain.Post, error) {
	var rows []dbPost
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM posts WHERE unclassified = 1 AND first_seen_at >= ? ORDER BY first_seen_at", since)
	if err != nil {
		return nil, fmt.Errorf("get unclassified posts: %w", err)
	}
	posts := make([]domain.Post, len(rows))
	for i := range rows {
		posts[i] = *rows[i].toDomain()
	}
	return posts, nil
}

// nullTime maps the zero time to NULL
func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
