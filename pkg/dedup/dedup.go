// Package dedup filters already-seen posts. The check is two-stage: external
// identifier membership against the store, then content hash membership. The
// hash covers stable fields only, so score refreshes never produce a false
// "new" item, while identifier churn on reposts is still caught by the hash.
package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/moltwatch/pkg/domain"
)

//go:generate moq -out mocks/seen_store.go -pkg mocks -skip-ensure -fmt goimports . SeenStore

// SeenStore is the persistence interface for seen-post records
type SeenStore interface {
	HasPostID(ctx context.Context, postID string) (bool, error)
	HasContentHash(ctx context.Context, hash string) (bool, error)
	MarkSeen(ctx context.Context, postID, hash string, seenAt time.Time) error
	DeleteSeenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ContentHash computes the stable sha256 dedup key for a post. Mutable fields
// (score, comment count) are excluded on purpose.
func ContentHash(postID, agentID, title, submolt string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%s:%s", postID, agentID, title, submolt))
	return hex.EncodeToString(sum[:])
}

// Filter answers whether a post was seen before and records new ones
type Filter struct {
	store SeenStore
	ttl   time.Duration
}

// NewFilter creates a filter, ttl bounds how long seen records are kept
// (default 90 days)
func NewFilter(store SeenStore, ttl time.Duration) *Filter {
	if ttl == 0 {
		ttl = 90 * 24 * time.Hour
	}
	return &Filter{store: store, ttl: ttl}
}

// IsDuplicate reports whether the post or its content was seen before.
// Either stage hitting means skip.
func (f *Filter) IsDuplicate(ctx context.Context, post *domain.Post) (bool, error) {
	seen, err := f.store.HasPostID(ctx, post.ID)
	if err != nil {
		return false, fmt.Errorf("check post id %s: %w", post.ID, err)
	}
	if seen {
		return true, nil
	}

	hash := post.ContentHash
	if hash == "" {
		hash = ContentHash(post.ID, post.AgentID, post.Title, post.Submolt)
	}
	seen, err = f.store.HasContentHash(ctx, hash)
	if err != nil {
		return false, fmt.Errorf("check content hash: %w", err)
	}
	return seen, nil
}

// MarkSeen records the post so later fetches skip it
func (f *Filter) MarkSeen(ctx context.Context, post *domain.Post) error {
	hash := post.ContentHash
	if hash == "" {
		hash = ContentHash(post.ID, post.AgentID, post.Title, post.Submolt)
	}
	if err := f.store.MarkSeen(ctx, post.ID, hash, time.Now()); err != nil {
		return fmt.Errorf("mark seen %s: %w", post.ID, err)
	}
	return nil
}

// Cleanup removes seen records older than the ttl, returns removed count
func (f *Filter) Cleanup(ctx context.Context) (int64, error) {
	removed, err := f.store.DeleteSeenBefore(ctx, time.Now().Add(-f.ttl))
	if err != nil {
		return 0, fmt.Errorf("cleanup seen records: %w", err)
	}
	if removed > 0 {
		lgr.Printf("[INFO] cleaned up %d expired dedup records", removed)
	}
	return removed, nil
}
