package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/moltwatch/pkg/dedup/mocks"
	"github.com/umputun/moltwatch/pkg/domain"
)

func TestContentHash_StableUnderScoreChange(t *testing.T) {
	h1 := ContentHash("p1", "agent1", "some title", "golang")
	h2 := ContentHash("p1", "agent1", "some title", "golang")
	assert.Equal(t, h1, h2, "same stable fields, same hash")
	assert.Len(t, h1, 64, "hex sha256")

	// hashing uses only stable fields, the post score is not part of the key
	p1 := &domain.Post{ID: "p1", AgentID: "agent1", Title: "some title", Submolt: "golang", Score: 5}
	p2 := &domain.Post{ID: "p1", AgentID: "agent1", Title: "some title", Submolt: "golang", Score: 9000}
	assert.Equal(t,
		ContentHash(p1.ID, p1.AgentID, p1.Title, p1.Submolt),
		ContentHash(p2.ID, p2.AgentID, p2.Title, p2.Submolt))
}

func TestContentHash_Distinct(t *testing.T) {
	base := ContentHash("p1", "a1", "title", "sub")
	assert.NotEqual(t, base, ContentHash("p2", "a1", "title", "sub"))
	assert.NotEqual(t, base, ContentHash("p1", "a2", "title", "sub"))
	assert.NotEqual(t, base, ContentHash("p1", "a1", "other", "sub"))
	assert.NotEqual(t, base, ContentHash("p1", "a1", "title", "other"))
}

func TestFilter_IsDuplicateByID(t *testing.T) {
	store := &mocks.SeenStoreMock{
		HasPostIDFunc: func(ctx context.Context, postID string) (bool, error) { return postID == "seen", nil },
		HasContentHashFunc: func(ctx context.Context, hash string) (bool, error) { return false, nil },
	}
	f := NewFilter(store, 0)

	dup, err := f.IsDuplicate(context.Background(), &domain.Post{ID: "seen", AgentID: "a", Title: "t", Submolt: "s"})
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Empty(t, store.HasContentHashCalls(), "id hit short-circuits the hash check")

	dup, err = f.IsDuplicate(context.Background(), &domain.Post{ID: "new", AgentID: "a", Title: "t", Submolt: "s"})
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Len(t, store.HasContentHashCalls(), 1)
}

func TestFilter_IsDuplicateByHash(t *testing.T) {
	knownHash := ContentHash("orig", "a1", "crossposted title", "golang")
	store := &mocks.SeenStoreMock{
		HasPostIDFunc:      func(ctx context.Context, postID string) (bool, error) { return false, nil },
		HasContentHashFunc: func(ctx context.Context, hash string) (bool, error) { return hash == knownHash, nil },
	}
	f := NewFilter(store, 0)

	// repost with a fresh id but identical stable content
	repost := &domain.Post{ID: "orig", AgentID: "a1", Title: "crossposted title", Submolt: "golang"}
	repost.ContentHash = knownHash
	repost.ID = "new-id"
	dup, err := f.IsDuplicate(context.Background(), repost)
	require.NoError(t, err)
	assert.True(t, dup, "caught by content hash despite new id")
}

func TestFilter_MarkSeen(t *testing.T) {
	store := &mocks.SeenStoreMock{
		MarkSeenFunc: func(ctx context.Context, postID, hash string, seenAt time.Time) error { return nil },
	}
	f := NewFilter(store, 0)

	post := &domain.Post{ID: "p1", AgentID: "a1", Title: "t", Submolt: "s"}
	require.NoError(t, f.MarkSeen(context.Background(), post))

	calls := store.MarkSeenCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "p1", calls[0].PostID)
	assert.Equal(t, ContentHash("p1", "a1", "t", "s"), calls[0].Hash)
}

func TestFilter_Cleanup(t *testing.T) {
	var gotCutoff time.Time
	store := &mocks.SeenStoreMock{
		DeleteSeenBeforeFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			gotCutoff = cutoff
			return 7, nil
		},
	}
	f := NewFilter(store, 30*24*time.Hour)

	removed, err := f.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), gotCutoff, time.Minute)
}
