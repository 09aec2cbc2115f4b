package taxonomy

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/moltwatch/pkg/domain"
	"github.com/umputun/moltwatch/pkg/taxonomy/mocks"
)

// quietStore returns a mock with benign defaults for the calls every pass makes
func quietStore(themes []domain.Theme) *mocks.StoreMock {
	return &mocks.StoreMock{
		GetThemesFunc: func(ctx context.Context, activeOnly bool) ([]domain.Theme, error) { return themes, nil },
		GetThemeKeywordSetsFunc: func(ctx context.Context, theme string, limit int) (map[string][]string, error) {
			return nil, nil
		},
		GetThemePostIDsFunc: func(ctx context.Context, theme string, limit int) ([]string, error) { return nil, nil },
		LastAssignedAtFunc: func(ctx context.Context, theme string) (*time.Time, error) {
			now := time.Now()
			return &now, nil
		},
		GetUnclassifiedSinceFunc: func(ctx context.Context, since time.Time) ([]domain.Post, error) { return nil, nil },
		AppendChangelogFunc:      func(ctx context.Context, entry *domain.ChangelogEntry) error { return nil },
		DeprecateThemeFunc:       func(ctx context.Context, name string, at time.Time) error { return nil },
	}
}

func TestManager_RunPassQuietTaxonomy(t *testing.T) {
	store := quietStore([]domain.Theme{
		{Name: "small", Keywords: map[string]float64{"a": 1}, Goals: []string{"g"}, PostCount: 5, CreatedAt: time.Now()},
	})
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "healthy taxonomy produces no proposals")
	assert.Empty(t, store.AppendChangelogCalls())
}

func TestManager_DeprecateInactiveSmallTheme(t *testing.T) {
	old := time.Now().Add(-31 * 24 * time.Hour)
	store := quietStore([]domain.Theme{
		{Name: "stale", Keywords: map[string]float64{"a": 1}, Goals: []string{"g"}, PostCount: 7, CreatedAt: old.Add(-time.Hour)},
	})
	store.LastAssignedAtFunc = func(ctx context.Context, theme string) (*time.Time, error) { return &old, nil }
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionDeprecate, entries[0].Action)
	assert.Equal(t, []string{"stale"}, entries[0].Themes)

	require.Len(t, store.DeprecateThemeCalls(), 1)
	assert.Equal(t, "stale", store.DeprecateThemeCalls()[0].Name)
}

func TestManager_NoDeprecateForLargeInactiveTheme(t *testing.T) {
	old := time.Now().Add(-31 * 24 * time.Hour)
	store := quietStore([]domain.Theme{
		{Name: "big", Keywords: map[string]float64{"a": 1}, Goals: []string{"g"}, PostCount: 150, CreatedAt: old},
	})
	store.LastAssignedAtFunc = func(ctx context.Context, theme string) (*time.Time, error) { return &old, nil }
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "150 posts is above the 10-post deprecation threshold")
	assert.Empty(t, store.DeprecateThemeCalls())
}

func TestManager_DeprecateWhenGoalRetired(t *testing.T) {
	old := time.Now().Add(-40 * 24 * time.Hour)
	store := quietStore([]domain.Theme{
		{Name: "big_retired", Keywords: map[string]float64{"a": 1}, Goals: []string{"dead-goal"}, PostCount: 500, CreatedAt: old},
	})
	store.LastAssignedAtFunc = func(ctx context.Context, theme string) (*time.Time, error) { return &old, nil }
	m := New(store, []string{"dead-goal"})

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionDeprecate, entries[0].Action, "retired goal overrides the size threshold")
}

func TestManager_SplitProposal(t *testing.T) {
	store := quietStore([]domain.Theme{
		{Name: "broad", Keywords: map[string]float64{"k1": 1, "k2": 1}, Goals: []string{"g"}, PostCount: 150, CreatedAt: time.Now()},
	})
	// two disjoint vocabulary groups of 25 posts each, zero cross similarity
	store.GetThemeKeywordSetsFunc = func(ctx context.Context, theme string, limit int) (map[string][]string, error) {
		sets := map[string][]string{}
		for i := 0; i < 25; i++ {
			sets[fmt.Sprintf("a%d", i)] = []string{"alpha"}
			sets[fmt.Sprintf("b%d", i)] = []string{"beta"}
		}
		return sets, nil
	}
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, domain.ActionSplit, entry.Action)
	assert.Equal(t, []string{"broad"}, entry.Themes)

	children, ok := entry.Details["children"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 25, children["broad_alpha"])
	assert.Equal(t, 25, children["broad_beta"])
}

func TestManager_NoSplitWhenCohesive(t *testing.T) {
	store := quietStore([]domain.Theme{
		{Name: "tight", Keywords: map[string]float64{"k": 1}, Goals: []string{"g"}, PostCount: 150, CreatedAt: time.Now()},
	})
	// every post matches the same vocabulary, similarity 1.0
	store.GetThemeKeywordSetsFunc = func(ctx context.Context, theme string, limit int) (map[string][]string, error) {
		sets := map[string][]string{}
		for i := 0; i < 60; i++ {
			sets[fmt.Sprintf("p%d", i)] = []string{"same", "words"}
		}
		return sets, nil
	}
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_MergeProposal(t *testing.T) {
	themes := []domain.Theme{
		{Name: "go_lang", Keywords: map[string]float64{"go": 1, "golang": 1, "goroutine": 1}, Goals: []string{"eng"}, PostCount: 50, CreatedAt: time.Now()},
		{Name: "golang_dev", Keywords: map[string]float64{"go": 1, "golang": 1, "channels": 1}, Goals: []string{"eng"}, PostCount: 40, CreatedAt: time.Now()},
	}
	store := quietStore(themes)
	// 8 of 10 post ids shared -> jaccard 8/12 is too low, use 9 of 10 -> 9/11 = 0.818
	store.GetThemePostIDsFunc = func(ctx context.Context, theme string, limit int) ([]string, error) {
		ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}
		if theme == "go_lang" {
			return append(ids, "only-a"), nil
		}
		return append(ids, "only-b"), nil
	}
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, domain.ActionMerge, entry.Action)
	assert.ElementsMatch(t, []string{"go_lang", "golang_dev"}, entry.Themes)
}

func TestManager_NoMergeWhenGoalsDiffer(t *testing.T) {
	themes := []domain.Theme{
		{Name: "a", Keywords: map[string]float64{"go": 1, "golang": 1}, Goals: []string{"eng"}, PostCount: 50, CreatedAt: time.Now()},
		{Name: "b", Keywords: map[string]float64{"go": 1, "golang": 1}, Goals: []string{"marketing"}, PostCount: 40, CreatedAt: time.Now()},
	}
	store := quietStore(themes)
	store.GetThemePostIDsFunc = func(ctx context.Context, theme string, limit int) ([]string, error) {
		return []string{"p1", "p2", "p3", "p4"}, nil
	}
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "identical posts and keywords but different goal sets")
}

func TestManager_EmergingPatternSuggest(t *testing.T) {
	store := quietStore(nil)
	store.GetUnclassifiedSinceFunc = func(ctx context.Context, since time.Time) ([]domain.Post, error) {
		posts := make([]domain.Post, 0, 25)
		for i := 0; i < 25; i++ {
			posts = append(posts, domain.Post{
				ID:      fmt.Sprintf("u%d", i),
				Title:   "agents discussing emergent coordination",
				Content: "coordination patterns between autonomous agents",
			})
		}
		return posts, nil
	}
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, domain.ActionSuggest, entry.Action)
	assert.Equal(t, 25, entry.Details["item_count"])
	samples, ok := entry.Details["sample_ids"].([]string)
	require.True(t, ok)
	assert.Len(t, samples, 5)
	assert.NotEmpty(t, entry.Details["candidate_name"])
}

func TestManager_NoSuggestBelowThreshold(t *testing.T) {
	store := quietStore(nil)
	store.GetUnclassifiedSinceFunc = func(ctx context.Context, since time.Time) ([]domain.Post, error) {
		return []domain.Post{{ID: "u1", Title: "lonely post"}}, nil
	}
	m := New(store, nil)

	entries, err := m.RunPass(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_ApplySuggestCreatesTheme(t *testing.T) {
	proposal := &domain.ChangelogEntry{
		ID:     "prop-1",
		Action: domain.ActionSuggest,
		Details: map[string]any{
			"candidate_name": "agent_coordination",
			"description":    "emerging pattern around agent coordination",
		},
		CreatedAt: time.Now(),
	}
	store := quietStore(nil)
	store.GetChangelogEntryFunc = func(ctx context.Context, id string) (*domain.ChangelogEntry, error) { return proposal, nil }
	store.UpsertThemeFunc = func(ctx context.Context, theme *domain.Theme) error { return nil }
	store.ReviewChangelogFunc = func(ctx context.Context, id, reviewer string, approved bool, at time.Time) error { return nil }
	m := New(store, nil)

	require.NoError(t, m.Apply(context.Background(), "prop-1", "reviewer@ops"))

	upserts := store.UpsertThemeCalls()
	require.Len(t, upserts, 1)
	assert.Equal(t, "agent_coordination", upserts[0].Theme.Name)
	assert.Contains(t, upserts[0].Theme.Keywords, "agent")
	assert.Contains(t, upserts[0].Theme.Keywords, "coordination")

	reviews := store.ReviewChangelogCalls()
	require.Len(t, reviews, 1)
	assert.Equal(t, "reviewer@ops", reviews[0].Reviewer)
	assert.True(t, reviews[0].Approved)

	// the apply also appends the authoritative create entry
	appends := store.AppendChangelogCalls()
	require.Len(t, appends, 1)
	assert.Equal(t, domain.ActionCreate, appends[0].Entry.Action)
}

func TestManager_ApplyMergeFoldsThemes(t *testing.T) {
	proposal := &domain.ChangelogEntry{
		ID:        "prop-2",
		Action:    domain.ActionMerge,
		Themes:    []string{"target", "source"},
		CreatedAt: time.Now(),
	}
	target := &domain.Theme{Name: "target", Keywords: map[string]float64{"shared": 1, "t-only": 2}, Goals: []string{"g"}}
	source := &domain.Theme{Name: "source", Keywords: map[string]float64{"shared": 5, "s-only": 3}, Goals: []string{"g"}}

	store := quietStore(nil)
	store.GetChangelogEntryFunc = func(ctx context.Context, id string) (*domain.ChangelogEntry, error) { return proposal, nil }
	store.GetThemeFunc = func(ctx context.Context, name string) (*domain.Theme, error) {
		if name == "target" {
			return target, nil
		}
		return source, nil
	}
	store.UpsertThemeFunc = func(ctx context.Context, theme *domain.Theme) error { return nil }
	store.ReviewChangelogFunc = func(ctx context.Context, id, reviewer string, approved bool, at time.Time) error { return nil }
	m := New(store, nil)

	require.NoError(t, m.Apply(context.Background(), "prop-2", "reviewer@ops"))

	upserts := store.UpsertThemeCalls()
	require.Len(t, upserts, 1)
	merged := upserts[0].Theme
	assert.Equal(t, 1.0, merged.Keywords["shared"], "existing weight wins on conflict")
	assert.Equal(t, 3.0, merged.Keywords["s-only"], "source-only keyword adopted")

	deps := store.DeprecateThemeCalls()
	require.Len(t, deps, 1)
	assert.Equal(t, "source", deps[0].Name)
}

func TestManager_ApplyRejectsAlreadyReviewed(t *testing.T) {
	reviewed := time.Now()
	proposal := &domain.ChangelogEntry{ID: "prop-3", Action: domain.ActionSuggest, ReviewedAt: &reviewed}
	store := quietStore(nil)
	store.GetChangelogEntryFunc = func(ctx context.Context, id string) (*domain.ChangelogEntry, error) { return proposal, nil }
	m := New(store, nil)

	err := m.Apply(context.Background(), "prop-3", "reviewer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already reviewed")
}

func TestManager_Reject(t *testing.T) {
	proposal := &domain.ChangelogEntry{ID: "prop-4", Action: domain.ActionMerge, Themes: []string{"a", "b"}}
	store := quietStore(nil)
	store.GetChangelogEntryFunc = func(ctx context.Context, id string) (*domain.ChangelogEntry, error) { return proposal, nil }
	store.ReviewChangelogFunc = func(ctx context.Context, id, reviewer string, approved bool, at time.Time) error { return nil }
	m := New(store, nil)

	require.NoError(t, m.Reject(context.Background(), "prop-4", "reviewer"))

	reviews := store.ReviewChangelogCalls()
	require.Len(t, reviews, 1)
	assert.False(t, reviews[0].Approved)
	assert.Empty(t, store.UpsertThemeCalls(), "reject applies nothing")
}
