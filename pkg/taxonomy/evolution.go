// Package taxonomy evolves the theme set over time. A periodic batch pass
// evaluates every active theme and cross-theme pair and emits split, merge,
// deprecate and suggest proposals to the changelog. Proposals never mutate
// themes directly; the authoritative state change happens only through the
// explicitly invoked, human-approved Apply step.
package taxonomy

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/moltwatch/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// evolution trigger thresholds
const (
	splitMinPosts        = 100
	splitMaxSimilarity   = 0.5
	splitMinClusterSize  = 20
	mergeMinPostJaccard  = 0.7
	mergeMinKeywordShare = 0.5
	deprecateInactivity  = 30 * 24 * time.Hour
	deprecateMaxPosts    = 10
	suggestMinItems      = 20
	suggestWindow        = 24 * time.Hour
)

// Store is the persistence interface for taxonomy evolution
type Store interface {
	GetThemes(ctx context.Context, activeOnly bool) ([]domain.Theme, error)
	GetTheme(ctx context.Context, name string) (*domain.Theme, error)
	UpsertTheme(ctx context.Context, theme *domain.Theme) error
	DeprecateTheme(ctx context.Context, name string, at time.Time) error
	GetThemePostIDs(ctx context.Context, theme string, limit int) ([]string, error)
	GetThemeKeywordSets(ctx context.Context, theme string, limit int) (map[string][]string, error)
	LastAssignedAt(ctx context.Context, theme string) (*time.Time, error)
	GetUnclassifiedSince(ctx context.Context, since time.Time) ([]domain.Post, error)
	AppendChangelog(ctx context.Context, entry *domain.ChangelogEntry) error
	GetChangelogEntry(ctx context.Context, id string) (*domain.ChangelogEntry, error)
	ReviewChangelog(ctx context.Context, id string, reviewer string, approved bool, at time.Time) error
}

// Manager runs the evolution pass and serves the review/apply operations
type Manager struct {
	store        Store
	retiredGoals map[string]struct{} // research goals marked no-longer-relevant
	sampleLimit  int                 // posts sampled per theme for similarity estimation
}

// New creates a manager. retiredGoals lists research goals the operator has
// marked no-longer-relevant; themes serving only those become deprecation
// candidates regardless of size.
func New(store Store, retiredGoals []string) *Manager {
	retired := make(map[string]struct{}, len(retiredGoals))
	for _, g := range retiredGoals {
		retired[g] = struct{}{}
	}
	return &Manager{store: store, retiredGoals: retired, sampleLimit: 500}
}

// RunPass evaluates all triggers and appends proposals to the changelog.
// Returns the emitted entries.
func (m *Manager) RunPass(ctx context.Context) ([]domain.ChangelogEntry, error) {
	themes, err := m.store.GetThemes(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("get active themes: %w", err)
	}

	var emitted []domain.ChangelogEntry

	for _, theme := range themes {
		if entry, err := m.checkSplit(ctx, theme); err != nil {
			lgr.Printf("[WARN] split check for %s: %v", theme.Name, err)
		} else if entry != nil {
			emitted = append(emitted, *entry)
		}

		if entry, err := m.checkDeprecate(ctx, theme); err != nil {
			lgr.Printf("[WARN] deprecate check for %s: %v", theme.Name, err)
		} else if entry != nil {
			emitted = append(emitted, *entry)
		}
	}

	mergeEntries, err := m.checkMerges(ctx, themes)
	if err != nil {
		lgr.Printf("[WARN] merge pass: %v", err)
	}
	emitted = append(emitted, mergeEntries...)

	if entry, err := m.checkEmergingPattern(ctx); err != nil {
		lgr.Printf("[WARN] emerging pattern check: %v", err)
	} else if entry != nil {
		emitted = append(emitted, *entry)
	}

	if len(emitted) > 0 {
		lgr.Printf("[INFO] taxonomy pass emitted %d proposals", len(emitted))
	}
	return emitted, nil
}

// checkSplit proposes splitting a large, internally dissimilar theme
func (m *Manager) checkSplit(ctx context.Context, theme domain.Theme) (*domain.ChangelogEntry, error) {
	if theme.PostCount <= splitMinPosts {
		return nil, nil
	}

	kwSets, err := m.store.GetThemeKeywordSets(ctx, theme.Name, m.sampleLimit)
	if err != nil {
		return nil, fmt.Errorf("keyword sets: %w", err)
	}
	if len(kwSets) < 2 {
		return nil, nil
	}

	if sim := meanPairwiseJaccard(kwSets); sim >= splitMaxSimilarity {
		return nil, nil
	}

	clusters := clusterByDominantKeyword(kwSets)
	proposed := map[string]int{}
	viable := false
	for kw, members := range clusters {
		proposed[fmt.Sprintf("%s_%s", theme.Name, kw)] = len(members)
		if len(members) >= splitMinClusterSize {
			viable = true
		}
	}
	if !viable {
		return nil, nil
	}

	entry := m.newEntry(domain.ActionSplit, []string{theme.Name}, map[string]any{
		"reason":     "low intra-cluster keyword similarity",
		"post_count": theme.PostCount,
		"children":   proposed,
	})
	if err := m.store.AppendChangelog(ctx, entry); err != nil {
		return nil, fmt.Errorf("append split proposal: %w", err)
	}
	return entry, nil
}

// checkDeprecate proposes and soft-deletes inactive themes. Deprecation is
// the one trigger that applies its state change immediately, the changelog
// entry still records it for the audit trail.
func (m *Manager) checkDeprecate(ctx context.Context, theme domain.Theme) (*domain.ChangelogEntry, error) {
	last, err := m.store.LastAssignedAt(ctx, theme.Name)
	if err != nil {
		return nil, fmt.Errorf("last assigned: %w", err)
	}

	inactiveSince := theme.CreatedAt
	if last != nil {
		inactiveSince = *last
	}
	if time.Since(inactiveSince) < deprecateInactivity {
		return nil, nil
	}

	goalRetired := false
	for _, g := range theme.Goals {
		if _, ok := m.retiredGoals[g]; ok {
			goalRetired = true
			break
		}
	}
	if theme.PostCount >= deprecateMaxPosts && !goalRetired {
		return nil, nil
	}

	now := time.Now()
	if err := m.store.DeprecateTheme(ctx, theme.Name, now); err != nil {
		return nil, fmt.Errorf("deprecate theme %s: %w", theme.Name, err)
	}

	entry := m.newEntry(domain.ActionDeprecate, []string{theme.Name}, map[string]any{
		"post_count":   theme.PostCount,
		"goal_retired": goalRetired,
		"inactive_for": time.Since(inactiveSince).String(),
	})
	if err := m.store.AppendChangelog(ctx, entry); err != nil {
		return nil, fmt.Errorf("append deprecate entry: %w", err)
	}
	lgr.Printf("[INFO] deprecated theme %s (%d posts, inactive since %s)", theme.Name, theme.PostCount, inactiveSince.Format(time.RFC3339))
	return entry, nil
}

// checkMerges proposes merging theme pairs with overlapping posts, keywords
// and identical goal sets
func (m *Manager) checkMerges(ctx context.Context, themes []domain.Theme) ([]domain.ChangelogEntry, error) {
	postSets := make(map[string]map[string]struct{}, len(themes))
	for _, th := range themes {
		ids, err := m.store.GetThemePostIDs(ctx, th.Name, m.sampleLimit)
		if err != nil {
			return nil, fmt.Errorf("post ids for %s: %w", th.Name, err)
		}
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		postSets[th.Name] = set
	}

	var emitted []domain.ChangelogEntry
	for i := 0; i < len(themes); i++ {
		for j := i + 1; j < len(themes); j++ {
			a, b := themes[i], themes[j]
			if !sameGoals(a.Goals, b.Goals) {
				continue
			}
			if jaccard(postSets[a.Name], postSets[b.Name]) <= mergeMinPostJaccard {
				continue
			}
			if keywordOverlap(a.Keywords, b.Keywords) <= mergeMinKeywordShare {
				continue
			}

			entry := m.newEntry(domain.ActionMerge, []string{a.Name, b.Name}, map[string]any{
				"post_jaccard":    jaccard(postSets[a.Name], postSets[b.Name]),
				"keyword_overlap": keywordOverlap(a.Keywords, b.Keywords),
				"goals":           a.Goals,
			})
			if err := m.store.AppendChangelog(ctx, entry); err != nil {
				return emitted, fmt.Errorf("append merge proposal: %w", err)
			}
			emitted = append(emitted, *entry)
		}
	}
	return emitted, nil
}

// checkEmergingPattern suggests a new theme when enough unclassified items
// with shared vocabulary accumulate in the last day
func (m *Manager) checkEmergingPattern(ctx context.Context) (*domain.ChangelogEntry, error) {
	posts, err := m.store.GetUnclassifiedSince(ctx, time.Now().Add(-suggestWindow))
	if err != nil {
		return nil, fmt.Errorf("unclassified posts: %w", err)
	}
	if len(posts) < suggestMinItems {
		return nil, nil
	}

	top := frequentWords(posts, 5)
	if len(top) == 0 {
		return nil, nil
	}

	samples := make([]string, 0, 5)
	for i := 0; i < len(posts) && i < 5; i++ {
		samples = append(samples, posts[i].ID)
	}

	candidate := strings.Join(top, "_")
	entry := m.newEntry(domain.ActionSuggest, nil, map[string]any{
		"candidate_name": candidate,
		"description":    fmt.Sprintf("emerging pattern around: %s", strings.Join(top, ", ")),
		"item_count":     len(posts),
		"sample_ids":     samples,
	})
	if err := m.store.AppendChangelog(ctx, entry); err != nil {
		return nil, fmt.Errorf("append suggest entry: %w", err)
	}
	return entry, nil
}

// Apply executes a human-approved proposal. This is the only path that
// creates or renames themes from evolution triggers.
func (m *Manager) Apply(ctx context.Context, entryID, reviewer string) error {
	entry, err := m.store.GetChangelogEntry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get changelog entry %s: %w", entryID, err)
	}
	if entry.Reviewed() {
		return fmt.Errorf("entry %s already reviewed", entryID)
	}

	switch entry.Action {
	case domain.ActionSuggest:
		if err := m.applySuggest(ctx, entry); err != nil {
			return err
		}
	case domain.ActionMerge:
		if err := m.applyMerge(ctx, entry); err != nil {
			return err
		}
	case domain.ActionSplit, domain.ActionDeprecate:
		// split application needs new theme definitions supplied by the
		// operator; deprecation already happened at proposal time. Either way
		// only review metadata is recorded here.
	default:
		return fmt.Errorf("entry %s action %q is not applicable", entryID, entry.Action)
	}

	if err := m.store.ReviewChangelog(ctx, entryID, reviewer, true, time.Now()); err != nil {
		return fmt.Errorf("record review: %w", err)
	}
	lgr.Printf("[INFO] applied %s proposal %s, reviewed by %s", entry.Action, entryID, reviewer)
	return nil
}

// Reject records a negative review without applying anything
func (m *Manager) Reject(ctx context.Context, entryID, reviewer string) error {
	entry, err := m.store.GetChangelogEntry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get changelog entry %s: %w", entryID, err)
	}
	if entry.Reviewed() {
		return fmt.Errorf("entry %s already reviewed", entryID)
	}
	if err := m.store.ReviewChangelog(ctx, entryID, reviewer, false, time.Now()); err != nil {
		return fmt.Errorf("record review: %w", err)
	}
	return nil
}

// applySuggest creates the proposed theme with keywords seeded from the
// suggestion details
func (m *Manager) applySuggest(ctx context.Context, entry *domain.ChangelogEntry) error {
	name, _ := entry.Details["candidate_name"].(string)
	if name == "" {
		return fmt.Errorf("suggest entry %s has no candidate name", entry.ID)
	}
	desc, _ := entry.Details["description"].(string)

	keywords := map[string]float64{}
	for _, part := range strings.Split(name, "_") {
		keywords[part] = 1.0
	}

	theme := &domain.Theme{
		Name:        name,
		Description: desc,
		Keywords:    keywords,
		Goals:       []string{"emerging"},
		CreatedAt:   time.Now(),
	}
	if err := m.store.UpsertTheme(ctx, theme); err != nil {
		return fmt.Errorf("create suggested theme %s: %w", name, err)
	}

	created := m.newEntry(domain.ActionCreate, []string{name}, map[string]any{"from_proposal": entry.ID})
	if err := m.store.AppendChangelog(ctx, created); err != nil {
		return fmt.Errorf("append create entry: %w", err)
	}
	return nil
}

// applyMerge folds the second theme into the first: keywords united, the
// source deprecated
func (m *Manager) applyMerge(ctx context.Context, entry *domain.ChangelogEntry) error {
	if len(entry.Themes) != 2 {
		return fmt.Errorf("merge entry %s names %d themes, want 2", entry.ID, len(entry.Themes))
	}
	target, err := m.store.GetTheme(ctx, entry.Themes[0])
	if err != nil {
		return fmt.Errorf("get merge target: %w", err)
	}
	source, err := m.store.GetTheme(ctx, entry.Themes[1])
	if err != nil {
		return fmt.Errorf("get merge source: %w", err)
	}

	for kw, w := range source.Keywords {
		if _, ok := target.Keywords[kw]; !ok {
			target.Keywords[kw] = w
		}
	}
	if err := m.store.UpsertTheme(ctx, target); err != nil {
		return fmt.Errorf("update merge target: %w", err)
	}
	if err := m.store.DeprecateTheme(ctx, source.Name, time.Now()); err != nil {
		return fmt.Errorf("deprecate merge source: %w", err)
	}
	return nil
}

func (m *Manager) newEntry(action domain.ChangeAction, themes []string, details map[string]any) *domain.ChangelogEntry {
	return &domain.ChangelogEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Themes:    themes,
		Details:   details,
		CreatedAt: time.Now(),
	}
}

// jaccard computes set similarity |A∩B| / |A∪B|
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// keywordOverlap is the share of the smaller keyword set present in the other
func keywordOverlap(a, b map[string]float64) float64 {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	if len(small) == 0 {
		return 0
	}
	shared := 0
	for kw := range small {
		if _, ok := large[kw]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}

func sameGoals(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string{}, a...)
	bs := append([]string{}, b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// meanPairwiseJaccard estimates intra-cluster similarity over per-post
// matched-keyword sets
func meanPairwiseJaccard(kwSets map[string][]string) float64 {
	sets := make([]map[string]struct{}, 0, len(kwSets))
	for _, kws := range kwSets {
		set := make(map[string]struct{}, len(kws))
		for _, kw := range kws {
			set[kw] = struct{}{}
		}
		sets = append(sets, set)
	}

	pairs, total := 0, 0.0
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			total += jaccard(sets[i], sets[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 1.0
	}
	return total / float64(pairs)
}

// clusterByDominantKeyword groups posts by their first matched keyword, a
// cheap co-occurrence proxy good enough for split proposals
func clusterByDominantKeyword(kwSets map[string][]string) map[string][]string {
	clusters := map[string][]string{}
	for id, kws := range kwSets {
		if len(kws) == 0 {
			continue
		}
		dominant := kws[0]
		clusters[dominant] = append(clusters[dominant], id)
	}
	return clusters
}

// frequentWords returns the most common words of length > 3 across
// unclassified post titles and content
func frequentWords(posts []domain.Post, top int) []string {
	counts := map[string]int{}
	for _, p := range posts {
		for _, w := range strings.Fields(strings.ToLower(p.Title + " " + p.Content)) {
			w = strings.Trim(w, ".,!?;:\"'()[]")
			if len(w) > 3 {
				counts[w]++
			}
		}
	}

	words := make([]string, 0, len(counts))
	for w, n := range counts {
		if n >= 2 { // a word must repeat across posts to count as shared vocabulary
			words = append(words, w)
		}
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > top {
		words = words[:top]
	}
	return words
}
