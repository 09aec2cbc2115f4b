package domain

import "time"

// Theme is a named classification bucket with weighted keywords.
// Every active theme serves at least one research goal.
type Theme struct {
	Name         string
	Description  string
	Keywords     map[string]float64
	Goals        []string
	Parent       string // optional parent theme name
	PostCount    int
	CreatedAt    time.Time
	DeprecatedAt *time.Time
}

// Active reports whether the theme participates in classification scoring
func (t *Theme) Active() bool {
	return t.DeprecatedAt == nil
}

// TotalWeight returns the sum of all keyword weights
func (t *Theme) TotalWeight() float64 {
	total := 0.0
	for _, w := range t.Keywords {
		total += w
	}
	return total
}

// ClassificationResult is the ephemeral output of scoring one item
// against the active theme set. It is projected onto the post, never stored.
type ClassificationResult struct {
	Scores       map[string]float64
	Assigned     []string            // descending by score, capped at 5
	Matched      map[string][]string // theme -> keywords found in the text, feeds taxonomy split analysis
	Confidence   float64
	Unclassified bool // no theme reached the minimal score, candidate for pattern detection
}

// ChangeAction is the kind of taxonomy mutation recorded in the changelog
type ChangeAction string

// taxonomy changelog actions
const (
	ActionCreate    ChangeAction = "create"
	ActionMerge     ChangeAction = "merge"
	ActionSplit     ChangeAction = "split"
	ActionDeprecate ChangeAction = "deprecate"
	ActionUpdate    ChangeAction = "update"
	ActionSuggest   ChangeAction = "suggest"
)

// ChangelogEntry is an immutable audit record of a taxonomy mutation or
// proposal. Only review metadata may be attached after creation.
type ChangelogEntry struct {
	ID         string
	Action     ChangeAction
	Themes     []string
	Details    map[string]any
	CreatedAt  time.Time
	ReviewedAt *time.Time
	ReviewedBy string
	Approved   *bool // nil until reviewed
}

// Reviewed reports whether a human has processed the entry
func (e *ChangelogEntry) Reviewed() bool {
	return e.ReviewedAt != nil
}
