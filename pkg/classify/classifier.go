// Package classify scores post content against the active theme set. The
// rule-based scorer is pure computation and always authoritative; an optional
// LLM enhancer runs with a hard deadline and its output is merged only on
// success, never blocking the pipeline.
package classify

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/moltwatch/pkg/domain"
)

//go:generate moq -out mocks/enhancer.go -pkg mocks -skip-ensure -fmt goimports . Enhancer

// assignment and confidence thresholds
const (
	assignThreshold    = 0.3 // minimum normalized score for theme assignment
	minimalThreshold   = 0.2 // below this for all themes the item is an unclassified candidate
	ambiguityGap       = 0.1 // top-two gap under which confidence averages them
	maxAssignedThemes  = 5
	defaultEnhancerTTL = 10 * time.Second
)

// Enhancer is the optional external classification collaborator. Failure or
// timeout must degrade silently to the rule-based result.
type Enhancer interface {
	Enhance(ctx context.Context, content string, candidates []string, goals []string) (*EnhanceResult, error)
}

// EnhanceResult is the enhancer's response
type EnhanceResult struct {
	Themes          []string
	Confidence      float64
	SuggestedTheme  string // optional new-theme suggestion
	SuggestedReason string
}

// SentimentScorer maps text to polarity in [-1, 1]. Nil content yields a nil
// score, never an error.
type SentimentScorer func(text string) *float64

// Engine is the rule-based classification engine
type Engine struct {
	enhancer        Enhancer
	enhancerTimeout time.Duration
	sanitizer       *bluemonday.Policy
}

// NewEngine creates an engine. The enhancer may be nil, making classification
// purely rule-based.
func NewEngine(enhancer Enhancer, enhancerTimeout time.Duration) *Engine {
	if enhancerTimeout == 0 {
		enhancerTimeout = defaultEnhancerTTL
	}
	return &Engine{
		enhancer:        enhancer,
		enhancerTimeout: enhancerTimeout,
		sanitizer:       bluemonday.StrictPolicy(),
	}
}

// Classify scores text against the active themes and assigns the best
// matches. Deprecated themes are skipped. The result is ephemeral, the caller
// projects it onto the post.
func (e *Engine) Classify(ctx context.Context, text string, themes []domain.Theme) domain.ClassificationResult {
	res := e.score(text, themes)

	if e.enhancer == nil {
		return res
	}

	enhanced, err := e.consultEnhancer(ctx, text, res, themes)
	if err != nil {
		// rule-based result is authoritative, degradation is silent by contract
		lgr.Printf("[DEBUG] enhancer unavailable, using rule-based result: %v", err)
		return res
	}
	return e.merge(res, enhanced, themes)
}

// score runs the pure rule-based pass, no suspension points
func (e *Engine) score(text string, themes []domain.Theme) domain.ClassificationResult {
	normalized := strings.ToLower(e.sanitizer.Sanitize(text))

	scores := make(map[string]float64, len(themes))
	matchedKw := make(map[string][]string, len(themes))
	for _, theme := range themes {
		if !theme.Active() {
			continue
		}
		total := theme.TotalWeight()
		if total <= 0 {
			scores[theme.Name] = 0
			continue
		}
		matched := 0.0
		var found []string
		for kw, weight := range theme.Keywords {
			if strings.Contains(normalized, strings.ToLower(kw)) {
				matched += weight
				found = append(found, kw)
			}
		}
		scores[theme.Name] = matched / total
		if len(found) > 0 {
			sort.Strings(found)
			matchedKw[theme.Name] = found
		}
	}

	ranked := make([]string, 0, len(scores))
	for name := range scores {
		ranked = append(ranked, name)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i] < ranked[j] // stable order for equal scores
	})

	assigned := make([]string, 0, maxAssignedThemes)
	for _, name := range ranked {
		if scores[name] < assignThreshold || len(assigned) == maxAssignedThemes {
			break
		}
		assigned = append(assigned, name)
	}

	confidence := 0.0
	if len(ranked) > 0 {
		confidence = scores[ranked[0]]
		if len(ranked) > 1 && scores[ranked[0]]-scores[ranked[1]] < ambiguityGap {
			// genuine ambiguity between close candidates
			confidence = (scores[ranked[0]] + scores[ranked[1]]) / 2
		}
	}

	unclassified := true
	for _, s := range scores {
		if s > minimalThreshold {
			unclassified = false
			break
		}
	}

	return domain.ClassificationResult{
		Scores:       scores,
		Assigned:     assigned,
		Matched:      matchedKw,
		Confidence:   confidence,
		Unclassified: unclassified,
	}
}

// consultEnhancer calls the external enhancer under a hard deadline
func (e *Engine) consultEnhancer(ctx context.Context, text string, res domain.ClassificationResult,
	themes []domain.Theme) (*EnhanceResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.enhancerTimeout)
	defer cancel()

	candidates := make([]string, 0, len(themes))
	goalSet := map[string]struct{}{}
	for _, th := range themes {
		if !th.Active() {
			continue
		}
		candidates = append(candidates, th.Name)
		for _, g := range th.Goals {
			goalSet[g] = struct{}{}
		}
	}
	goals := make([]string, 0, len(goalSet))
	for g := range goalSet {
		goals = append(goals, g)
	}
	sort.Strings(goals)

	return e.enhancer.Enhance(ctx, text, candidates, goals)
}

// merge folds enhancer output into the rule-based result. Only themes known
// to the taxonomy are accepted, the cap of 5 still applies, and confidence
// only moves up.
func (e *Engine) merge(res domain.ClassificationResult, enhanced *EnhanceResult, themes []domain.Theme) domain.ClassificationResult {
	known := make(map[string]struct{}, len(themes))
	for _, th := range themes {
		if th.Active() {
			known[th.Name] = struct{}{}
		}
	}
	have := make(map[string]struct{}, len(res.Assigned))
	for _, name := range res.Assigned {
		have[name] = struct{}{}
	}

	for _, name := range enhanced.Themes {
		if len(res.Assigned) >= maxAssignedThemes {
			break
		}
		if _, ok := known[name]; !ok {
			continue
		}
		if _, ok := have[name]; ok {
			continue
		}
		res.Assigned = append(res.Assigned, name)
		have[name] = struct{}{}
	}

	if len(res.Assigned) > 0 {
		res.Unclassified = false
	}
	if enhanced.Confidence > res.Confidence && enhanced.Confidence <= 1.0 {
		res.Confidence = enhanced.Confidence
	}
	return res
}
