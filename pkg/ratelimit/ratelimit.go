// Package ratelimit implements the process-wide request budget for the
// Moltbook API. It keeps three independent sliding windows (minute, hour, day)
// and tracks the rate limit state reported by API response headers, preferring
// the server's own accounting when it is available.
package ratelimit

import (
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Budget is a request category with its own share of the minute cap
type Budget string

// request budget categories, allocation must sum to 100%
const (
	BudgetNewPosts Budget = "new_posts"
	BudgetTrending Budget = "trending"
	BudgetComments Budget = "comments"
	BudgetAgents   Budget = "agents"
	BudgetReserve  Budget = "reserve"
)

var budgetAllocation = map[Budget]float64{
	BudgetNewPosts: 0.40,
	BudgetTrending: 0.20,
	BudgetComments: 0.20,
	BudgetAgents:   0.10,
	BudgetReserve:  0.10,
}

// Config holds rate limiter settings
type Config struct {
	PerMinute        int
	PerHour          int
	PerDay           int
	WarningThreshold float64 // fraction of a cap that triggers a warning log
}

// DefaultConfig returns the Moltbook API limits
func DefaultConfig() Config {
	return Config{PerMinute: 100, PerHour: 5000, PerDay: 50000, WarningThreshold: 0.80}
}

// apiState is the latest rate limit info parsed from response headers
type apiState struct {
	limit     int
	remaining int
	resetAt   time.Time
	updatedAt time.Time
}

// Tracker is a sliding window rate limiter shared by all endpoint pollers.
// Window pruning is lazy, performed on each call, keeping memory bounded by
// the number of requests made in the last day.
type Tracker struct {
	cfg Config

	mu      sync.Mutex
	minute  []time.Time
	hour    []time.Time
	day     []time.Time
	usage   map[Budget]int
	api     apiState
	nowFunc func() time.Time // for tests
}

// NewTracker creates a tracker with the given config, applying defaults for
// zero values
func NewTracker(cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.PerMinute == 0 {
		cfg.PerMinute = def.PerMinute
	}
	if cfg.PerHour == 0 {
		cfg.PerHour = def.PerHour
	}
	if cfg.PerDay == 0 {
		cfg.PerDay = def.PerDay
	}
	if cfg.WarningThreshold == 0 {
		cfg.WarningThreshold = def.WarningThreshold
	}
	return &Tracker{cfg: cfg, usage: map[Budget]int{}, nowFunc: time.Now}
}

// CanRequest reports whether a request is allowed right now. A request passes
// only when all three windows are under their caps and the API has not
// reported an exhausted remaining count with a pending reset. When a budget
// category is given, its allocation of the minute cap is checked too, with
// spill into the reserve share once exhausted.
func (t *Tracker) CanRequest(budget Budget) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.nowFunc()
	t.prune(now)
	return t.allowedLocked(now, budget)
}

// allowedLocked is the admission predicate shared by CanRequest and GetStatus,
// caller must hold the lock and prune first
func (t *Tracker) allowedLocked(now time.Time, budget Budget) bool {
	if len(t.minute) >= t.cfg.PerMinute || len(t.hour) >= t.cfg.PerHour || len(t.day) >= t.cfg.PerDay {
		return false
	}

	// server-side accounting wins when it says stop
	if t.api.updatedAt != (time.Time{}) && t.api.remaining <= 0 && now.Before(t.api.resetAt) {
		return false
	}

	if budget != "" {
		maxForBudget := int(float64(t.cfg.PerMinute) * budgetAllocation[budget])
		if t.usage[budget] >= maxForBudget {
			reserveLeft := int(float64(t.cfg.PerMinute)*budgetAllocation[BudgetReserve]) - t.usage[BudgetReserve]
			if reserveLeft <= 0 {
				return false
			}
		}
	}
	return true
}

// RecordRequest appends the current timestamp to all three windows and
// charges the budget category
func (t *Tracker) RecordRequest(budget Budget) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.nowFunc()
	t.minute = append(t.minute, now)
	t.hour = append(t.hour, now)
	t.day = append(t.day, now)
	if budget == "" {
		budget = BudgetReserve
	}
	t.usage[budget]++

	t.warnThresholds()
}

// WaitTime returns how long to wait until the most constraining window frees
// a slot, zero when a request can be made immediately
func (t *Tracker) WaitTime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.nowFunc()
	t.prune(now)

	if len(t.minute) >= t.cfg.PerMinute {
		if w := t.minute[0].Add(time.Minute).Sub(now); w > 0 {
			return w
		}
	}
	if len(t.hour) >= t.cfg.PerHour {
		if w := t.hour[0].Add(time.Hour).Sub(now); w > 0 {
			return w
		}
	}
	if len(t.day) >= t.cfg.PerDay {
		if w := t.day[0].Add(24 * time.Hour).Sub(now); w > 0 {
			return w
		}
	}
	if t.api.updatedAt != (time.Time{}) && t.api.remaining <= 0 {
		if w := t.api.resetAt.Sub(now); w > 0 {
			return w
		}
	}
	return 0
}

// UpdateFromHeaders records the X-RateLimit-* values from an API response.
// Zero values for limit mean the header was absent and leave state untouched.
func (t *Tracker) UpdateFromHeaders(limit, remaining int, resetAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if limit <= 0 {
		return
	}
	t.api = apiState{limit: limit, remaining: remaining, resetAt: resetAt, updatedAt: t.nowFunc()}

	used := 1.0 - float64(remaining)/float64(limit)
	if used >= t.cfg.WarningThreshold {
		lgr.Printf("[WARN] approaching api rate limit: %d/%d remaining (%.0f%% used)", remaining, limit, used*100)
	}
}

// ResetBudgets zeroes per-minute budget usage, called once a minute by the scheduler
func (t *Tracker) ResetBudgets() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for b := range t.usage {
		t.usage[b] = 0
	}
}

// TierStatus describes one window's usage
type TierStatus struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// Status is a snapshot of all windows for the status endpoint
type Status struct {
	Minute      TierStatus     `json:"minute"`
	Hour        TierStatus     `json:"hour"`
	Day         TierStatus     `json:"day"`
	BudgetUsage map[Budget]int `json:"budget_usage"`
	CanRequest  bool           `json:"can_request"`
	WaitSeconds float64        `json:"wait_time_seconds"`
}

// GetStatus returns the current usage snapshot
func (t *Tracker) GetStatus() Status {
	wait := t.WaitTime()

	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.nowFunc()
	t.prune(now)

	usage := make(map[Budget]int, len(t.usage))
	for b, n := range t.usage {
		usage[b] = n
	}
	return Status{
		Minute:      TierStatus{Used: len(t.minute), Limit: t.cfg.PerMinute, Remaining: t.cfg.PerMinute - len(t.minute)},
		Hour:        TierStatus{Used: len(t.hour), Limit: t.cfg.PerHour, Remaining: t.cfg.PerHour - len(t.hour)},
		Day:         TierStatus{Used: len(t.day), Limit: t.cfg.PerDay, Remaining: t.cfg.PerDay - len(t.day)},
		BudgetUsage: usage,
		CanRequest:  t.allowedLocked(now, ""),
		WaitSeconds: wait.Seconds(),
	}
}

// prune drops timestamps outside each window, caller must hold the lock
func (t *Tracker) prune(now time.Time) {
	t.minute = dropBefore(t.minute, now.Add(-time.Minute))
	t.hour = dropBefore(t.hour, now.Add(-time.Hour))
	t.day = dropBefore(t.day, now.Add(-24*time.Hour))
}

// warnThresholds logs when any tier crosses the warning threshold,
// caller must hold the lock
func (t *Tracker) warnThresholds() {
	check := func(tier string, used, limit int) {
		if float64(used)/float64(limit) >= t.cfg.WarningThreshold {
			lgr.Printf("[WARN] %s limit at %d%% (%d/%d)", tier, used*100/limit, used, limit)
		}
	}
	check("minute", len(t.minute), t.cfg.PerMinute)
	check("hour", len(t.hour), t.cfg.PerHour)
	check("day", len(t.day), t.cfg.PerDay)
}

// dropBefore removes timestamps at or before the cutoff. A timestamp exactly
// window-age old is expired, matching WaitTime which promises a free slot the
// instant the oldest entry reaches the window boundary.
func dropBefore(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return ts
	}
	return append(ts[:0], ts[i:]...)
}
