// Package scheduler runs one polling loop per Moltbook endpoint, adapting each
// loop's interval to observed activity and backing off on errors. All loops
// share a single rate budget and a single database writer mutex.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/moltwatch/pkg/backoff"
	"github.com/umputun/moltwatch/pkg/classify"
	"github.com/umputun/moltwatch/pkg/domain"
	"github.com/umputun/moltwatch/pkg/feed"
	"github.com/umputun/moltwatch/pkg/metrics"
	"github.com/umputun/moltwatch/pkg/ratelimit"
)

//go:generate moq -out mocks/feed.go -pkg mocks -skip-ensure -fmt goimports . Feed
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/deduper.go -pkg mocks -skip-ensure -fmt goimports . Deduper
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier
//go:generate moq -out mocks/rate_budget.go -pkg mocks -skip-ensure -fmt goimports . RateBudget
//go:generate moq -out mocks/activity.go -pkg mocks -skip-ensure -fmt goimports . Activity
//go:generate moq -out mocks/robots_checker.go -pkg mocks -skip-ensure -fmt goimports . RobotsChecker
//go:generate moq -out mocks/evolver.go -pkg mocks -skip-ensure -fmt goimports . Evolver

// Feed is the remote API surface the scheduler polls
type Feed interface {
	Posts(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error)
	Comments(ctx context.Context, postID string, sort feed.CommentSort, limit int) ([]domain.Comment, error)
	Submolts(ctx context.Context) ([]domain.Submolt, error)
	LastRateInfo() feed.RateInfo
}

// Store is the persistence surface used by the polling loops
type Store interface {
	SavePost(ctx context.Context, post *domain.Post, matched map[string][]string) error
	SaveComment(ctx context.Context, comment *domain.Comment) error
	SaveSubmolt(ctx context.Context, s *domain.Submolt) error
	GetThemes(ctx context.Context, activeOnly bool) ([]domain.Theme, error)
	GetPollState(ctx context.Context, endpoint string) (*domain.EndpointPollState, error)
	SavePollState(ctx context.Context, state *domain.EndpointPollState) error
}

// Deduper filters already-seen posts before classification
type Deduper interface {
	IsDuplicate(ctx context.Context, post *domain.Post) (bool, error)
	MarkSeen(ctx context.Context, post *domain.Post) error
	Cleanup(ctx context.Context) (int64, error)
}

// Classifier scores an item against the active theme set
type Classifier interface {
	Classify(ctx context.Context, text string, themes []domain.Theme) domain.ClassificationResult
}

// RateBudget is the process-wide request budget shared by all loops
type RateBudget interface {
	CanRequest(budget ratelimit.Budget) bool
	RecordRequest(budget ratelimit.Budget)
	WaitTime() time.Duration
	UpdateFromHeaders(limit, remaining int, resetAt time.Time)
	ResetBudgets()
}

// Activity publishes the process-wide activity spike signal
type Activity interface {
	ActivitySignal(ctx context.Context) (spiking bool, perHour float64, err error)
}

// RobotsChecker answers path permission and crawl-delay questions
type RobotsChecker interface {
	Allowed(ctx context.Context, rawURL string) bool
	CrawlDelay(ctx context.Context, baseURL string) time.Duration
}

// Evolver runs the periodic taxonomy evolution pass
type Evolver interface {
	RunPass(ctx context.Context) ([]domain.ChangelogEntry, error)
}

// endpointState is the explicit per-endpoint scheduling state
type endpointState int

const (
	stateIdle endpointState = iota
	stateDue
	stateFetching
	stateBackoff
)

func (s endpointState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateDue:
		return "due"
	case stateFetching:
		return "fetching"
	case stateBackoff:
		return "backoff"
	}
	return "unknown"
}

// endpointDef is the static description of one polled endpoint
type endpointDef struct {
	name        string
	budget      ratelimit.Budget
	sort        feed.PostSort     // empty for the submolts endpoint
	path        string            // request path, checked against robots.txt
	interval    time.Duration     // nominal
	minInterval time.Duration
	maxInterval time.Duration
}

// polling cadence per endpoint, newest-first feeds are polled most often
var endpointDefs = []endpointDef{
	{name: "posts:new", budget: ratelimit.BudgetNewPosts, sort: feed.SortNew, path: "/api/v1/posts",
		interval: 5 * time.Minute, minInterval: time.Minute, maxInterval: 30 * time.Minute},
	{name: "posts:hot", budget: ratelimit.BudgetTrending, sort: feed.SortHot, path: "/api/v1/posts",
		interval: 15 * time.Minute, minInterval: 5 * time.Minute, maxInterval: time.Hour},
	{name: "posts:top", budget: ratelimit.BudgetTrending, sort: feed.SortTop, path: "/api/v1/posts",
		interval: time.Hour, minInterval: 15 * time.Minute, maxInterval: 6 * time.Hour},
	{name: "posts:rising", budget: ratelimit.BudgetTrending, sort: feed.SortRising, path: "/api/v1/posts",
		interval: 10 * time.Minute, minInterval: 2 * time.Minute, maxInterval: 30 * time.Minute},
	{name: "submolts", budget: ratelimit.BudgetReserve, path: "/api/v1/submolts",
		interval: 6 * time.Hour, minInterval: time.Hour, maxInterval: 24 * time.Hour},
}

// endpoint is the mutable runtime state of one polling loop, owned by its
// worker goroutine
type endpoint struct {
	def      endpointDef
	state    endpointState
	poll     domain.EndpointPollState
	interval time.Duration            // current adaptive interval
	nextAt   time.Time
}

// Config holds scheduler settings
type Config struct {
	FetchLimit            int           // posts per request, default 25
	CommentLimit          int           // comments per request, default 100
	IncludeComments       bool          // fetch comments for first-seen posts
	HighActivityPerMin    float64       // items/min above which the interval halves, default 10
	LowActivityPerMin     float64       // items/min below which the interval doubles, default 1
	TaxonomyPassInterval  time.Duration // default 6h
	DedupCleanupInterval  time.Duration // default 24h
	APIBase               string        // base URL for robots checks, default https://www.moltbook.com
	MaxConcurrentComments int           // default 4
}

// Scheduler owns the per-endpoint polling loops and the periodic maintenance
// workers (budget reset, dedup cleanup, taxonomy pass)
type Scheduler struct {
	feed       Feed
	store      Store
	dedup      Deduper
	classifier Classifier
	budget     RateBudget
	backoff    *backoff.Controller
	robots     RobotsChecker
	activity   Activity
	evolver    Evolver
	metrics    *metrics.Collector
	sentiment  classify.SentimentScorer
	cfg        Config

	dbMutex sync.Mutex         // serialize database writes
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	nowFunc func() time.Time   // for tests
}

// Params groups the scheduler's collaborators
type Params struct {
	Feed       Feed
	Store      Store
	Dedup      Deduper
	Classifier Classifier
	Budget     RateBudget
	Backoff    *backoff.Controller
	Robots     RobotsChecker
	Activity   Activity
	Evolver    Evolver // optional, nil disables the taxonomy pass
	Metrics    *metrics.Collector
	Sentiment  classify.SentimentScorer // optional, nil leaves sentiment unset
	Config     Config
}

// New creates a scheduler, applying defaults for zero config values
func New(p Params) *Scheduler {
	cfg := p.Config
	if cfg.FetchLimit == 0 {
		cfg.FetchLimit = 25
	}
	if cfg.CommentLimit == 0 {
		cfg.CommentLimit = 100
	}
	if cfg.HighActivityPerMin == 0 {
		cfg.HighActivityPerMin = 10
	}
	if cfg.LowActivityPerMin == 0 {
		cfg.LowActivityPerMin = 1
	}
	if cfg.TaxonomyPassInterval == 0 {
		cfg.TaxonomyPassInterval = 6 * time.Hour
	}
	if cfg.DedupCleanupInterval == 0 {
		cfg.DedupCleanupInterval = 24 * time.Hour
	}
	if cfg.APIBase == "" {
		cfg.APIBase = "https://www.moltbook.com"
	}
	if cfg.MaxConcurrentComments == 0 {
		cfg.MaxConcurrentComments = 4
	}
	return &Scheduler{
		feed:       p.Feed,
		store:      p.Store,
		dedup:      p.Dedup,
		classifier: p.Classifier,
		budget:     p.Budget,
		backoff:    p.Backoff,
		robots:     p.Robots,
		activity:   p.Activity,
		evolver:    p.Evolver,
		metrics:    p.Metrics,
		sentiment:  p.Sentiment,
		cfg:        cfg,
		nowFunc:    time.Now,
	}
}

// Start launches one worker per endpoint plus the maintenance workers and
// returns. Use Stop for graceful shutdown.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	eps := make([]*endpoint, 0, len(endpointDefs))
	for _, def := range endpointDefs {
		ep, err := s.restoreEndpoint(ctx, def)
		if err != nil {
			return fmt.Errorf("restore endpoint %s: %w", def.name, err)
		}
		eps = append(eps, ep)
	}

	lgr.Printf("[INFO] starting scheduler with %d endpoints", len(eps))
	for _, ep := range eps {
		s.wg.Add(1)
		go s.endpointWorker(ctx, ep)
	}

	s.wg.Add(1)
	go s.budgetResetWorker(ctx)
	s.wg.Add(1)
	go s.cleanupWorker(ctx)
	if s.evolver != nil {
		s.wg.Add(1)
		go s.taxonomyWorker(ctx)
	}
	return nil
}

// Stop cancels all workers and waits for in-flight work to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// restoreEndpoint loads the persisted poll state so a restart resumes the
// previous schedule instead of hammering every endpoint at once
func (s *Scheduler) restoreEndpoint(ctx context.Context, def endpointDef) (*endpoint, error) {
	ep := &endpoint{def: def, state: stateIdle, interval: def.interval, poll: domain.EndpointPollState{Endpoint: def.name}}

	saved, err := s.store.GetPollState(ctx, def.name)
	if err != nil {
		return nil, fmt.Errorf("get poll state: %w", err)
	}
	if saved == nil {
		ep.nextAt = s.nowFunc() // first run polls immediately
		return ep, nil
	}

	ep.poll = *saved
	if saved.NextPollAt != nil {
		ep.nextAt = *saved.NextPollAt
	} else {
		ep.nextAt = s.nowFunc()
	}
	lgr.Printf("[INFO] restored poll state for %s: last_post_id=%q errors=%d next=%s",
		def.name, saved.LastPostID, saved.ErrorCount, ep.nextAt.Format(time.RFC3339))
	return ep, nil
}

// endpointWorker is the polling loop for one endpoint. Shutdown is checked at
// the top of each iteration, an in-flight poll always runs to completion.
func (s *Scheduler) endpointWorker(ctx context.Context, ep *endpoint) {
	defer s.wg.Done()

	for {
		wait := time.Until(ep.nextAt)
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.persistPollState(ep)
			return
		case <-timer.C:
		}

		ep.state = stateDue
		s.pollOnce(ctx, ep)
		s.persistPollState(ep)
	}
}

// pollOnce runs a single Due -> Fetching -> (Idle | Backoff) transition
func (s *Scheduler) pollOnce(ctx context.Context, ep *endpoint) {
	now := s.nowFunc()

	if !s.robots.Allowed(ctx, s.cfg.APIBase+ep.def.path) {
		lgr.Printf("[WARN] robots.txt disallows %s, skipping %s poll", ep.def.path, ep.def.name)
		ep.state = stateIdle
		ep.nextAt = now.Add(ep.interval)
		s.scheduleNext(ep)
		return
	}

	ep.state = stateFetching
	lastPoll := ep.poll.LastPollAt
	fetched, err := s.runPipeline(ctx, ep)
	finished := s.nowFunc()

	if err != nil {
		if errors.Is(err, context.Canceled) { // shutdown mid-poll is not an endpoint error
			ep.state = stateIdle
			return
		}
		s.handlePollError(ep, err, finished)
		return
	}

	// success resets the error count and returns to the adaptive cadence
	ep.state = stateIdle
	ep.poll.ErrorCount = 0
	ep.poll.LastError = ""
	ep.poll.LastPollAt = &finished
	ep.poll.FetchedLast = fetched
	ep.poll.FetchedTotal += fetched
	s.metrics.FetchSuccess(ep.def.name)

	ep.interval = s.nextInterval(ctx, ep, fetched, lastPoll, finished)
	ep.nextAt = finished.Add(ep.interval)
	s.scheduleNext(ep)
	lgr.Printf("[DEBUG] %s polled %d items, next in %s", ep.def.name, fetched, ep.interval)
}

// handlePollError moves the endpoint through Backoff and schedules the retry
func (s *Scheduler) handlePollError(ep *endpoint, err error, now time.Time) {
	class, retryAfter := classifyError(err, now)
	ep.poll.LastError = err.Error()
	ep.poll.LastPollAt = &now
	s.metrics.FetchError(ep.def.name, string(class))
	lgr.Printf("[WARN] poll %s failed (%s): %v", ep.def.name, class, err)

	if !backoff.Retryable(class) {
		// permanent client error, keep the nominal cadence and move on
		ep.state = stateIdle
		ep.nextAt = now.Add(ep.interval)
		s.scheduleNext(ep)
		return
	}

	ep.state = stateBackoff
	ep.poll.ErrorCount++
	delay := s.backoff.NextDelay(class, ep.poll.ErrorCount, retryAfter)
	s.metrics.BackoffDelay(ep.def.name, delay)
	ep.nextAt = now.Add(delay)
	s.scheduleNext(ep)
	lgr.Printf("[INFO] %s backing off %s after %d errors", ep.def.name, delay, ep.poll.ErrorCount)
}

// nextInterval applies the adaptive rule: an activity spike forces the
// minimum, high item rate halves the current interval, low item rate doubles
// it, anything in between returns to nominal. Crawl-delay is a floor.
func (s *Scheduler) nextInterval(ctx context.Context, ep *endpoint, fetched int, lastPoll *time.Time, now time.Time) time.Duration {
	next := ep.def.interval

	spiking, perHour, err := s.activity.ActivitySignal(ctx)
	if err != nil {
		lgr.Printf("[WARN] activity signal failed: %v", err)
		spiking = false
	}

	switch {
	case spiking:
		lgr.Printf("[INFO] activity spike detected (%.1f posts/hr), %s polling at minimum interval", perHour, ep.def.name)
		next = ep.def.minInterval
	default:
		perMin := itemsPerMinute(fetched, lastPoll, now, ep.interval)
		switch {
		case perMin > s.cfg.HighActivityPerMin:
			next = max(ep.interval/2, ep.def.minInterval)
		case perMin < s.cfg.LowActivityPerMin:
			next = min(ep.interval*2, ep.def.maxInterval)
		}
	}

	if cd := s.robots.CrawlDelay(ctx, s.cfg.APIBase); cd > next {
		next = cd
	}
	return next
}

// itemsPerMinute estimates the observed item rate for the poll that just
// completed. Without a previous poll the current interval stands in for the
// elapsed time.
func itemsPerMinute(fetched int, lastPoll *time.Time, now time.Time, interval time.Duration) float64 {
	elapsed := interval
	if lastPoll != nil {
		elapsed = now.Sub(*lastPoll)
	}
	minutes := elapsed.Minutes()
	if minutes < 1 {
		minutes = 1
	}
	return float64(fetched) / minutes
}

// scheduleNext stamps the computed next-due time into the poll state
func (s *Scheduler) scheduleNext(ep *endpoint) {
	at := ep.nextAt
	ep.poll.NextPollAt = &at
}

// persistPollState saves the endpoint's schedule record, called after every
// poll and on shutdown
func (s *Scheduler) persistPollState(ep *endpoint) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.dbMutex.Lock()
	defer s.dbMutex.Unlock()
	if err := s.store.SavePollState(ctx, &ep.poll); err != nil {
		lgr.Printf("[ERROR] failed to persist poll state for %s: %v", ep.def.name, err)
	}
}

// budgetResetWorker zeroes per-minute budget allocations once a minute
func (s *Scheduler) budgetResetWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.budget.ResetBudgets()
		}
	}
}

// cleanupWorker expires old dedup records on a daily cadence
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.DedupCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.dedup.Cleanup(ctx); err != nil {
				lgr.Printf("[ERROR] dedup cleanup failed: %v", err)
			}
		}
	}
}

// taxonomyWorker runs the evolution pass off the item hot path
func (s *Scheduler) taxonomyWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TaxonomyPassInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			entries, err := s.evolver.RunPass(ctx)
			if err != nil {
				lgr.Printf("[ERROR] taxonomy pass failed: %v", err)
				continue
			}
			for range entries {
				s.metrics.ProposalEmitted()
			}
			if len(entries) > 0 {
				lgr.Printf("[INFO] taxonomy pass emitted %d proposals", len(entries))
			}
		}
	}
}
