package scheduler

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/moltwatch/pkg/backoff"
	"github.com/umputun/moltwatch/pkg/domain"
	"github.com/umputun/moltwatch/pkg/feed"
	"github.com/umputun/moltwatch/pkg/metrics"
	"github.com/umputun/moltwatch/pkg/ratelimit"
	"github.com/umputun/moltwatch/pkg/scheduler/mocks"
)

type testMocks struct {
	feed     *mocks.FeedMock
	store    *mocks.StoreMock
	dedup    *mocks.DeduperMock
	class    *mocks.ClassifierMock
	budget   *mocks.RateBudgetMock
	activity *mocks.ActivityMock
	robots   *mocks.RobotsCheckerMock
}

// newTestScheduler builds a scheduler with benign mocks, tests override the
// behaviors they exercise
func newTestScheduler(cfg Config) (*Scheduler, *testMocks) {
	m := &testMocks{
		feed: &mocks.FeedMock{
			PostsFunc: func(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error) {
				return nil, nil
			},
			CommentsFunc: func(ctx context.Context, postID string, sort feed.CommentSort, limit int) ([]domain.Comment, error) {
				return nil, nil
			},
			SubmoltsFunc:     func(ctx context.Context) ([]domain.Submolt, error) { return nil, nil },
			LastRateInfoFunc: func() feed.RateInfo { return feed.RateInfo{} },
		},
		store: &mocks.StoreMock{
			SavePostFunc:    func(ctx context.Context, post *domain.Post, matched map[string][]string) error { return nil },
			SaveCommentFunc: func(ctx context.Context, comment *domain.Comment) error { return nil },
			SaveSubmoltFunc: func(ctx context.Context, s *domain.Submolt) error { return nil },
			GetThemesFunc: func(ctx context.Context, activeOnly bool) ([]domain.Theme, error) {
				return []domain.Theme{{Name: "ai_research", Keywords: map[string]float64{"model": 1.0}}}, nil
			},
			GetPollStateFunc:  func(ctx context.Context, endpoint string) (*domain.EndpointPollState, error) { return nil, nil },
			SavePollStateFunc: func(ctx context.Context, state *domain.EndpointPollState) error { return nil },
		},
		dedup: &mocks.DeduperMock{
			IsDuplicateFunc: func(ctx context.Context, post *domain.Post) (bool, error) { return false, nil },
			MarkSeenFunc:    func(ctx context.Context, post *domain.Post) error { return nil },
			CleanupFunc:     func(ctx context.Context) (int64, error) { return 0, nil },
		},
		class: &mocks.ClassifierMock{
			ClassifyFunc: func(ctx context.Context, text string, themes []domain.Theme) domain.ClassificationResult {
				return domain.ClassificationResult{
					Assigned:   []string{"ai_research"},
					Confidence: 0.8,
					Matched:    map[string][]string{"ai_research": {"model"}},
				}
			},
		},
		budget: &mocks.RateBudgetMock{
			CanRequestFunc:        func(budget ratelimit.Budget) bool { return true },
			RecordRequestFunc:     func(budget ratelimit.Budget) {},
			WaitTimeFunc:          func() time.Duration { return 0 },
			UpdateFromHeadersFunc: func(limit, remaining int, resetAt time.Time) {},
			ResetBudgetsFunc:      func() {},
		},
		activity: &mocks.ActivityMock{
			ActivitySignalFunc: func(ctx context.Context) (bool, float64, error) { return false, 0, nil },
		},
		robots: &mocks.RobotsCheckerMock{
			AllowedFunc:    func(ctx context.Context, rawURL string) bool { return true },
			CrawlDelayFunc: func(ctx context.Context, baseURL string) time.Duration { return 0 },
		},
	}

	s := New(Params{
		Feed:       m.feed,
		Store:      m.store,
		Dedup:      m.dedup,
		Classifier: m.class,
		Budget:     m.budget,
		Backoff:    backoff.New(backoff.Config{}),
		Robots:     m.robots,
		Activity:   m.activity,
		Metrics:    metrics.NewCollector(prometheus.NewRegistry()),
		Config:     cfg,
	})
	return s, m
}

func newsEndpoint() *endpoint {
	def := endpointDefs[0] // posts:new
	return &endpoint{def: def, state: stateIdle, interval: def.interval, poll: domain.EndpointPollState{Endpoint: def.name}}
}

func TestScheduler_PollOnceProcessesBatch(t *testing.T) {
	s, m := newTestScheduler(Config{})
	s.sentiment = func(text string) *float64 {
		v := 0.5
		return &v
	}
	m.feed.PostsFunc = func(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error) {
		assert.Equal(t, feed.SortNew, sort)
		assert.Equal(t, 25, limit)
		return []domain.Post{
			{ID: "p3", Title: "new model drop", Content: "weights are out", AgentID: "a1", Submolt: "ai"},
			{ID: "p2", Title: "seen before", AgentID: "a2", Submolt: "ai"},
			{ID: "p1", Title: "older one", Content: "text", AgentID: "a3", Submolt: "ai"},
		}, nil
	}
	m.feed.LastRateInfoFunc = func() feed.RateInfo {
		return feed.RateInfo{Limit: 100, Remaining: 42, ResetAt: time.Now().Add(time.Minute), Present: true}
	}
	m.dedup.IsDuplicateFunc = func(ctx context.Context, post *domain.Post) (bool, error) {
		return post.ID == "p2", nil
	}

	ep := newsEndpoint()
	s.pollOnce(context.Background(), ep)

	// duplicate skipped before classification, the other two saved
	require.Len(t, m.class.ClassifyCalls(), 2)
	require.Len(t, m.store.SavePostCalls(), 2)
	saved := m.store.SavePostCalls()[0]
	assert.Equal(t, "p3", saved.Post.ID)
	assert.Equal(t, []string{"ai_research"}, saved.Post.Themes)
	assert.InDelta(t, 0.8, saved.Post.Confidence, 0.001)
	assert.NotEmpty(t, saved.Post.ContentHash)
	require.NotNil(t, saved.Post.Sentiment)
	assert.InDelta(t, 0.5, *saved.Post.Sentiment, 0.001)
	assert.Equal(t, map[string][]string{"ai_research": {"model"}}, saved.Matched)
	assert.Equal(t, "p1", m.store.SavePostCalls()[1].Post.ID)
	assert.Len(t, m.dedup.MarkSeenCalls(), 2)

	// cursor advances to the newest item even though p2 was a duplicate
	assert.Equal(t, "p3", ep.poll.LastPostID)
	assert.Equal(t, 3, ep.poll.FetchedLast)
	assert.Equal(t, 3, ep.poll.FetchedTotal)
	assert.Equal(t, 0, ep.poll.ErrorCount)
	assert.Equal(t, stateIdle, ep.state)

	// request accounted and server headers fed back
	require.Len(t, m.budget.RecordRequestCalls(), 1)
	assert.Equal(t, ratelimit.BudgetNewPosts, m.budget.RecordRequestCalls()[0].Budget)
	require.Len(t, m.budget.UpdateFromHeadersCalls(), 1)
	assert.Equal(t, 42, m.budget.UpdateFromHeadersCalls()[0].Remaining)
}

func TestScheduler_PollOnceStorageFailure(t *testing.T) {
	s, m := newTestScheduler(Config{})
	m.feed.PostsFunc = func(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error) {
		return []domain.Post{{ID: "p1", Title: "t", AgentID: "a", Submolt: "s"}}, nil
	}
	m.store.SavePostFunc = func(ctx context.Context, post *domain.Post, matched map[string][]string) error {
		return errors.New("database is locked")
	}

	ep := newsEndpoint()
	start := time.Now()
	s.pollOnce(context.Background(), ep)

	// poll state must not advance when persistence failed
	assert.Empty(t, ep.poll.LastPostID)
	assert.Equal(t, 0, ep.poll.FetchedTotal)
	assert.Equal(t, 1, ep.poll.ErrorCount)
	assert.Equal(t, stateBackoff, ep.state)
	assert.Contains(t, ep.poll.LastError, "database is locked")
	// exponential backoff with jitter, first retry lands within a few seconds
	assert.Greater(t, ep.nextAt, start.Add(time.Second))
	assert.Less(t, ep.nextAt, start.Add(10*time.Second))
}

func TestScheduler_PollOnceRateLimited(t *testing.T) {
	s, m := newTestScheduler(Config{})
	m.feed.PostsFunc = func(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error) {
		return nil, &feed.APIError{StatusCode: 429, Message: "slow down", RetryAfter: "30"}
	}

	ep := newsEndpoint()
	start := time.Now()
	s.pollOnce(context.Background(), ep)

	assert.Equal(t, stateBackoff, ep.state)
	assert.Equal(t, 1, ep.poll.ErrorCount)
	// server-provided Retry-After overrides the computed delay
	assert.WithinDuration(t, start.Add(30*time.Second), ep.nextAt, 2*time.Second)
}

func TestScheduler_PollOnceClientErrorNoRetry(t *testing.T) {
	s, m := newTestScheduler(Config{})
	m.feed.PostsFunc = func(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error) {
		return nil, &feed.APIError{StatusCode: 404, Message: "no such endpoint"}
	}

	ep := newsEndpoint()
	start := time.Now()
	s.pollOnce(context.Background(), ep)

	// permanent client errors are not retried, nominal cadence continues
	assert.Equal(t, stateIdle, ep.state)
	assert.Equal(t, 0, ep.poll.ErrorCount)
	assert.Contains(t, ep.poll.LastError, "no such endpoint")
	assert.WithinDuration(t, start.Add(ep.interval), ep.nextAt, 2*time.Second)
}

func TestScheduler_PollOnceRespectsRobots(t *testing.T) {
	s, m := newTestScheduler(Config{})
	m.robots.AllowedFunc = func(ctx context.Context, rawURL string) bool { return false }

	ep := newsEndpoint()
	start := time.Now()
	s.pollOnce(context.Background(), ep)

	assert.Empty(t, m.feed.PostsCalls())
	assert.Equal(t, stateIdle, ep.state)
	assert.WithinDuration(t, start.Add(ep.interval), ep.nextAt, 2*time.Second)
}

func TestScheduler_PollOnceFetchesComments(t *testing.T) {
	s, m := newTestScheduler(Config{IncludeComments: true})
	m.feed.PostsFunc = func(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error) {
		return []domain.Post{{ID: "p1", Title: "busy thread", AgentID: "a", Submolt: "s", CommentCount: 2}}, nil
	}
	m.feed.CommentsFunc = func(ctx context.Context, postID string, sort feed.CommentSort, limit int) ([]domain.Comment, error) {
		assert.Equal(t, "p1", postID)
		assert.Equal(t, feed.CommentsTop, sort)
		return []domain.Comment{{ID: "c1", PostID: "p1"}, {ID: "c2", PostID: "p1"}}, nil
	}

	ep := newsEndpoint()
	s.pollOnce(context.Background(), ep)

	assert.Len(t, m.store.SaveCommentCalls(), 2)
	budgets := []ratelimit.Budget{}
	for _, c := range m.budget.RecordRequestCalls() {
		budgets = append(budgets, c.Budget)
	}
	assert.Contains(t, budgets, ratelimit.BudgetComments)
}

func TestScheduler_PollOnceSkipsCommentsForDuplicates(t *testing.T) {
	s, m := newTestScheduler(Config{IncludeComments: true})
	m.feed.PostsFunc = func(ctx context.Context, sort feed.PostSort, limit int, after string) ([]domain.Post, error) {
		return []domain.Post{{ID: "p1", Title: "old thread", AgentID: "a", Submolt: "s", CommentCount: 5}}, nil
	}
	m.dedup.IsDuplicateFunc = func(ctx context.Context, post *domain.Post) (bool, error) { return true, nil }

	ep := newsEndpoint()
	s.pollOnce(context.Background(), ep)

	assert.Empty(t, m.feed.CommentsCalls())
	assert.Equal(t, "p1", ep.poll.LastPostID) // cursor still advances
}

func TestScheduler_PollSubmolts(t *testing.T) {
	s, m := newTestScheduler(Config{})
	m.feed.SubmoltsFunc = func(ctx context.Context) ([]domain.Submolt, error) {
		return []domain.Submolt{{Name: "ai"}, {Name: "philosophy"}}, nil
	}

	def := endpointDefs[len(endpointDefs)-1]
	require.Equal(t, "submolts", def.name)
	ep := &endpoint{def: def, interval: def.interval, poll: domain.EndpointPollState{Endpoint: def.name}}
	s.pollOnce(context.Background(), ep)

	assert.Len(t, m.store.SaveSubmoltCalls(), 2)
	assert.Equal(t, 2, ep.poll.FetchedLast)
	assert.Empty(t, m.class.ClassifyCalls())
}

func TestScheduler_WaitBudget(t *testing.T) {
	s, m := newTestScheduler(Config{})
	attempts := 0
	m.budget.CanRequestFunc = func(budget ratelimit.Budget) bool {
		attempts++
		return attempts > 2
	}
	m.budget.WaitTimeFunc = func() time.Duration { return 5 * time.Millisecond }

	err := s.waitBudget(context.Background(), ratelimit.BudgetNewPosts)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestScheduler_WaitBudgetCancelled(t *testing.T) {
	s, m := newTestScheduler(Config{})
	m.budget.CanRequestFunc = func(budget ratelimit.Budget) bool { return false }
	m.budget.WaitTimeFunc = func() time.Duration { return time.Minute }

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	err := s.waitBudget(ctx, ratelimit.BudgetNewPosts)
	require.ErrorIs(t, err, context.Canceled)
}

func TestClassifyError(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name       string
		err        error
		class      backoff.ErrClass
		retryAfter time.Duration
	}{
		{name: "429 with retry-after", err: &feed.APIError{StatusCode: 429, RetryAfter: "30"},
			class: backoff.ClassRateLimited, retryAfter: 30 * time.Second},
		{name: "server error", err: &feed.APIError{StatusCode: 502}, class: backoff.ClassServer},
		{name: "client error", err: &feed.APIError{StatusCode: 403}, class: backoff.ClassClient},
		{name: "url timeout", err: &url.Error{Op: "Get", URL: "https://x", Err: context.DeadlineExceeded},
			class: backoff.ClassTimeout},
		{name: "connection refused", err: &url.Error{Op: "Get", URL: "https://x", Err: errors.New("connection refused")},
			class: backoff.ClassConnection},
		{name: "plain error", err: errors.New("something odd"), class: backoff.ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, retryAfter := classifyError(tt.err, now)
			assert.Equal(t, tt.class, class)
			assert.Equal(t, tt.retryAfter, retryAfter)
		})
	}
}
