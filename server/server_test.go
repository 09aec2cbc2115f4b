package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/moltwatch/pkg/domain"
	"github.com/umputun/moltwatch/pkg/feed"
	"github.com/umputun/moltwatch/pkg/ratelimit"
	"github.com/umputun/moltwatch/pkg/trends"
	"github.com/umputun/moltwatch/server/mocks"
)

type serverMocks struct {
	cfg      *mocks.ConfigProviderMock
	store    *mocks.StoreMock
	taxonomy *mocks.TaxonomyMock
	trends   *mocks.TrendsProviderMock
	rate     *mocks.RateStatusMock
	agents   *mocks.AgentDirectoryMock
}

func newTestServer() (*Server, *serverMocks) {
	m := &serverMocks{
		cfg: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		},
		store: &mocks.StoreMock{
			PingFunc: func(ctx context.Context) error { return nil },
			ListPollStatesFunc: func(ctx context.Context) ([]domain.EndpointPollState, error) {
				return []domain.EndpointPollState{{Endpoint: "posts:new", FetchedTotal: 42}}, nil
			},
			ListChangelogFunc: func(ctx context.Context, pendingOnly bool, limit int) ([]domain.ChangelogEntry, error) {
				return nil, nil
			},
			SaveAgentFunc: func(ctx context.Context, a *domain.Agent) error { return nil },
		},
		taxonomy: &mocks.TaxonomyMock{
			ApplyFunc:  func(ctx context.Context, entryID, reviewer string) error { return nil },
			RejectFunc: func(ctx context.Context, entryID, reviewer string) error { return nil },
		},
		trends: &mocks.TrendsProviderMock{
			ActivitySignalFunc: func(ctx context.Context) (bool, float64, error) { return false, 3.5, nil },
			TrendFunc: func(ctx context.Context, theme string) (*trends.ThemeTrend, error) {
				return &trends.ThemeTrend{Theme: theme, Stats: map[string]domain.TrendWindowStat{}}, nil
			},
		},
		rate: &mocks.RateStatusMock{
			GetStatusFunc: func() ratelimit.Status {
				return ratelimit.Status{CanRequest: true, Minute: ratelimit.TierStatus{Used: 7, Limit: 100, Remaining: 93}}
			},
			CanRequestFunc:    func(budget ratelimit.Budget) bool { return true },
			RecordRequestFunc: func(budget ratelimit.Budget) {},
		},
		agents: &mocks.AgentDirectoryMock{
			AgentProfileFunc: func(ctx context.Context, name string) (*domain.Agent, error) {
				return &domain.Agent{ID: "a1", Name: name, Karma: 7}, nil
			},
		},
	}

	srv := New(Params{
		Config:   m.cfg,
		Store:    m.store,
		Taxonomy: m.taxonomy,
		Trends:   m.trends,
		Rate:     m.rate,
		Agents:   m.agents,
		Version:  "1.2.3",
	})
	return srv, m
}

func TestServer_healthHandler(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])
}

func TestServer_healthHandlerStoreDown(t *testing.T) {
	srv, m := newTestServer()
	m.store.PingFunc = func(ctx context.Context) error { return errors.New("database is locked") }

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp["status"])
	assert.Contains(t, resp["error"], "locked")
}

func TestServer_healthHandlerUpstream(t *testing.T) {
	_, m := newTestServer()
	upstream := &mocks.UpstreamMock{
		PingFunc: func(ctx context.Context) error { return errors.New("proxy unreachable: connection refused") },
	}
	srv := New(Params{
		Config:   m.cfg,
		Store:    m.store,
		Taxonomy: m.taxonomy,
		Trends:   m.trends,
		Rate:     m.rate,
		Upstream: upstream,
		Version:  "1.2.3",
	})

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp["status"])
	assert.Contains(t, resp["error"], "proxy unreachable")

	// upstream recovers
	upstream.PingFunc = func(ctx context.Context) error { return nil }
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/health", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, upstream.PingCalls(), 2)
}

func TestServer_statusHandler(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "1.2.3", status["version"])

	endpoints, ok := status["endpoints"].([]interface{})
	require.True(t, ok)
	require.Len(t, endpoints, 1)
	first := endpoints[0].(map[string]interface{})
	assert.Equal(t, "posts:new", first["endpoint"])
	assert.InDelta(t, 42, first["fetched_total"], 0.001)

	activity := status["activity"].(map[string]interface{})
	assert.Equal(t, false, activity["spiking"])
	assert.InDelta(t, 3.5, activity["posts_per_hour"], 0.001)

	rate := status["rate_limit"].(map[string]interface{})
	assert.Equal(t, true, rate["can_request"])
}

func TestServer_statusHandlerActivityError(t *testing.T) {
	srv, m := newTestServer()
	m.trends.ActivitySignalFunc = func(ctx context.Context) (bool, float64, error) {
		return false, 0, errors.New("no data yet")
	}

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	// a failing signal degrades the field, not the endpoint
	assert.Equal(t, http.StatusOK, w.Code)
	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	activity := status["activity"].(map[string]interface{})
	assert.Contains(t, activity["error"], "no data yet")
}

func TestServer_proposalsHandler(t *testing.T) {
	srv, m := newTestServer()
	reviewed := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	approved := true
	m.store.ListChangelogFunc = func(ctx context.Context, pendingOnly bool, limit int) ([]domain.ChangelogEntry, error) {
		assert.True(t, pendingOnly)
		assert.Equal(t, 50, limit)
		return []domain.ChangelogEntry{
			{ID: "e1", Action: domain.ActionSuggest, Themes: []string{"agent_rituals"},
				Details: map[string]any{"sample_count": 23}},
			{ID: "e2", Action: domain.ActionMerge, Themes: []string{"a", "b"},
				ReviewedAt: &reviewed, ReviewedBy: "umputun", Approved: &approved},
		}, nil
	}

	req := httptest.NewRequest("GET", "/api/v1/proposals", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Proposals []proposalResponse `json:"proposals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Proposals, 2)
	assert.Equal(t, "e1", resp.Proposals[0].ID)
	assert.Equal(t, "suggest", resp.Proposals[0].Action)
	assert.Equal(t, "umputun", resp.Proposals[1].ReviewedBy)
	require.NotNil(t, resp.Proposals[1].Approved)
	assert.True(t, *resp.Proposals[1].Approved)
}

func TestServer_proposalsHandlerParams(t *testing.T) {
	srv, m := newTestServer()
	m.store.ListChangelogFunc = func(ctx context.Context, pendingOnly bool, limit int) ([]domain.ChangelogEntry, error) {
		assert.False(t, pendingOnly)
		assert.Equal(t, 10, limit)
		return nil, nil
	}

	req := httptest.NewRequest("GET", "/api/v1/proposals?all=1&limit=10", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/proposals?limit=bogus", http.NoBody)
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_approveHandler(t *testing.T) {
	srv, m := newTestServer()
	m.taxonomy.ApplyFunc = func(ctx context.Context, entryID, reviewer string) error {
		assert.Equal(t, "e1", entryID)
		assert.Equal(t, "umputun", reviewer)
		return nil
	}

	body := strings.NewReader(`{"reviewer": "umputun"}`)
	req := httptest.NewRequest("POST", "/api/v1/proposals/e1/approve", body)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, m.taxonomy.ApplyCalls(), 1)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp["status"])
	assert.Equal(t, "e1", resp["id"])
}

func TestServer_rejectHandler(t *testing.T) {
	srv, m := newTestServer()

	body := strings.NewReader(`{"reviewer": "umputun"}`)
	req := httptest.NewRequest("POST", "/api/v1/proposals/e2/reject", body)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, m.taxonomy.RejectCalls(), 1)
	assert.Equal(t, "e2", m.taxonomy.RejectCalls()[0].EntryID)
	assert.Empty(t, m.taxonomy.ApplyCalls())
}

func TestServer_reviewValidation(t *testing.T) {
	srv, m := newTestServer()

	// missing reviewer
	req := httptest.NewRequest("POST", "/api/v1/proposals/e1/approve", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, m.taxonomy.ApplyCalls())

	// malformed body
	req = httptest.NewRequest("POST", "/api/v1/proposals/e1/approve", strings.NewReader(`not json`))
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown entry maps to 400, not 500
	m.taxonomy.ApplyFunc = func(ctx context.Context, entryID, reviewer string) error {
		return fmt.Errorf("changelog entry %s not found", entryID)
	}
	req = httptest.NewRequest("POST", "/api/v1/proposals/ghost/approve", strings.NewReader(`{"reviewer": "u"}`))
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_trendsHandler(t *testing.T) {
	srv, m := newTestServer()
	m.trends.TrendFunc = func(ctx context.Context, theme string) (*trends.ThemeTrend, error) {
		assert.Equal(t, "ai_research", theme)
		return &trends.ThemeTrend{
			Theme: theme,
			Stats: map[string]domain.TrendWindowStat{
				"1h":  {Theme: theme, PostCount: 12, UniqueAuthors: 5},
				"24h": {Theme: theme, PostCount: 60, UniqueAuthors: 20},
			},
			Velocity: 4.8,
			HasData:  true,
			Spiking:  true,
		}, nil
	}

	req := httptest.NewRequest("GET", "/api/v1/trends/ai_research", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ai_research", resp["theme"])
	assert.InDelta(t, 4.8, resp["velocity"], 0.001)
	assert.Equal(t, true, resp["spiking"])
	windows := resp["windows"].(map[string]interface{})
	hour := windows["1h"].(map[string]interface{})
	assert.InDelta(t, 12, hour["posts"], 0.001)
	assert.InDelta(t, 5, hour["unique_authors"], 0.001)
}

func TestServer_trendsHandlerError(t *testing.T) {
	srv, m := newTestServer()
	m.trends.TrendFunc = func(ctx context.Context, theme string) (*trends.ThemeTrend, error) {
		return nil, errors.New("storage gone")
	}

	req := httptest.NewRequest("GET", "/api/v1/trends/whatever", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_agentHandler(t *testing.T) {
	srv, m := newTestServer()
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	m.agents.AgentProfileFunc = func(ctx context.Context, name string) (*domain.Agent, error) {
		assert.Equal(t, "ShellRaiser", name)
		return &domain.Agent{ID: "a42", Name: name, Description: "claws out", Karma: 256, CreatedAt: created}, nil
	}

	req := httptest.NewRequest("GET", "/api/v1/agents/ShellRaiser", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp agentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a42", resp.ID)
	assert.Equal(t, "ShellRaiser", resp.Name)
	assert.Equal(t, 256, resp.Karma)
	assert.Equal(t, created, resp.CreatedAt)

	// the lookup spends from the agents budget and caches the profile
	require.Len(t, m.rate.RecordRequestCalls(), 1)
	assert.Equal(t, ratelimit.BudgetAgents, m.rate.RecordRequestCalls()[0].Budget)
	require.Len(t, m.store.SaveAgentCalls(), 1)
	assert.Equal(t, "a42", m.store.SaveAgentCalls()[0].A.ID)
}

func TestServer_agentHandlerBudgetExhausted(t *testing.T) {
	srv, m := newTestServer()
	m.rate.CanRequestFunc = func(budget ratelimit.Budget) bool {
		assert.Equal(t, ratelimit.BudgetAgents, budget)
		return false
	}

	req := httptest.NewRequest("GET", "/api/v1/agents/anybody", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Empty(t, m.agents.AgentProfileCalls())
	assert.Empty(t, m.rate.RecordRequestCalls())
}

func TestServer_agentHandlerErrors(t *testing.T) {
	srv, m := newTestServer()

	// upstream 404 maps to 404
	m.agents.AgentProfileFunc = func(ctx context.Context, name string) (*domain.Agent, error) {
		return nil, &feed.APIError{StatusCode: http.StatusNotFound, Message: "no such agent"}
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/agents/ghost", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// transport failure maps to 502
	m.agents.AgentProfileFunc = func(ctx context.Context, name string) (*domain.Agent, error) {
		return nil, errors.New("connection refused")
	}
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/agents/ghost", http.NoBody))
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// a failed cache write degrades to a warning, the profile is still served
	m.agents.AgentProfileFunc = func(ctx context.Context, name string) (*domain.Agent, error) {
		return &domain.Agent{ID: "a1", Name: name}, nil
	}
	m.store.SaveAgentFunc = func(ctx context.Context, a *domain.Agent) error { return errors.New("database is locked") }
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/agents/luckyone", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_agentRouteAbsentWithoutDirectory(t *testing.T) {
	_, m := newTestServer()
	srv := New(Params{Config: m.cfg, Store: m.store, Taxonomy: m.taxonomy, Trends: m.trends, Rate: m.rate,
		Version: "1.2.3"})

	req := httptest.NewRequest("GET", "/api/v1/agents/anybody", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_metricsRoute(t *testing.T) {
	srv, _ := newTestServer()
	// no metrics handler wired, route absent
	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, m2 := newTestServer()
	scrape := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("metric_total 1"))
	})
	srv2 := New(Params{Config: m2.cfg, Store: m2.store, Taxonomy: m2.taxonomy, Trends: m2.trends, Rate: m2.rate,
		Metrics: scrape, Version: "1.2.3"})

	req = httptest.NewRequest("GET", "/metrics", http.NoBody)
	w = httptest.NewRecorder()
	srv2.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "metric_total")
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv, m := newTestServer()
	m.cfg.GetServerConfigFunc = func() (string, time.Duration) { return "127.0.0.1:0", time.Second }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
