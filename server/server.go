package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/moltwatch/pkg/domain"
	"github.com/umputun/moltwatch/pkg/ratelimit"
	"github.com/umputun/moltwatch/pkg/trends"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/taxonomy.go -pkg mocks -skip-ensure -fmt goimports . Taxonomy
//go:generate moq -out mocks/trends_provider.go -pkg mocks -skip-ensure -fmt goimports . TrendsProvider
//go:generate moq -out mocks/rate_status.go -pkg mocks -skip-ensure -fmt goimports . RateStatus
//go:generate moq -out mocks/upstream.go -pkg mocks -skip-ensure -fmt goimports . Upstream
//go:generate moq -out mocks/agent_directory.go -pkg mocks -skip-ensure -fmt goimports . AgentDirectory

// Store is the persistence surface the server reads from
type Store interface {
	Ping(ctx context.Context) error
	ListPollStates(ctx context.Context) ([]domain.EndpointPollState, error)
	ListChangelog(ctx context.Context, pendingOnly bool, limit int) ([]domain.ChangelogEntry, error)
	SaveAgent(ctx context.Context, a *domain.Agent) error
}

// Taxonomy executes human review decisions on evolution proposals
type Taxonomy interface {
	Apply(ctx context.Context, entryID, reviewer string) error
	Reject(ctx context.Context, entryID, reviewer string) error
}

// TrendsProvider computes per-theme trend stats and the activity signal
type TrendsProvider interface {
	Trend(ctx context.Context, theme string) (*trends.ThemeTrend, error)
	ActivitySignal(ctx context.Context) (spiking bool, perHour float64, err error)
}

// RateStatus exposes the shared request budget, both the snapshot for the
// status endpoint and the live predicate for on-demand fetches
type RateStatus interface {
	GetStatus() ratelimit.Status
	CanRequest(budget ratelimit.Budget) bool
	RecordRequest(budget ratelimit.Budget)
}

// AgentDirectory fetches agent profiles from the remote API on demand
type AgentDirectory interface {
	AgentProfile(ctx context.Context, name string) (*domain.Agent, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Upstream probes the remote side (reverse proxy or API) for the health check
type Upstream interface {
	Ping(ctx context.Context) error
}

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	store    Store
	taxonomy Taxonomy
	trends   TrendsProvider
	rate     RateStatus
	upstream Upstream
	agents   AgentDirectory
	metrics  http.Handler
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params groups the server's collaborators
type Params struct {
	Config   ConfigProvider
	Store    Store
	Taxonomy Taxonomy
	Trends   TrendsProvider
	Rate     RateStatus
	Upstream Upstream       // optional, nil skips the proxy reachability check
	Agents   AgentDirectory // optional, nil disables the agent profile endpoint
	Metrics  http.Handler   // prometheus scrape handler
	Version  string
	Debug    bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:   p.Config,
		store:    p.Store,
		taxonomy: p.Taxonomy,
		trends:   p.Trends,
		rate:     p.Rate,
		upstream: p.Upstream,
		agents:   p.Agents,
		metrics:  p.Metrics,
		version:  p.Version,
		debug:    p.Debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("moltwatch", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // review requests are tiny
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /health", s.healthHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /proposals", s.proposalsHandler)
		r.HandleFunc("POST /proposals/{id}/approve", s.approveHandler)
		r.HandleFunc("POST /proposals/{id}/reject", s.rejectHandler)
		r.HandleFunc("GET /trends/{theme}", s.trendsHandler)
		if s.agents != nil {
			r.HandleFunc("GET /agents/{name}", s.agentHandler)
		}
	})

	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics)
	}
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
