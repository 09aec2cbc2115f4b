package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/moltwatch/pkg/feed"
	"github.com/umputun/moltwatch/pkg/ratelimit"
)

// pollStateResponse is the JSON view of one endpoint's schedule record
type pollStateResponse struct {
	Endpoint     string     `json:"endpoint"`
	LastPostID   string     `json:"last_post_id,omitempty"`
	LastPollAt   *time.Time `json:"last_poll_at,omitempty"`
	NextPollAt   *time.Time `json:"next_poll_at,omitempty"`
	ErrorCount   int        `json:"error_count"`
	LastError    string     `json:"last_error,omitempty"`
	FetchedLast  int        `json:"fetched_last"`
	FetchedTotal int        `json:"fetched_total"`
}

// proposalResponse is the JSON view of one taxonomy changelog entry
type proposalResponse struct {
	ID         string         `json:"id"`
	Action     string         `json:"action"`
	Themes     []string       `json:"themes"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	ReviewedAt *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedBy string         `json:"reviewed_by,omitempty"`
	Approved   *bool          `json:"approved,omitempty"`
}

// agentResponse is the JSON view of an agent profile
type agentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Karma       int       `json:"karma"`
	CreatedAt   time.Time `json:"created_at"`
}

// agentHandler fetches an agent profile from the remote API on demand, caching
// the result in the store. The call spends from the agents budget slice and is
// refused when the shared tracker has no allowance for it.
func (s *Server) agentHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if !s.rate.CanRequest(ratelimit.BudgetAgents) {
		RenderError(w, r, fmt.Errorf("rate budget exhausted for agent lookups"), http.StatusTooManyRequests)
		return
	}

	agent, err := s.agents.AgentProfile(r.Context(), name)
	s.rate.RecordRequest(ratelimit.BudgetAgents)
	if err != nil {
		var apiErr *feed.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			RenderError(w, r, fmt.Errorf("agent %s not found", name), http.StatusNotFound)
			return
		}
		RenderError(w, r, fmt.Errorf("fetch agent %s: %w", name, err), http.StatusBadGateway)
		return
	}

	if err := s.store.SaveAgent(r.Context(), agent); err != nil {
		lgr.Printf("[WARN] failed to save agent %s: %v", name, err)
	}

	RenderJSON(w, r, http.StatusOK, agentResponse{
		ID:          agent.ID,
		Name:        agent.Name,
		Description: agent.Description,
		Karma:       agent.Karma,
		CreatedAt:   agent.CreatedAt,
	})
}

// healthHandler reports store and upstream reachability
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		lgr.Printf("[WARN] health check failed: %v", err)
		RenderJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "failed", "error": err.Error(), "version": s.version,
		})
		return
	}

	if s.upstream != nil {
		if err := s.upstream.Ping(r.Context()); err != nil {
			lgr.Printf("[WARN] upstream health check failed: %v", err)
			RenderJSON(w, r, http.StatusServiceUnavailable, map[string]string{
				"status": "failed", "error": err.Error(), "version": s.version,
			})
			return
		}
	}

	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

// statusHandler returns the rate budget snapshot, per-endpoint poll states and
// the activity signal
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	states, err := s.store.ListPollStates(r.Context())
	if err != nil {
		RenderError(w, r, fmt.Errorf("list poll states: %w", err), http.StatusInternalServerError)
		return
	}

	endpoints := make([]pollStateResponse, 0, len(states))
	for _, st := range states {
		endpoints = append(endpoints, pollStateResponse{
			Endpoint:     st.Endpoint,
			LastPostID:   st.LastPostID,
			LastPollAt:   st.LastPollAt,
			NextPollAt:   st.NextPollAt,
			ErrorCount:   st.ErrorCount,
			LastError:    st.LastError,
			FetchedLast:  st.FetchedLast,
			FetchedTotal: st.FetchedTotal,
		})
	}

	activity := map[string]any{}
	spiking, perHour, err := s.trends.ActivitySignal(r.Context())
	if err != nil {
		activity["error"] = err.Error()
	} else {
		activity["spiking"] = spiking
		activity["posts_per_hour"] = perHour
	}

	RenderJSON(w, r, http.StatusOK, map[string]any{
		"version":    s.version,
		"time":       time.Now().UTC(),
		"rate_limit": s.rate.GetStatus(),
		"endpoints":  endpoints,
		"activity":   activity,
	})
}

// proposalsHandler lists taxonomy evolution proposals, pending ones by default
func (s *Server) proposalsHandler(w http.ResponseWriter, r *http.Request) {
	pendingOnly := r.URL.Query().Get("all") == ""
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.store.ListChangelog(r.Context(), pendingOnly, limit)
	if err != nil {
		RenderError(w, r, fmt.Errorf("list proposals: %w", err), http.StatusInternalServerError)
		return
	}

	resp := make([]proposalResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, proposalResponse{
			ID:         e.ID,
			Action:     string(e.Action),
			Themes:     e.Themes,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt,
			ReviewedAt: e.ReviewedAt,
			ReviewedBy: e.ReviewedBy,
			Approved:   e.Approved,
		})
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"proposals": resp})
}

// reviewRequest is the body of an approve or reject call
type reviewRequest struct {
	Reviewer string `json:"reviewer"`
}

// approveHandler applies a pending proposal
func (s *Server) approveHandler(w http.ResponseWriter, r *http.Request) {
	s.reviewProposal(w, r, true)
}

// rejectHandler declines a pending proposal
func (s *Server) rejectHandler(w http.ResponseWriter, r *http.Request) {
	s.reviewProposal(w, r, false)
}

func (s *Server) reviewProposal(w http.ResponseWriter, r *http.Request, approve bool) {
	id := r.PathValue("id")

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("decode request: %w", err), http.StatusBadRequest)
		return
	}
	if req.Reviewer == "" {
		RenderError(w, r, fmt.Errorf("reviewer is required"), http.StatusBadRequest)
		return
	}

	var err error
	verdict := "rejected"
	if approve {
		verdict = "approved"
		err = s.taxonomy.Apply(r.Context(), id, req.Reviewer)
	} else {
		err = s.taxonomy.Reject(r.Context(), id, req.Reviewer)
	}
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "already reviewed") {
			code = http.StatusBadRequest
		}
		RenderError(w, r, err, code)
		return
	}

	lgr.Printf("[INFO] proposal %s %s by %s", id, verdict, req.Reviewer)
	RenderJSON(w, r, http.StatusOK, map[string]string{"id": id, "status": verdict, "reviewer": req.Reviewer})
}

// trendsHandler returns window stats, velocity and the spike flag for a theme
func (s *Server) trendsHandler(w http.ResponseWriter, r *http.Request) {
	theme := r.PathValue("theme")

	trend, err := s.trends.Trend(r.Context(), theme)
	if err != nil {
		RenderError(w, r, fmt.Errorf("compute trend for %s: %w", theme, err), http.StatusInternalServerError)
		return
	}

	stats := map[string]map[string]int{}
	for label, st := range trend.Stats {
		stats[label] = map[string]int{"posts": st.PostCount, "unique_authors": st.UniqueAuthors}
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{
		"theme":    trend.Theme,
		"windows":  stats,
		"velocity": trend.Velocity,
		"has_data": trend.HasData,
		"spiking":  trend.Spiking,
	})
}
