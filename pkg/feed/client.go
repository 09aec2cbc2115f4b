// Package feed implements the read-only Moltbook API client. All requests are
// plain GETs, optionally routed through a reverse proxy, with X-RateLimit
// header tracking and a courtesy pacer between calls.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/umputun/moltwatch/pkg/domain"
)

// DefaultUserAgent identifies the monitor to the API and in robots.txt matching
const DefaultUserAgent = "Moltwatch/1.0 (research monitor)"

// PostSort is a sort option for the posts endpoint
type PostSort string

// post sort options
const (
	SortNew    PostSort = "new"
	SortHot    PostSort = "hot"
	SortTop    PostSort = "top"
	SortRising PostSort = "rising"
)

// CommentSort is a sort option for the comments endpoint
type CommentSort string

// comment sort options
const (
	CommentsTop           CommentSort = "top"
	CommentsNew           CommentSort = "new"
	CommentsControversial CommentSort = "controversial"
)

// APIError is a non-200 response from the API, carries the status code so the
// caller can pick an error class and the Retry-After value when present.
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

// RateInfo holds X-RateLimit-* values from the most recent response
type RateInfo struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	Present   bool
}

// ClientConfig configures the Moltbook client
type ClientConfig struct {
	APIHost   string        // default www.moltbook.com
	ProxyURL  string        // optional reverse proxy base, requests go to {proxy}/proxy/{host}/api/v1/...
	UserAgent string        // default DefaultUserAgent
	Timeout   time.Duration // default 30s
	PaceRPS   float64       // courtesy limiter between calls, default 1
	MaxLimit  int           // page size cap, default 25
}

// Client is a read-only Moltbook API client
type Client struct {
	apiHost   string
	proxyURL  string
	userAgent string
	maxLimit  int
	client    *http.Client
	pacer     *rate.Limiter

	mu       sync.Mutex
	lastRate RateInfo
}

// NewClient creates a Moltbook client with defaults applied
func NewClient(cfg ClientConfig) *Client {
	if cfg.APIHost == "" {
		cfg.APIHost = "www.moltbook.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PaceRPS == 0 {
		cfg.PaceRPS = 1
	}
	if cfg.MaxLimit == 0 {
		cfg.MaxLimit = 25
	}
	return &Client{
		apiHost:   cfg.APIHost,
		proxyURL:  strings.TrimSuffix(cfg.ProxyURL, "/"),
		userAgent: cfg.UserAgent,
		maxLimit:  cfg.MaxLimit,
		client:    &http.Client{Timeout: cfg.Timeout},
		pacer:     rate.NewLimiter(rate.Limit(cfg.PaceRPS), 1),
	}
}

// LastRateInfo returns the rate limit state from the most recent response
func (c *Client) LastRateInfo() RateInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRate
}

// Posts fetches a page of posts with the given sort. after is a pagination
// cursor (post ID), empty for the first page.
func (c *Client) Posts(ctx context.Context, sort PostSort, limit int, after string) ([]domain.Post, error) {
	params := url.Values{}
	params.Set("sort", string(sort))
	params.Set("limit", strconv.Itoa(min(limit, c.maxLimit)))
	if after != "" {
		params.Set("after", after)
	}

	raw, err := c.get(ctx, "posts", params)
	if err != nil {
		return nil, fmt.Errorf("fetch posts sort=%s: %w", sort, err)
	}

	items, err := decodeList(raw, "posts")
	if err != nil {
		return nil, fmt.Errorf("decode posts response: %w", err)
	}

	posts := make([]domain.Post, 0, len(items))
	for _, item := range items {
		var p apiPost
		if err := json.Unmarshal(item, &p); err != nil {
			continue // skip malformed entries, the rest of the page is still usable
		}
		posts = append(posts, p.toDomain())
	}
	return posts, nil
}

// Comments fetches comments for a post
func (c *Client) Comments(ctx context.Context, postID string, sort CommentSort, limit int) ([]domain.Comment, error) {
	params := url.Values{}
	params.Set("sort", string(sort))
	params.Set("limit", strconv.Itoa(min(limit, 100)))

	raw, err := c.get(ctx, "posts/"+url.PathEscape(postID)+"/comments", params)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", postID, err)
	}

	items, err := decodeList(raw, "comments")
	if err != nil {
		return nil, fmt.Errorf("decode comments response: %w", err)
	}

	comments := make([]domain.Comment, 0, len(items))
	for _, item := range items {
		var cm apiComment
		if err := json.Unmarshal(item, &cm); err != nil {
			continue
		}
		comments = append(comments, cm.toDomain(postID))
	}
	return comments, nil
}

// Submolts fetches the list of communities
func (c *Client) Submolts(ctx context.Context) ([]domain.Submolt, error) {
	raw, err := c.get(ctx, "submolts", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch submolts: %w", err)
	}

	items, err := decodeList(raw, "submolts")
	if err != nil {
		return nil, fmt.Errorf("decode submolts response: %w", err)
	}

	submolts := make([]domain.Submolt, 0, len(items))
	for _, item := range items {
		var s apiSubmolt
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		submolts = append(submolts, s.toDomain())
	}
	return submolts, nil
}

// AgentProfile fetches a single agent profile by name
func (c *Client) AgentProfile(ctx context.Context, name string) (*domain.Agent, error) {
	params := url.Values{}
	params.Set("name", name)

	raw, err := c.get(ctx, "agents/profile", params)
	if err != nil {
		return nil, fmt.Errorf("fetch agent %s: %w", name, err)
	}

	body := unwrapObject(raw, "agent")
	var a apiAgent
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("decode agent response: %w", err)
	}
	res := a.toDomain()
	return &res, nil
}

// Ping verifies the reverse proxy is reachable via its health endpoint.
// Without a proxy configured there is nothing to probe and the check passes.
func (c *Client) Ping(ctx context.Context) error {
	if c.proxyURL == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.proxyURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create proxy health request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("proxy unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("proxy health returned status %d", resp.StatusCode)
	}
	return nil
}

// get performs a paced GET and returns the raw body for 200 responses.
// Non-200 responses come back as *APIError.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for pacer: %w", err)
	}

	reqURL := c.buildURL(path)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.updateRateInfo(resp.Header)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.StatusCode),
			RetryAfter: resp.Header.Get("Retry-After"),
		}
	}
	return body, nil
}

// buildURL routes through the proxy when one is configured, the proxy expects
// /proxy/{host}/{path}
func (c *Client) buildURL(path string) string {
	if c.proxyURL != "" {
		return fmt.Sprintf("%s/proxy/%s/api/v1/%s", c.proxyURL, c.apiHost, path)
	}
	return fmt.Sprintf("https://%s/api/v1/%s", c.apiHost, path)
}

func (c *Client) updateRateInfo(h http.Header) {
	info := RateInfo{}
	if v := h.Get("X-RateLimit-Limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.Limit = n
			info.Present = true
		}
	}
	if v := h.Get("X-RateLimit-Remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.Remaining = n
			info.Present = true
		}
	}
	if v := h.Get("X-RateLimit-Reset"); v != "" {
		if sec, err := strconv.ParseFloat(v, 64); err == nil {
			info.ResetAt = time.Unix(int64(sec), 0)
		}
	}
	if !info.Present {
		return
	}
	c.mu.Lock()
	c.lastRate = info
	c.mu.Unlock()
}

// errorMessage extracts "error" or "message" from an error body, falls back to
// a truncated raw body
func errorMessage(body []byte, status int) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	if len(body) > 0 {
		if len(body) > 200 {
			body = body[:200]
		}
		return string(body)
	}
	return fmt.Sprintf("status %d", status)
}

// decodeList accepts a bare JSON array or an envelope keyed by the given name
// or "data"
func decodeList(raw []byte, key string) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("neither list nor object: %w", err)
	}
	for _, k := range []string{key, "data"} {
		if inner, ok := envelope[k]; ok {
			if err := json.Unmarshal(inner, &list); err != nil {
				return nil, fmt.Errorf("decode %q field: %w", k, err)
			}
			return list, nil
		}
	}
	return nil, nil
}

// unwrapObject unwraps {"agent": {...}} / {"data": {...}} envelopes, returns
// raw unchanged when the object itself is the payload
func unwrapObject(raw []byte, key string) []byte {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	for _, k := range []string{key, "data"} {
		if inner, ok := envelope[k]; ok && len(inner) > 0 && inner[0] == '{' {
			return inner
		}
	}
	return raw
}
