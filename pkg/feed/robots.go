package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

const robotsCacheTTL = 24 * time.Hour

// robotsRule is a single allow/disallow line, path patterns support the *
// wildcard and the $ end anchor
type robotsRule struct {
	pattern *regexp.Regexp
	allow   bool
}

// robotsGroup is the set of rules for one user-agent token
type robotsGroup struct {
	agent      string
	rules      []robotsRule
	crawlDelay time.Duration
}

type robotsEntry struct {
	groups    []robotsGroup
	fetchedAt time.Time
}

func (e robotsEntry) expired(now time.Time) bool {
	return now.Sub(e.fetchedAt) > robotsCacheTTL
}

// Robots checks URLs against the target's robots.txt. Results are cached for
// 24 hours per host; fetch failures fall back to allow-all.
type Robots struct {
	userAgent string
	proxyURL  string
	client    *http.Client
	nowFunc   func() time.Time

	mu    sync.Mutex
	cache map[string]robotsEntry
}

// NewRobots creates a robots.txt checker. userAgent is the product token
// matched against User-agent lines, proxyURL is optional.
func NewRobots(userAgent, proxyURL string) *Robots {
	return &Robots{
		userAgent: userAgent,
		proxyURL:  strings.TrimSuffix(proxyURL, "/"),
		client:    &http.Client{Timeout: 10 * time.Second},
		nowFunc:   time.Now,
		cache:     map[string]robotsEntry{},
	}
}

// Allowed reports whether the URL's path may be fetched
func (r *Robots) Allowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := parsed.Path
	if path == "" {
		path = "/"
	}

	group := r.matchingGroup(ctx, parsed.Scheme+"://"+parsed.Host)
	if group == nil {
		return true
	}
	// first matching rule wins, no match means allowed
	for _, rule := range group.rules {
		if rule.pattern.MatchString(path) {
			return rule.allow
		}
	}
	return true
}

// CrawlDelay returns the crawl delay for the host, zero when unspecified
func (r *Robots) CrawlDelay(ctx context.Context, baseURL string) time.Duration {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return 0
	}
	group := r.matchingGroup(ctx, parsed.Scheme+"://"+parsed.Host)
	if group == nil {
		return 0
	}
	return group.crawlDelay
}

// matchingGroup returns the directives for our user-agent: exact token match
// first, then substring match, then the * group
func (r *Robots) matchingGroup(ctx context.Context, base string) *robotsGroup {
	entry := r.entry(ctx, base)

	uaLower := strings.ToLower(r.userAgent)
	var exact, partial, wildcard *robotsGroup
	for i := range entry.groups {
		g := &entry.groups[i]
		agent := strings.ToLower(g.agent)
		switch {
		case agent == uaLower:
			exact = g
		case agent == "*":
			wildcard = g
		case strings.Contains(uaLower, agent) || strings.Contains(agent, uaLower):
			partial = g
		}
	}
	if exact != nil {
		return exact
	}
	if partial != nil {
		return partial
	}
	return wildcard
}

func (r *Robots) entry(ctx context.Context, base string) robotsEntry {
	now := r.nowFunc()

	r.mu.Lock()
	cached, ok := r.cache[base]
	r.mu.Unlock()
	if ok && !cached.expired(now) {
		return cached
	}

	entry := robotsEntry{fetchedAt: now}
	content, err := r.fetch(ctx, base)
	if err != nil {
		// unreachable robots.txt allows everything, same as 404
		lgr.Printf("[WARN] robots.txt fetch failed for %s: %v", base, err)
	} else {
		entry.groups = parseRobots(content)
	}

	r.mu.Lock()
	r.cache[base] = entry
	r.mu.Unlock()
	return entry
}

func (r *Robots) fetch(ctx context.Context, base string) (string, error) {
	robotsURL := base + "/robots.txt"
	if r.proxyURL != "" {
		parsed, err := url.Parse(base)
		if err != nil {
			return "", fmt.Errorf("parse base url: %w", err)
		}
		robotsURL = fmt.Sprintf("%s/proxy/%s/robots.txt", r.proxyURL, parsed.Host)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", robotsURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil // no robots.txt, everything allowed
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, robotsURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", fmt.Errorf("read robots body: %w", err)
	}
	return string(body), nil
}

func parseRobots(content string) []robotsGroup {
	var groups []robotsGroup
	var current *robotsGroup

	for _, line := range strings.Split(content, "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "user-agent":
			groups = append(groups, robotsGroup{agent: value})
			current = &groups[len(groups)-1]
		case "disallow", "allow":
			if current == nil || value == "" {
				continue // empty disallow means allow all
			}
			pattern, err := compileRobotsPattern(value)
			if err != nil {
				continue
			}
			current.rules = append(current.rules, robotsRule{pattern: pattern, allow: key == "allow"})
		case "crawl-delay":
			if current == nil {
				continue
			}
			if sec, err := strconv.ParseFloat(value, 64); err == nil {
				current.crawlDelay = time.Duration(sec * float64(time.Second))
			}
		}
	}
	return groups
}

// compileRobotsPattern translates a robots path pattern into a regexp:
// * matches any run, a trailing $ anchors the end, otherwise prefix match
func compileRobotsPattern(path string) (*regexp.Regexp, error) {
	anchored := strings.HasSuffix(path, "$")
	path = strings.TrimSuffix(path, "$")

	var b strings.Builder
	b.WriteString("^")
	for i, part := range strings.Split(path, "*") {
		if i > 0 {
			b.WriteString(".*")
		}
		b.WriteString(regexp.QuoteMeta(part))
	}
	if anchored {
		b.WriteString("$")
	}
	return regexp.Compile(b.String())
}
