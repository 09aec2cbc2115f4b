package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleRobots = `# moltbook robots
User-agent: *
Disallow: /admin/
Disallow: /*.json$
Allow: /api/v1/
Disallow: /api/
Crawl-delay: 2

User-agent: BadBot
Disallow: /
`

func robotsServer(t *testing.T, body string, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		if r.URL.Path != "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRobots_PathMatching(t *testing.T) {
	srv := robotsServer(t, sampleRobots, http.StatusOK, nil)
	r := NewRobots("Moltwatch", "")
	ctx := context.Background()

	tests := []struct {
		path    string
		allowed bool
	}{
		{"/", true},
		{"/posts", true},
		{"/admin/users", false},
		{"/api/v1/posts", true},      // allow listed before the broader disallow
		{"/api/internal", false},     // caught by /api/
		{"/export.json", false},      // wildcard with end anchor
		{"/export.json/view", true},  // anchor does not match mid-path
		{"/data/feed.json", false},   // wildcard spans directories
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.allowed, r.Allowed(ctx, srv.URL+tt.path))
		})
	}
}

func TestRobots_CrawlDelay(t *testing.T) {
	srv := robotsServer(t, sampleRobots, http.StatusOK, nil)
	r := NewRobots("Moltwatch", "")

	assert.Equal(t, 2*time.Second, r.CrawlDelay(context.Background(), srv.URL))
}

func TestRobots_AgentPrecedence(t *testing.T) {
	body := `User-agent: *
Crawl-delay: 1

User-agent: Moltwatch
Disallow: /private/
Crawl-delay: 5
`
	srv := robotsServer(t, body, http.StatusOK, nil)
	r := NewRobots("Moltwatch", "")
	ctx := context.Background()

	// exact group wins over wildcard
	assert.Equal(t, 5*time.Second, r.CrawlDelay(ctx, srv.URL))
	assert.False(t, r.Allowed(ctx, srv.URL+"/private/x"))
	assert.True(t, r.Allowed(ctx, srv.URL+"/public"))
}

func TestRobots_MissingFileAllowsAll(t *testing.T) {
	srv := robotsServer(t, "", http.StatusNotFound, nil)
	r := NewRobots("Moltwatch", "")

	assert.True(t, r.Allowed(context.Background(), srv.URL+"/anything"))
	assert.Zero(t, r.CrawlDelay(context.Background(), srv.URL))
}

func TestRobots_CacheAvoidsRefetch(t *testing.T) {
	var hits atomic.Int32
	srv := robotsServer(t, sampleRobots, http.StatusOK, &hits)
	r := NewRobots("Moltwatch", "")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		r.Allowed(ctx, srv.URL+"/posts")
	}
	assert.Equal(t, int32(1), hits.Load())

	// expire the cache and check again
	r.nowFunc = func() time.Time { return time.Now().Add(25 * time.Hour) }
	r.Allowed(ctx, srv.URL+"/posts")
	assert.Equal(t, int32(2), hits.Load())
}

func TestRobots_FetchErrorAllowsAll(t *testing.T) {
	srv := robotsServer(t, "", http.StatusInternalServerError, nil)
	r := NewRobots("Moltwatch", "")

	assert.True(t, r.Allowed(context.Background(), srv.URL+"/anything"))
}
