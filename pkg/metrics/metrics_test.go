package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.FetchSuccess("posts:new")
	c.FetchSuccess("posts:new")
	c.FetchError("posts:new", "rate_limited")
	c.ItemProcessed("posts:new")
	c.ItemDuplicate("posts:new")
	c.BudgetWait()
	c.BackoffDelay("posts:new", 90*time.Second)
	c.ProposalEmitted()

	assert.InDelta(t, 2.0, testutil.ToFloat64(c.fetchSuccess.WithLabelValues("posts:new")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.fetchErrors.WithLabelValues("posts:new", "rate_limited")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.itemsNew.WithLabelValues("posts:new")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.itemsDup.WithLabelValues("posts:new")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.budgetWaits), 0.0001)
	assert.InDelta(t, 90.0, testutil.ToFloat64(c.backoffDelay.WithLabelValues("posts:new")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.proposalsSent), 0.0001)
}

func TestHandler_Scrape(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.FetchSuccess("submolts")

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "moltwatch_fetch_success_total")
}
