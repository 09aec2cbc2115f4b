// Package metrics collects and exposes Prometheus counters for the fetch
// pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records pipeline activity for Prometheus scraping
type Collector struct {
	fetchSuccess  *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	itemsNew      *prometheus.CounterVec
	itemsDup      *prometheus.CounterVec
	budgetWaits   prometheus.Counter
	backoffDelay  *prometheus.GaugeVec
	fetchLatency  prometheus.Histogram
	proposalsSent prometheus.Counter
}

// NewCollector creates a collector and registers its metrics
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		fetchSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moltwatch_fetch_success_total",
			Help: "Successful endpoint polls",
		}, []string{"endpoint"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moltwatch_fetch_errors_total",
			Help: "Failed endpoint polls by error class",
		}, []string{"endpoint", "class"}),
		itemsNew: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moltwatch_items_processed_total",
			Help: "Items that passed dedup and were classified",
		}, []string{"endpoint"}),
		itemsDup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moltwatch_items_duplicate_total",
			Help: "Items skipped by the dedup filter",
		}, []string{"endpoint"}),
		budgetWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "moltwatch_budget_waits_total",
			Help: "Polls delayed because the rate budget was exhausted",
		}),
		backoffDelay: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "moltwatch_backoff_delay_seconds",
			Help: "Current backoff delay per endpoint, zero when healthy",
		}, []string{"endpoint"}),
		fetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "moltwatch_fetch_latency_seconds",
			Help:    "API fetch latency",
			Buckets: prometheus.DefBuckets,
		}),
		proposalsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "moltwatch_taxonomy_proposals_total",
			Help: "Taxonomy change proposals emitted",
		}),
	}

	reg.MustRegister(
		c.fetchSuccess,
		c.fetchErrors,
		c.itemsNew,
		c.itemsDup,
		c.budgetWaits,
		c.backoffDelay,
		c.fetchLatency,
		c.proposalsSent,
	)

	return c
}

// FetchSuccess records a successful poll
func (c *Collector) FetchSuccess(endpoint string) {
	c.fetchSuccess.WithLabelValues(endpoint).Inc()
}

// FetchError records a failed poll with its error class
func (c *Collector) FetchError(endpoint, class string) {
	c.fetchErrors.WithLabelValues(endpoint, class).Inc()
}

// ItemProcessed records an item that made it through the pipeline
func (c *Collector) ItemProcessed(endpoint string) {
	c.itemsNew.WithLabelValues(endpoint).Inc()
}

// ItemDuplicate records an item dropped by dedup
func (c *Collector) ItemDuplicate(endpoint string) {
	c.itemsDup.WithLabelValues(endpoint).Inc()
}

// BudgetWait records a poll postponed by the rate budget
func (c *Collector) BudgetWait() {
	c.budgetWaits.Inc()
}

// BackoffDelay publishes the endpoint's current backoff delay
func (c *Collector) BackoffDelay(endpoint string, delay time.Duration) {
	c.backoffDelay.WithLabelValues(endpoint).Set(delay.Seconds())
}

// FetchLatency records one fetch round trip
func (c *Collector) FetchLatency(d time.Duration) {
	c.fetchLatency.Observe(d.Seconds())
}

// ProposalEmitted records one taxonomy proposal
func (c *Collector) ProposalEmitted() {
	c.proposalsSent.Inc()
}

// Handler returns the scrape handler for the given gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
