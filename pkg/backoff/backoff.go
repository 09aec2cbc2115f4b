// Package backoff implements error classification and delay calculation for
// failed API requests. Rate limited and server errors back off exponentially,
// timeouts linearly, client errors are never retried.
package backoff

import (
	"math/rand"
	"net/http"
	"time"
)

// ErrClass is the retry classification of a request failure
type ErrClass string

// error classes
const (
	ClassRateLimited ErrClass = "rate_limited" // 429
	ClassServer      ErrClass = "server_error" // 5xx
	ClassClient      ErrClass = "client_error" // 4xx except 429, not retried
	ClassTimeout     ErrClass = "timeout"
	ClassConnection  ErrClass = "connection"
	ClassUnknown     ErrClass = "unknown"
)

// Config holds backoff parameters
type Config struct {
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	MaxExponent       int
	JitterMin         float64
	JitterMax         float64
	TimeoutMultiplier float64 // linear slope for timeout/connection errors
}

// DefaultConfig returns the standard backoff parameters: 1s base, 5m cap,
// exponent capped at 8, jitter in [0.8, 1.2]
func DefaultConfig() Config {
	return Config{
		BaseDelay:         time.Second,
		MaxDelay:          5 * time.Minute,
		MaxExponent:       8,
		JitterMin:         0.8,
		JitterMax:         1.2,
		TimeoutMultiplier: 2.0,
	}
}

// Controller computes retry delays. It holds no per-endpoint state, the
// scheduler owns error counts.
type Controller struct {
	cfg  Config
	rand func() float64 // uniform in [0,1), replaceable in tests
}

// New creates a controller, applying defaults for zero config values
func New(cfg Config) *Controller {
	def := DefaultConfig()
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = def.MaxDelay
	}
	if cfg.MaxExponent == 0 {
		cfg.MaxExponent = def.MaxExponent
	}
	if cfg.JitterMin == 0 && cfg.JitterMax == 0 {
		cfg.JitterMin, cfg.JitterMax = def.JitterMin, def.JitterMax
	}
	if cfg.TimeoutMultiplier == 0 {
		cfg.TimeoutMultiplier = def.TimeoutMultiplier
	}
	return &Controller{cfg: cfg, rand: rand.Float64}
}

// NextDelay returns the delay before the next attempt after errCount
// consecutive failures of the given class. A server-provided retryAfter
// overrides the calculation when positive. Client errors return zero, the
// caller must not retry them.
func (c *Controller) NextDelay(class ErrClass, errCount int, retryAfter time.Duration) time.Duration {
	if class == ClassClient {
		return 0
	}
	if retryAfter > 0 {
		return min(retryAfter, c.cfg.MaxDelay)
	}

	var delay time.Duration
	switch class {
	case ClassTimeout, ClassConnection:
		// linear growth, no exponent
		delay = time.Duration(float64(c.cfg.BaseDelay) * c.cfg.TimeoutMultiplier * float64(errCount))
	default:
		exp := min(errCount, c.cfg.MaxExponent)
		delay = c.cfg.BaseDelay * (1 << exp)
	}

	jitter := c.cfg.JitterMin + c.rand()*(c.cfg.JitterMax-c.cfg.JitterMin)
	delay = time.Duration(float64(delay) * jitter)
	return min(delay, c.cfg.MaxDelay)
}

// Retryable reports whether a failure class should be retried at all
func Retryable(class ErrClass) bool {
	return class != ClassClient
}

// ClassifyStatus maps an HTTP status code to an error class
func ClassifyStatus(code int) ErrClass {
	switch {
	case code == http.StatusTooManyRequests:
		return ClassRateLimited
	case code >= 400 && code < 500:
		return ClassClient
	case code >= 500 && code < 600:
		return ClassServer
	default:
		return ClassUnknown
	}
}

// ParseRetryAfter parses a Retry-After header value, either a number of
// seconds or an HTTP-date. Returns zero when the header is absent or invalid.
func ParseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := time.ParseDuration(value + "s"); err == nil && secs > 0 {
		return secs
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
