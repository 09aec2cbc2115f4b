package domain

import "time"

// EndpointPollState is the persisted schedule record for one polled endpoint,
// single row per endpoint with upsert semantics. Mutated only by the scheduler.
type EndpointPollState struct {
	Endpoint     string
	LastPostID   string
	LastPollAt   *time.Time
	NextPollAt   *time.Time
	ErrorCount   int
	LastError    string
	FetchedLast  int
	FetchedTotal int
}

// TrendWindowStat is a derived per-theme, per-window view recomputable
// from persisted posts at any time.
type TrendWindowStat struct {
	Theme         string
	Window        time.Duration
	PostCount     int
	UniqueAuthors int
}
