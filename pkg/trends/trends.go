// Package trends computes rolling activity statistics over persisted posts.
// All window stats are derived views recomputed from the store's timestamp
// range queries, nothing here owns data.
package trends

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/moltwatch/pkg/domain"
)

//go:generate moq -out mocks/reader.go -pkg mocks -skip-ensure -fmt goimports . Reader

// Windows supported by the aggregator
var Windows = []time.Duration{time.Hour, 6 * time.Hour, 24 * time.Hour, 7 * 24 * time.Hour}

// activity spike parameters
const (
	spikeMultiplier  = 3.0
	coldStartPerHour = 10.0 // absolute floor when no 7-day history exists
)

// Reader is the store-side interface for trend queries
type Reader interface {
	CountThemePosts(ctx context.Context, theme string, from, to time.Time) (posts, uniqueAuthors int, err error)
	CountAllPosts(ctx context.Context, from, to time.Time) (int, error)
}

// Aggregator computes window stats, velocity and spike flags
type Aggregator struct {
	reader  Reader
	nowFunc func() time.Time
}

// NewAggregator creates an aggregator over the given reader
func NewAggregator(reader Reader) *Aggregator {
	return &Aggregator{reader: reader, nowFunc: time.Now}
}

// WindowStats returns post and unique-author counts for one theme and window
func (a *Aggregator) WindowStats(ctx context.Context, theme string, window time.Duration) (domain.TrendWindowStat, error) {
	now := a.nowFunc()
	posts, authors, err := a.reader.CountThemePosts(ctx, theme, now.Add(-window), now)
	if err != nil {
		return domain.TrendWindowStat{}, fmt.Errorf("count posts for %s over %v: %w", theme, window, err)
	}
	return domain.TrendWindowStat{Theme: theme, Window: window, PostCount: posts, UniqueAuthors: authors}, nil
}

// ThemeTrend is the full trend picture for one theme
type ThemeTrend struct {
	Theme    string                            `json:"theme"`
	Stats    map[string]domain.TrendWindowStat `json:"stats"` // keyed by window label, e.g. "1h"
	Velocity float64                           `json:"velocity"`
	HasData  bool                              `json:"has_data"` // false when the 24h window is empty
	Spiking  bool                              `json:"spiking"`
}

// Trend computes all windows plus velocity and the spike flag for a theme
func (a *Aggregator) Trend(ctx context.Context, theme string) (*ThemeTrend, error) {
	res := &ThemeTrend{Theme: theme, Stats: map[string]domain.TrendWindowStat{}}
	for _, w := range Windows {
		stat, err := a.WindowStats(ctx, theme, w)
		if err != nil {
			return nil, err
		}
		res.Stats[windowLabel(w)] = stat
	}

	hourly := res.Stats["1h"].PostCount
	daily := res.Stats["24h"].PostCount

	// zero denominator means insufficient data, not infinite velocity
	if daily > 0 {
		res.HasData = true
		res.Velocity = float64(hourly) * 24 / float64(daily)
		res.Spiking = hourly*24 > daily*2
	}
	return res, nil
}

// ActivitySignal reports whether overall item intake is spiking against the
// 7-day average. It feeds the scheduler's adaptive interval decision and is
// theme independent.
func (a *Aggregator) ActivitySignal(ctx context.Context) (spiking bool, perHour float64, err error) {
	now := a.nowFunc()

	lastHour, err := a.reader.CountAllPosts(ctx, now.Add(-time.Hour), now)
	if err != nil {
		return false, 0, fmt.Errorf("count last hour: %w", err)
	}
	week, err := a.reader.CountAllPosts(ctx, now.Add(-7*24*time.Hour), now.Add(-time.Hour))
	if err != nil {
		return false, 0, fmt.Errorf("count week history: %w", err)
	}

	perHour = float64(lastHour)
	if week == 0 {
		// cold start, absolute floor
		return perHour > coldStartPerHour, perHour, nil
	}

	historicalPerHour := float64(week) / (7*24 - 1)
	return perHour > historicalPerHour*spikeMultiplier, perHour, nil
}

func windowLabel(w time.Duration) string {
	switch w {
	case time.Hour:
		return "1h"
	case 6 * time.Hour:
		return "6h"
	case 24 * time.Hour:
		return "24h"
	case 7 * 24 * time.Hour:
		return "7d"
	default:
		return w.String()
	}
}
