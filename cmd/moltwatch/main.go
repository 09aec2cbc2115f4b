package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/umputun/moltwatch/pkg/backoff"
	"github.com/umputun/moltwatch/pkg/classify"
	"github.com/umputun/moltwatch/pkg/config"
	"github.com/umputun/moltwatch/pkg/dedup"
	"github.com/umputun/moltwatch/pkg/domain"
	"github.com/umputun/moltwatch/pkg/feed"
	"github.com/umputun/moltwatch/pkg/metrics"
	"github.com/umputun/moltwatch/pkg/ratelimit"
	"github.com/umputun/moltwatch/pkg/repository"
	"github.com/umputun/moltwatch/pkg/scheduler"
	"github.com/umputun/moltwatch/pkg/taxonomy"
	"github.com/umputun/moltwatch/pkg/trends"
	"github.com/umputun/moltwatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"moltwatch.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting moltwatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] moltwatch failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the context is cancelled or the
// server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer repos.Close()

	store := newStoreAdapter(repos)

	if err := seedThemes(ctx, cfg, repos.Theme); err != nil {
		return fmt.Errorf("seed themes: %w", err)
	}

	tracker := ratelimit.NewTracker(ratelimit.Config{
		PerMinute:        cfg.RateLimit.PerMinute,
		PerHour:          cfg.RateLimit.PerHour,
		PerDay:           cfg.RateLimit.PerDay,
		WarningThreshold: cfg.RateLimit.WarningThreshold,
	})

	boff := backoff.New(backoff.Config{
		BaseDelay:         cfg.Backoff.BaseDelay,
		MaxDelay:          cfg.Backoff.MaxDelay,
		MaxExponent:       cfg.Backoff.MaxExponent,
		TimeoutMultiplier: cfg.Backoff.TimeoutMultiplier,
	})

	engine := makeEngine(cfg)

	client := feed.NewClient(feed.ClientConfig{
		APIHost:   cfg.API.Host,
		ProxyURL:  cfg.API.ProxyURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout,
		MaxLimit:  cfg.API.FetchLimit,
	})
	robots := feed.NewRobots(cfg.API.UserAgent, cfg.API.ProxyURL)

	aggregator := trends.NewAggregator(repos.Post)
	evolver := taxonomy.New(store, cfg.Taxonomy.RetiredGoals)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	sched := scheduler.New(scheduler.Params{
		Feed:       client,
		Store:      store,
		Dedup:      dedup.NewFilter(repos.Post, cfg.Dedup.SeenTTL),
		Classifier: engine,
		Budget:     tracker,
		Backoff:    boff,
		Robots:     robots,
		Activity:   aggregator,
		Evolver:    evolver,
		Metrics:    collector,
		Config: scheduler.Config{
			FetchLimit:           cfg.API.FetchLimit,
			CommentLimit:         cfg.API.CommentLimit,
			IncludeComments:      cfg.Schedule.IncludeComments,
			HighActivityPerMin:   cfg.Schedule.HighActivityPerMinute,
			LowActivityPerMin:    cfg.Schedule.LowActivityPerMinute,
			TaxonomyPassInterval: cfg.Schedule.TaxonomyPassInterval,
			DedupCleanupInterval: cfg.Schedule.DedupCleanupInterval,
			APIBase:              "https://" + cfg.API.Host,
		},
	})

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:   cfg,
		Store:    store,
		Taxonomy: evolver,
		Trends:   aggregator,
		Rate:     tracker,
		Upstream: client,
		Agents:   client,
		Metrics:  metrics.Handler(registry),
		Version:  revision,
		Debug:    opts.Debug,
	})

	return srv.Run(ctx)
}

// makeEngine builds the classification engine, with the LLM enhancer attached
// when configured
func makeEngine(cfg *config.Config) *classify.Engine {
	if !cfg.Enhancer.Enabled {
		return classify.NewEngine(nil, 0)
	}
	enhancer := classify.NewOpenAIEnhancer(classify.EnhancerConfig{
		Endpoint:    cfg.Enhancer.Endpoint,
		APIKey:      cfg.Enhancer.APIKey,
		Model:       cfg.Enhancer.Model,
		Temperature: cfg.Enhancer.Temperature,
		MaxTokens:   cfg.Enhancer.MaxTokens,
	})
	log.Printf("[INFO] classification enhancer enabled, model %s", cfg.Enhancer.Model)
	return classify.NewEngine(enhancer, cfg.Enhancer.Timeout)
}

// seedThemes loads the theme seed file and inserts themes that are not in the
// store yet. Existing themes are left untouched so evolution survives restarts.
func seedThemes(ctx context.Context, cfg *config.Config, themeRepo *repository.ThemeRepository) error {
	if cfg.Taxonomy.ThemesFile == "" {
		return nil
	}

	seeds, err := config.LoadThemes(cfg.Taxonomy.ThemesFile)
	if err != nil {
		return fmt.Errorf("load theme seeds: %w", err)
	}

	existing, err := themeRepo.GetThemes(ctx, false)
	if err != nil {
		return fmt.Errorf("list themes: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, th := range existing {
		known[th.Name] = struct{}{}
	}

	added := 0
	for _, seed := range seeds {
		if _, ok := known[seed.Name]; ok {
			continue
		}
		theme := domain.Theme{
			Name:        seed.Name,
			Description: seed.Description,
			Keywords:    seed.Keywords,
			Goals:       seed.Goals,
			Parent:      seed.Parent,
			CreatedAt:   time.Now(),
		}
		if err := themeRepo.UpsertTheme(ctx, &theme); err != nil {
			return fmt.Errorf("insert theme %s: %w", seed.Name, err)
		}
		added++
	}

	log.Printf("[INFO] theme seeds loaded: %d in file, %d new", len(seeds), added)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
