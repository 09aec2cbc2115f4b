package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:moltwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	API struct {
		Host         string        `yaml:"host" json:"host" jsonschema:"default=www.moltbook.com,description=Moltbook API host"`
		ProxyURL     string        `yaml:"proxy_url" json:"proxy_url" jsonschema:"description=Optional reverse proxy base URL"`
		UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Moltwatch/1.0 (research monitor),description=User agent for API requests"`
		Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=API request timeout"`
		FetchLimit   int           `yaml:"fetch_limit" json:"fetch_limit" jsonschema:"default=25,maximum=25,description=Posts per request"`
		CommentLimit int           `yaml:"comment_limit" json:"comment_limit" jsonschema:"default=100,maximum=100,description=Comments per request"`
	} `yaml:"api" json:"api" jsonschema:"description=Moltbook API client configuration"`

	RateLimit struct {
		PerMinute        int     `yaml:"per_minute" json:"per_minute" jsonschema:"default=100,description=Requests per minute cap"`
		PerHour          int     `yaml:"per_hour" json:"per_hour" jsonschema:"default=5000,description=Requests per hour cap"`
		PerDay           int     `yaml:"per_day" json:"per_day" jsonschema:"default=50000,description=Requests per day cap"`
		WarningThreshold float64 `yaml:"warning_threshold" json:"warning_threshold" jsonschema:"default=0.8,minimum=0,maximum=1,description=Usage fraction that triggers a warning"`
	} `yaml:"rate_limit" json:"rate_limit" jsonschema:"description=Request budget configuration"`

	Backoff struct {
		BaseDelay         time.Duration `yaml:"base_delay" json:"base_delay" jsonschema:"default=1s,description=Initial retry delay"`
		MaxDelay          time.Duration `yaml:"max_delay" json:"max_delay" jsonschema:"default=5m,description=Retry delay ceiling"`
		MaxExponent       int           `yaml:"max_exponent" json:"max_exponent" jsonschema:"default=8,description=Exponent cap for exponential backoff"`
		TimeoutMultiplier float64       `yaml:"timeout_multiplier" json:"timeout_multiplier" jsonschema:"default=2,description=Linear slope for timeout errors"`
	} `yaml:"backoff" json:"backoff" jsonschema:"description=Retry backoff configuration"`

	Schedule struct {
		IncludeComments       bool          `yaml:"include_comments" json:"include_comments" jsonschema:"default=false,description=Fetch comments for first-seen posts"`
		HighActivityPerMinute float64       `yaml:"high_activity_per_minute" json:"high_activity_per_minute" jsonschema:"default=10,description=Items per minute above which polling speeds up"`
		LowActivityPerMinute  float64       `yaml:"low_activity_per_minute" json:"low_activity_per_minute" jsonschema:"default=1,description=Items per minute below which polling slows down"`
		TaxonomyPassInterval  time.Duration `yaml:"taxonomy_pass_interval" json:"taxonomy_pass_interval" jsonschema:"default=6h,description=Taxonomy evolution pass cadence"`
		DedupCleanupInterval  time.Duration `yaml:"dedup_cleanup_interval" json:"dedup_cleanup_interval" jsonschema:"default=24h,description=Seen-record cleanup cadence"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Dedup struct {
		SeenTTL time.Duration `yaml:"seen_ttl" json:"seen_ttl" jsonschema:"default=2160h,description=How long seen-post records are kept"`
	} `yaml:"dedup" json:"dedup" jsonschema:"description=Deduplication configuration"`

	Enhancer EnhancerConfig `yaml:"enhancer" json:"enhancer" jsonschema:"description=Optional LLM enhancer for ambiguous classifications"`

	Taxonomy struct {
		ThemesFile   string   `yaml:"themes_file" json:"themes_file" jsonschema:"description=Path to the theme seed file"`
		RetiredGoals []string `yaml:"retired_goals" json:"retired_goals" jsonschema:"description=Research goals no longer relevant,used by the deprecation trigger"`
	} `yaml:"taxonomy" json:"taxonomy" jsonschema:"description=Taxonomy configuration"`
}

// EnhancerConfig holds settings for the optional classification enhancer
type EnhancerConfig struct {
	Enabled     bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the enhancer"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.2,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Hard deadline per enhancer call"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:moltwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.API.Host == "" {
		cfg.API.Host = "www.moltbook.com"
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = "Moltwatch/1.0 (research monitor)"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.API.FetchLimit == 0 {
		cfg.API.FetchLimit = 25
	}
	if cfg.API.CommentLimit == 0 {
		cfg.API.CommentLimit = 100
	}

	if cfg.RateLimit.PerMinute == 0 {
		cfg.RateLimit.PerMinute = 100
	}
	if cfg.RateLimit.PerHour == 0 {
		cfg.RateLimit.PerHour = 5000
	}
	if cfg.RateLimit.PerDay == 0 {
		cfg.RateLimit.PerDay = 50000
	}
	if cfg.RateLimit.WarningThreshold == 0 {
		cfg.RateLimit.WarningThreshold = 0.8
	}

	if cfg.Backoff.BaseDelay == 0 {
		cfg.Backoff.BaseDelay = time.Second
	}
	if cfg.Backoff.MaxDelay == 0 {
		cfg.Backoff.MaxDelay = 5 * time.Minute
	}
	if cfg.Backoff.MaxExponent == 0 {
		cfg.Backoff.MaxExponent = 8
	}
	if cfg.Backoff.TimeoutMultiplier == 0 {
		cfg.Backoff.TimeoutMultiplier = 2.0
	}

	if cfg.Schedule.HighActivityPerMinute == 0 {
		cfg.Schedule.HighActivityPerMinute = 10
	}
	if cfg.Schedule.LowActivityPerMinute == 0 {
		cfg.Schedule.LowActivityPerMinute = 1
	}
	if cfg.Schedule.TaxonomyPassInterval == 0 {
		cfg.Schedule.TaxonomyPassInterval = 6 * time.Hour
	}
	if cfg.Schedule.DedupCleanupInterval == 0 {
		cfg.Schedule.DedupCleanupInterval = 24 * time.Hour
	}

	if cfg.Dedup.SeenTTL == 0 {
		cfg.Dedup.SeenTTL = 90 * 24 * time.Hour
	}

	if cfg.Enhancer.Temperature == 0 {
		cfg.Enhancer.Temperature = 0.2
	}
	if cfg.Enhancer.MaxTokens == 0 {
		cfg.Enhancer.MaxTokens = 300
	}
	if cfg.Enhancer.Timeout == 0 {
		cfg.Enhancer.Timeout = 10 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}

	if cfg.API.FetchLimit < 1 || cfg.API.FetchLimit > 25 {
		return fmt.Errorf("api.fetch_limit must be between 1 and 25")
	}
	if cfg.API.CommentLimit < 1 || cfg.API.CommentLimit > 100 {
		return fmt.Errorf("api.comment_limit must be between 1 and 100")
	}

	if cfg.RateLimit.WarningThreshold < 0 || cfg.RateLimit.WarningThreshold > 1 {
		return fmt.Errorf("rate_limit.warning_threshold must be between 0 and 1")
	}

	if cfg.Schedule.LowActivityPerMinute >= cfg.Schedule.HighActivityPerMinute {
		return fmt.Errorf("schedule.low_activity_per_minute must be below high_activity_per_minute")
	}

	if cfg.Enhancer.Enabled {
		if cfg.Enhancer.Endpoint == "" {
			return fmt.Errorf("enhancer.endpoint is required when the enhancer is enabled")
		}
		if cfg.Enhancer.Model == "" {
			return fmt.Errorf("enhancer.model is required when the enhancer is enabled")
		}
		if cfg.Enhancer.Temperature < 0 || cfg.Enhancer.Temperature > 2 {
			return fmt.Errorf("enhancer.temperature must be between 0 and 2")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetEnhancerConfig returns enhancer configuration
func (c *Config) GetEnhancerConfig() EnhancerConfig {
	return c.Enhancer
}
