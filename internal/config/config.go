package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// public URL the site is reachable at, used for post links, the sitemap and blob URLs
	PublicBaseURL string `toml:"public_base_url"`
	// browser origins allowed to call the API
	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// rate limiting
	LoginRateLimitAllowedPerMin    int `toml:"login_rate_limit_allowed_per_min"`
	CommentsRateLimitAllowedPerMin int `toml:"comments_rate_limit_allowed_per_min"`

	// blob storage: "disk" or "drive"
	BlobStore         string `toml:"blob_store"`
	BlobStoreDiskRoot string `toml:"blob_store_disk_root"`
	DriveFolderName   string `toml:"drive_folder_name"`

	BodyCacheSizeMB int `toml:"body_cache_size_mb"`

	// feeds
	FeedFirstPageSize int `toml:"feed_first_page_size"`
	FeedPageSize      int `toml:"feed_page_size"`
	UserPostsPageSize int `toml:"user_posts_page_size"`

	// e.g. "6h", empty disables the periodic counters repair
	ReconcileInterval string `toml:"reconcile_interval"`

	Ranking RankingConfig `toml:"ranking"`

	reconcileInterval time.Duration
}

type RankingConfig struct {
	LikeWeight    float64 `toml:"like_weight"`
	CommentWeight float64 `toml:"comment_weight"`
	ShareWeight   float64 `toml:"share_weight"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env, with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s missing", env)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.FeedFirstPageSize <= 0 {
		c.FeedFirstPageSize = 7
	}
	if c.FeedPageSize <= 0 {
		c.FeedPageSize = 5
	}
	if c.UserPostsPageSize <= 0 {
		c.UserPostsPageSize = 2
	}
	if c.BodyCacheSizeMB <= 0 {
		c.BodyCacheSizeMB = 32
	}
	if c.BlobStore == "" {
		c.BlobStore = "disk"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.CommentsRateLimitAllowedPerMin <= 0 {
		c.CommentsRateLimitAllowedPerMin = 20
	}

	if c.Ranking == (RankingConfig{}) {
		c.Ranking = RankingConfig{LikeWeight: 27, CommentWeight: 36, ShareWeight: 36}
	}
	if c.Ranking.LikeWeight < 0 || c.Ranking.CommentWeight < 0 || c.Ranking.ShareWeight < 0 {
		return errors.New("ranking weights must not be negative")
	}
	if c.Ranking.LikeWeight+c.Ranking.CommentWeight+c.Ranking.ShareWeight == 0 {
		return errors.New("ranking weights must not all be zero")
	}

	if c.ReconcileInterval != "" {
		d, err := time.ParseDuration(c.ReconcileInterval)
		if err != nil {
			return fmt.Errorf("parse reconcile interval: %w", err)
		}
		c.reconcileInterval = d
	}

	return nil
}

// ReconcileEvery returns the parsed reconcile interval, zero when disabled.
func (c *Config) ReconcileEvery() time.Duration {
	return c.reconcileInterval
}
