package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/analytics"
	"github.com/2beens/fittracker/internal/kvstore"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// prometheus metrics listener
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage medium
	StoreBackend string        `toml:"store_backend"`
	DataFile     string        `toml:"data_file"`
	CacheSizeMB  int           `toml:"cache_size_mb"`
	CacheTTL     time.Duration `toml:"cache_ttl"`
	// redis
	RedisHost   string `toml:"redis_host"`
	RedisPort   string `toml:"redis_port"`
	RedisPrefix string `toml:"redis_prefix"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// domain
	Timezone          string          `toml:"timezone"`
	Goals             analytics.Goals `toml:"goals"`
	AllowedOrigins    []string        `toml:"allowed_origins"`
	RateLimitPerMin   int             `toml:"rate_limit_per_min"`
	RequireWriteToken bool            `toml:"require_write_token"`
}

type Toml struct {
	Development *Config
	Production  *Config
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

// Default is the config used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the env table from the TOML file at path and fills in defaults.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found in %s", env, path)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.StoreBackend == "" {
		c.StoreBackend = kvstore.BackendFile
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = kvstore.DefaultCacheTTL
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.RedisPrefix == "" {
		c.RedisPrefix = kvstore.DefaultRedisPrefix
	}
	if c.PostgresHost == "" {
		c.PostgresHost = "localhost"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresDBName == "" {
		c.PostgresDBName = "fittracker"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}

	defaultGoals := analytics.DefaultGoals()
	if c.Goals.DurationMinutes == 0 {
		c.Goals.DurationMinutes = defaultGoals.DurationMinutes
	}
	if c.Goals.DistanceKm == 0 {
		c.Goals.DistanceKm = defaultGoals.DistanceKm
	}
	if c.Goals.Calories == 0 {
		c.Goals.Calories = defaultGoals.Calories
	}

	if c.RateLimitPerMin == 0 {
		c.RateLimitPerMin = 120
	}
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case kvstore.BackendMemory, kvstore.BackendFile, kvstore.BackendRedis, kvstore.BackendPostgres:
	default:
		return fmt.Errorf("%w: %s", kvstore.ErrUnknownBackend, c.StoreBackend)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return c.Goals.Validate()
}

// Location resolves the configured timezone, local time if unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}

// Secrets never live in the config file.
type Secrets struct {
	RedisPassword    string
	PostgresPassword string
	APITokenHash     string
	SentryDSN        string
	HoneycombEnabled bool
}

func SecretsFromEnv() Secrets {
	return Secrets{
		RedisPassword:    os.Getenv("FIT_REDIS_PASS"),
		PostgresPassword: os.Getenv("FIT_POSTGRES_PASS"),
		APITokenHash:     os.Getenv("FIT_API_TOKEN_HASH"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		HoneycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
}
