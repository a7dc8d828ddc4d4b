// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Adapters      []AdapterConfig     `yaml:"adapters"`
	Refresh       RefreshConfig       `yaml:"refresh"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Events        EventsConfig        `yaml:"events"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// AdapterConfig defines one retailer adapter.
type AdapterConfig struct {
	Name         string          `yaml:"name"`
	StoreID      string          `yaml:"store_id"`
	BaseURL      string          `yaml:"base_url"`
	APIKey       string          `yaml:"api_key"`
	FetchTimeout time.Duration   `yaml:"fetch_timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines per-adapter rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// RefreshConfig defines refresh pipeline behavior.
type RefreshConfig struct {
	Interval          time.Duration `yaml:"interval"`
	JobTimeout        time.Duration `yaml:"job_timeout"`
	Workers           int           `yaml:"workers"`
	MaxQuotesPerStore int           `yaml:"max_quotes_per_store"`
	RetryBackoff      time.Duration `yaml:"retry_backoff"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// EventsConfig defines the Kafka change event stream.
type EventsConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// TelemetryConfig defines OpenTelemetry trace export settings.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	for i := range cfg.Adapters {
		applyAdapterDefaults(&cfg.Adapters[i])
	}
	applyRefreshDefaults(&cfg.Refresh)
	applyEventsDefaults(&cfg.Events)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAdapterDefaults(a *AdapterConfig) {
	if a.FetchTimeout == 0 {
		a.FetchTimeout = 10 * time.Second
	}
	if a.RateLimit.PerSecond == 0 {
		a.RateLimit.PerSecond = 5.0
	}
	if a.RateLimit.Burst == 0 {
		a.RateLimit.Burst = 10
	}
	if a.RateLimit.DailyLimit == 0 {
		a.RateLimit.DailyLimit = 5000
	}
}

func applyRefreshDefaults(r *RefreshConfig) {
	if r.Interval == 0 {
		r.Interval = 15 * time.Minute
	}
	if r.JobTimeout == 0 {
		r.JobTimeout = 5 * time.Minute
	}
	if r.Workers == 0 {
		r.Workers = 8
	}
	if r.MaxQuotesPerStore == 0 {
		r.MaxQuotesPerStore = 5
	}
	if r.RetryBackoff == 0 {
		r.RetryBackoff = 500 * time.Millisecond
	}
}

func applyEventsDefaults(e *EventsConfig) {
	if e.Topic == "" {
		e.Topic = "pricewatch.price-changes"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "pricewatch"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	seen := make(map[string]struct{}, len(cfg.Adapters))
	for i := range cfg.Adapters {
		a := &cfg.Adapters[i]
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("adapters[%d].name is required", i))
			continue
		}
		if _, dup := seen[a.Name]; dup {
			errs = append(errs, fmt.Errorf("adapters[%d].name %q is duplicated", i, a.Name))
		}
		seen[a.Name] = struct{}{}

		if a.StoreID == "" {
			errs = append(errs, fmt.Errorf("adapter %s: store_id is required", a.Name))
		}
		if a.BaseURL == "" {
			errs = append(errs, fmt.Errorf("adapter %s: base_url is required", a.Name))
		}
	}

	if cfg.Notifications.Webhook.Enabled && cfg.Notifications.Webhook.URL == "" {
		errs = append(errs, fmt.Errorf("notifications.webhook.url is required when enabled"))
	}
	if cfg.Events.Enabled && len(cfg.Events.Brokers) == 0 {
		errs = append(errs, fmt.Errorf("events.brokers is required when enabled"))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when enabled"))
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error"))
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json"))
	}

	return errors.Join(errs...)
}
