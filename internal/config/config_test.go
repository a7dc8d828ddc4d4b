package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
adapters:
  - name: shop-a
    store_id: 6a95b1f0-0000-0000-0000-000000000001
    base_url: https://api.shop-a.example.com
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				require.Len(t, cfg.Adapters, 1)
				assert.Equal(t, 10*time.Second, cfg.Adapters[0].FetchTimeout)
				assert.Equal(t, 5.0, cfg.Adapters[0].RateLimit.PerSecond)
				assert.Equal(t, 10, cfg.Adapters[0].RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Adapters[0].RateLimit.DailyLimit)
				assert.Equal(t, 15*time.Minute, cfg.Refresh.Interval)
				assert.Equal(t, 5*time.Minute, cfg.Refresh.JobTimeout)
				assert.Equal(t, 8, cfg.Refresh.Workers)
				assert.Equal(t, 5, cfg.Refresh.MaxQuotesPerStore)
				assert.Equal(t, 500*time.Millisecond, cfg.Refresh.RetryBackoff)
				assert.Equal(t, "pricewatch.price-changes", cfg.Events.Topic)
				assert.Equal(t, "pricewatch", cfg.Telemetry.ServiceName)
				assert.Equal(t, 1.0, cfg.Telemetry.SampleRatio)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "environment variables expanded",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: ${TEST_DB_PASSWORD}
`,
			envVars: map[string]string{"TEST_DB_PASSWORD": "s3cret"},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "s3cret", cfg.Database.Password)
			},
		},
		{
			name: "missing database host fails",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "adapter without base_url fails",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
adapters:
  - name: shop-a
    store_id: 6a95b1f0-0000-0000-0000-000000000001
`,
			wantErr: "adapter shop-a: base_url is required",
		},
		{
			name: "duplicate adapter names fail",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
adapters:
  - name: shop-a
    store_id: 6a95b1f0-0000-0000-0000-000000000001
    base_url: https://one.example.com
  - name: shop-a
    store_id: 6a95b1f0-0000-0000-0000-000000000002
    base_url: https://two.example.com
`,
			wantErr: "is duplicated",
		},
		{
			name: "enabled webhook requires url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
notifications:
  webhook:
    enabled: true
`,
			wantErr: "notifications.webhook.url is required",
		},
		{
			name: "enabled events require brokers",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
events:
  enabled: true
`,
			wantErr: "events.brokers is required",
		},
		{
			name: "enabled telemetry requires endpoint",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
telemetry:
  enabled: true
`,
			wantErr: "telemetry.endpoint is required",
		},
		{
			name: "invalid log level fails",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
logging:
  level: verbose
`,
			wantErr: "logging.level must be one of",
		},
		{
			name:    "invalid yaml fails",
			yaml:    "database: [not a map",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	d := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Name:     "pricewatch",
		User:     "pw",
		Password: "hunter2",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 dbname=pricewatch user=pw password=hunter2 sslmode=require",
		d.DSN(),
	)
}
