package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, 1, cfg.Database.TxMaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ReportTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Auth.Enabled)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_TX_MAX_ATTEMPTS", "3")
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STAFF_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, 3, cfg.Database.TxMaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Auth.Enabled)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("DB_RETRY_DELAY", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:      AppConfig{Environment: "development"},
			Database: DatabaseConfig{MaxConns: 10, MinConns: 1, TxMaxAttempts: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"no pool", func(c *Config) { c.Database.MaxConns = 0 }, "DB_MAX_CONNECTIONS"},
		{"min above max", func(c *Config) { c.Database.MinConns = 11 }, "DB_MIN_CONNECTIONS"},
		{"zero attempts", func(c *Config) { c.Database.TxMaxAttempts = 0 }, "DB_TX_MAX_ATTEMPTS"},
		{"auth without secret", func(c *Config) {
			c.Auth.Enabled = true
			c.Auth.StaffPasswordHash = "hash"
		}, "JWT_SECRET"},
		{"auth without hash", func(c *Config) {
			c.Auth.Enabled = true
			c.Auth.JWTSecret = "secret"
		}, "STAFF_PASSWORD_HASH"},
		{"production without auth", func(c *Config) { c.App.Environment = "production" }, "AUTH_ENABLED"},
		{"negative rps", func(c *Config) { c.RateLimit.RPS = -1 }, "RATE_LIMIT_RPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DBConfig(t *testing.T) {
	dc := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "require", MaxConns: 8, MinConns: 2}
	got := dc.DBConfig()

	assert.Equal(t, "h", got.Host)
	assert.Equal(t, "u", got.Username)
	assert.Equal(t, "n", got.DBName)
	assert.Equal(t, int32(8), got.MaxConns)
	assert.Equal(t, "postgres://u:p@h:5433/n?sslmode=require", got.DSN())
}

func TestValidate_Snapshot(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:      AppConfig{Environment: "development"},
			Database: DatabaseConfig{MaxConns: 10, MinConns: 1, TxMaxAttempts: 1},
			Redis:    RedisConfig{Addr: "redis:6379"},
			Snapshot: SnapshotConfig{
				Enabled:     true,
				Cron:        "0 3 * * *",
				Queue:       "reports",
				MaxRetry:    3,
				Timeout:     time.Minute,
				Concurrency: 1,
			},
			Storage: StorageConfig{Endpoint: "minio:9000", Bucket: "library-reports"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"disabled skips checks", func(c *Config) {
			c.Snapshot.Enabled = false
			c.Snapshot.Cron = "whenever"
		}, ""},
		{"no redis", func(c *Config) { c.Redis.Addr = "" }, "REDIS_ADDR"},
		{"no storage", func(c *Config) { c.Storage.Endpoint = "" }, "MINIO_ENDPOINT"},
		{"bad cron", func(c *Config) { c.Snapshot.Cron = "every day" }, "SNAPSHOT_CRON"},
		{"seconds field rejected", func(c *Config) { c.Snapshot.Cron = "0 0 3 * * *" }, "SNAPSHOT_CRON"},
		{"no workers", func(c *Config) { c.Snapshot.Concurrency = 0 }, "WORKER_CONCURRENCY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
