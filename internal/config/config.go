package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables (và file .env nếu có)
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Snapshot  SnapshotConfig
	Storage   StorageConfig
}

type AppConfig struct {
	Name            string        `env:"APP_NAME" envDefault:"library-catalog"`
	Environment     string        `env:"APP_ENV" envDefault:"development"` // development, staging, production
	Port            string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ReadTimeout     time.Duration `env:"APP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"APP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type RedisConfig struct {
	Addr      string        `env:"REDIS_ADDR"` // empty disables caching
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB" envDefault:"0"`
	Prefix    string        `env:"REDIS_KEY_PREFIX" envDefault:"library:"`
	ReportTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"5m"`
}

type AuthConfig struct {
	Enabled           bool          `env:"AUTH_ENABLED" envDefault:"false"`
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"JWT_TTL" envDefault:"8h"`
	StaffUsername     string        `env:"STAFF_USERNAME" envDefault:"staff"`
	StaffPasswordHash string        `env:"STAFF_PASSWORD_HASH"` // bcrypt
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"` // 0 disables limiting
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// SnapshotConfig điều khiển report snapshot worker (cmd/worker).
// Snapshot dùng chung Redis với cache làm asynq broker.
type SnapshotConfig struct {
	Enabled     bool          `env:"SNAPSHOT_ENABLED" envDefault:"false"`
	Cron        string        `env:"SNAPSHOT_CRON" envDefault:"0 3 * * *"` // UTC
	Queue       string        `env:"SNAPSHOT_QUEUE" envDefault:"reports"`
	MaxRetry    int           `env:"SNAPSHOT_MAX_RETRY" envDefault:"3"`
	Timeout     time.Duration `env:"SNAPSHOT_TIMEOUT" envDefault:"2m"`
	Retention   time.Duration `env:"SNAPSHOT_RETENTION" envDefault:"720h"` // 0 keeps every snapshot
	Concurrency int           `env:"WORKER_CONCURRENCY" envDefault:"2"`
	HealthPort  string        `env:"WORKER_HEALTH_PORT" envDefault:"9999"`
}

// StorageConfig là MinIO (S3 compatible) bucket chứa snapshot workbooks.
type StorageConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"library-reports"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// Load đọc .env (optional) rồi parse environment variables
func Load() (*Config, error) {
	// .env chỉ dùng cho local development, thiếu file không phải lỗi
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Validate rejects combinations that would start a misconfigured server.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.MaxConns <= 0 {
		errs = append(errs, errors.New("DB_MAX_CONNECTIONS must be positive"))
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, errors.New("DB_MIN_CONNECTIONS must be between 0 and DB_MAX_CONNECTIONS"))
	}
	if c.Database.TxMaxAttempts < 1 {
		errs = append(errs, errors.New("DB_TX_MAX_ATTEMPTS must be at least 1"))
	}
	if c.Auth.Enabled {
		if c.Auth.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required when AUTH_ENABLED"))
		}
		if c.Auth.StaffPasswordHash == "" {
			errs = append(errs, errors.New("STAFF_PASSWORD_HASH is required when AUTH_ENABLED"))
		}
	}
	if c.IsProduction() && !c.Auth.Enabled {
		errs = append(errs, errors.New("AUTH_ENABLED must be true in production"))
	}
	if c.RateLimit.RPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if c.Snapshot.Enabled {
		errs = append(errs, c.validateSnapshot()...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) validateSnapshot() []error {
	var errs []error
	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when SNAPSHOT_ENABLED"))
	}
	if c.Storage.Endpoint == "" || c.Storage.Bucket == "" {
		errs = append(errs, errors.New("MINIO_ENDPOINT and MINIO_BUCKET are required when SNAPSHOT_ENABLED"))
	}
	if _, err := cron.ParseStandard(c.Snapshot.Cron); err != nil {
		errs = append(errs, fmt.Errorf("SNAPSHOT_CRON: %w", err))
	}
	if c.Snapshot.Queue == "" {
		errs = append(errs, errors.New("SNAPSHOT_QUEUE must not be empty"))
	}
	if c.Snapshot.MaxRetry < 0 || c.Snapshot.Timeout <= 0 || c.Snapshot.Retention < 0 {
		errs = append(errs, errors.New("SNAPSHOT_MAX_RETRY, SNAPSHOT_TIMEOUT and SNAPSHOT_RETENTION must not be negative"))
	}
	if c.Snapshot.Concurrency < 1 {
		errs = append(errs, errors.New("WORKER_CONCURRENCY must be at least 1"))
	}
	return errs
}
