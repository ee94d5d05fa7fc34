package config

import (
	"time"

	"library-catalog/internal/infrastructure/database"
)

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"library"`
	Password string `env:"DB_PASSWORD" envDefault:"secret"`
	Name     string `env:"DB_NAME" envDefault:"library_dev"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxConns          int           `env:"DB_MAX_CONNECTIONS" envDefault:"25"`
	MinConns          int           `env:"DB_MIN_CONNECTIONS" envDefault:"2"`
	MaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"5m"`
	MaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"1m"`
	HealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	MaxRetries     int           `env:"DB_MAX_RETRIES" envDefault:"5"`
	RetryDelay     time.Duration `env:"DB_RETRY_DELAY" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`

	// Attempts per write transaction; 1 means a serialization failure is
	// reported to the caller without a retry.
	TxMaxAttempts int `env:"DB_TX_MAX_ATTEMPTS" envDefault:"1"`
}

// DBConfig converts the env-level settings into the pool configuration.
func (c DatabaseConfig) DBConfig() *database.DBConfig {
	return &database.DBConfig{
		Host:              c.Host,
		Port:              c.Port,
		Username:          c.User,
		Password:          c.Password,
		DBName:            c.Name,
		SSLMode:           c.SSLMode,
		MaxConns:          int32(c.MaxConns),
		MinConns:          int32(c.MinConns),
		MaxConnLifetime:   c.MaxConnLifetime,
		MaxConnIdleTime:   c.MaxConnIdleTime,
		HealthCheckPeriod: c.HealthCheckPeriod,
		MaxRetries:        c.MaxRetries,
		RetryDelay:        c.RetryDelay,
		ConnectTimeout:    c.ConnectTimeout,
	}
}
