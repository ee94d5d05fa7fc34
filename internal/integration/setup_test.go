package integration

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/config"
	"library-catalog/migrations"
	"library-catalog/pkg/container"
)

const databaseURLEnv = "LIBRARY_TEST_DATABASE_URL"

// setup migrates a clean schema and wires the services over a real pool.
func setup(t *testing.T) *container.Container {
	t.Helper()

	url := os.Getenv(databaseURLEnv)
	if url == "" {
		t.Skipf("%s not set", databaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sql.Open("postgres", url)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrations.Reset(ctx, db))
	require.NoError(t, migrations.Up(ctx, db))

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	cfg := &config.Config{}
	cfg.App.Environment = "test"
	cfg.Database.TxMaxAttempts = 3
	cfg.Redis.ReportTTL = time.Minute
	return container.Assemble(cfg, pool, nil)
}
