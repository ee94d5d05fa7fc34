package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

func withGoose(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return fn()
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	return withGoose(func() error { return goose.UpContext(ctx, db, ".") })
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	return withGoose(func() error { return goose.DownContext(ctx, db, ".") })
}

// Reset rolls back every applied migration.
func Reset(ctx context.Context, db *sql.DB) error {
	return withGoose(func() error { return goose.ResetContext(ctx, db, ".") })
}

func Status(ctx context.Context, db *sql.DB) error {
	return withGoose(func() error { return goose.StatusContext(ctx, db, ".") })
}

// Seed inserts the sample authors, genres and publishers. Rows that already
// exist by name are skipped.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, SampleData); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}
	return nil
}
