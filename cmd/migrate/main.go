package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/migrations"
	"library-catalog/pkg/logger"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, reset, status, seed")
		seed    = flag.Bool("seed", false, "Insert sample data after 'up' (default true in development)")
		timeout = flag.Duration("timeout", 2*time.Minute, "Overall timeout")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		*seed = cfg.IsDevelopment()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg.Database.DBConfig().DSN(), *command, *seed); err != nil {
		log.Error().Err(err).Str("command", *command).Msg("migration failed")
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, seed bool) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	switch command {
	case "up":
		if err := migrations.Up(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("migrations applied successfully")
		if seed {
			return runSeed(ctx, db)
		}
		return nil
	case "down":
		if err := migrations.Down(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("last migration rolled back")
		return nil
	case "reset":
		if err := migrations.Reset(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("all migrations rolled back")
		return nil
	case "status":
		return migrations.Status(ctx, db)
	case "seed":
		return runSeed(ctx, db)
	default:
		return fmt.Errorf("unknown command %q, use: up, down, reset, status, seed", command)
	}
}

func runSeed(ctx context.Context, db *sql.DB) error {
	if err := migrations.Seed(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("sample data inserted")
	return nil
}
