// cmd/worker/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/pkg/container"
	"library-catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] failed to load")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	if err := run(cfg); err != nil {
		logger.Error("[Worker] stopped with error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if !cfg.Snapshot.Enabled {
		return errors.New("SNAPSHOT_ENABLED is false, nothing to do")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	handlers := newHandlerRegistry(c)

	srv, err := startAsynqServer(cfg, handlers)
	if err != nil {
		return err
	}
	scheduler, err := startScheduler(cfg)
	if err != nil {
		srv.Shutdown()
		return err
	}
	health := startHealthServer(cfg, c)

	log.Info().
		Str("queue", cfg.Snapshot.Queue).
		Str("cron", cfg.Snapshot.Cron).
		Msg("[Worker] started")

	<-ctx.Done()

	log.Info().Msg("[Shutdown] gracefully stopping...")
	shutdownHealthServer(cfg, health)
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("[Shutdown] stopped")
	return nil
}
