package main

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/queue"
)

func newAsynqServer(cfg *config.Config) *asynq.Server {
	return asynq.NewServer(
		queue.RedisOpt(cfg.Redis),
		asynq.Config{
			Queues:      map[string]int{cfg.Snapshot.Queue: 1},
			Concurrency: cfg.Snapshot.Concurrency,
			Logger:      queue.NewLogger(log.Logger),
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.Error().
					Err(err).
					Str("type", task.Type()).
					Int("retried", retried).
					Int("max_retry", maxRetry).
					Msg("[Asynq] task failed")
			}),
		},
	)
}

// startAsynqServer begins processing in background goroutines.
func startAsynqServer(cfg *config.Config, handlers *HandlerRegistry) (*asynq.Server, error) {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := newAsynqServer(cfg)
	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start asynq server: %w", err)
	}
	return srv, nil
}
