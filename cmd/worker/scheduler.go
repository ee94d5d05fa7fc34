package main

import (
	"fmt"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/queue"
)

// startScheduler registers the periodic snapshot and starts the scheduler.
func startScheduler(cfg *config.Config) (*queue.Scheduler, error) {
	scheduler := queue.NewScheduler(queue.RedisOpt(cfg.Redis), cfg.Snapshot)

	if err := scheduler.RegisterReportSnapshot(); err != nil {
		return nil, err
	}
	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("start scheduler: %w", err)
	}
	return scheduler, nil
}
