package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/shared"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	cfg       config.SnapshotConfig
}

func NewScheduler(opt asynq.RedisConnOpt, cfg config.SnapshotConfig) *Scheduler {
	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   NewLogger(log.Logger),
		LogLevel: asynq.InfoLevel,
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				log.Error().Err(err).Msg("[SCHEDULER] failed to enqueue scheduled task")
				return
			}
			log.Info().Str("task_id", info.ID).Str("type", info.Type).Msg("[SCHEDULER] task enqueued")
		},
	})

	return &Scheduler{scheduler: scheduler, cfg: cfg}
}

// RegisterReportSnapshot enqueues a snapshot on the SNAPSHOT_CRON schedule (UTC).
func (s *Scheduler) RegisterReportSnapshot() error {
	task, err := NewReportSnapshotTask(shared.ReportSnapshotPayload{Trigger: shared.TriggerSchedule})
	if err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(s.cfg.Cron, task, snapshotOptions(s.cfg)...)
	if err != nil {
		return fmt.Errorf("register %s: %w", shared.TypeReportSnapshot, err)
	}

	log.Info().
		Str("entry_id", entryID).
		Str("cron", s.cfg.Cron).
		Msg("[SCHEDULER] registered report snapshot")
	return nil
}

// Start runs the scheduler in the background.
func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
