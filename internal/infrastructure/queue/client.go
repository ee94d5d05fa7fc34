package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"library-catalog/internal/config"
	"library-catalog/internal/shared"
)

// RedisOpt builds the asynq connection from the shared Redis settings.
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewReportSnapshotTask encodes the payload of a TypeReportSnapshot task.
func NewReportSnapshotTask(p shared.ReportSnapshotPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot payload: %w", err)
	}
	return asynq.NewTask(shared.TypeReportSnapshot, payload), nil
}

func snapshotOptions(cfg config.SnapshotConfig) []asynq.Option {
	return []asynq.Option{
		asynq.Queue(cfg.Queue),
		asynq.MaxRetry(cfg.MaxRetry),
		asynq.Timeout(cfg.Timeout),
		asynq.Retention(24 * time.Hour),
	}
}

// Client enqueues background tasks
type Client struct {
	client *asynq.Client
	cfg    config.SnapshotConfig
}

func NewClient(opt asynq.RedisConnOpt, cfg config.SnapshotConfig) *Client {
	return &Client{client: asynq.NewClient(opt), cfg: cfg}
}

// EnqueueReportSnapshot queues a snapshot and returns the asynq task id.
func (c *Client) EnqueueReportSnapshot(ctx context.Context, p shared.ReportSnapshotPayload) (string, error) {
	task, err := NewReportSnapshotTask(p)
	if err != nil {
		return "", err
	}

	info, err := c.client.EnqueueContext(ctx, task, snapshotOptions(c.cfg)...)
	if err != nil {
		return "", fmt.Errorf("enqueue %s: %w", shared.TypeReportSnapshot, err)
	}
	return info.ID, nil
}

func (c *Client) Ping() error {
	return c.client.Ping()
}

func (c *Client) Close() error {
	return c.client.Close()
}
