package queue

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/config"
	"library-catalog/internal/shared"
)

var _ asynq.Logger = (*Logger)(nil)

func TestNewReportSnapshotTask(t *testing.T) {
	at := time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)
	task, err := NewReportSnapshotTask(shared.ReportSnapshotPayload{
		Trigger:     shared.TriggerManual,
		RequestedBy: "alice",
		RequestedAt: at,
	})
	require.NoError(t, err)
	assert.Equal(t, shared.TypeReportSnapshot, task.Type())

	var got shared.ReportSnapshotPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &got))
	assert.Equal(t, shared.TriggerManual, got.Trigger)
	assert.Equal(t, "alice", got.RequestedBy)
	assert.True(t, at.Equal(got.RequestedAt))
}

func TestSnapshotOptions(t *testing.T) {
	opts := snapshotOptions(config.SnapshotConfig{Queue: "reports", MaxRetry: 3, Timeout: 2 * time.Minute})

	byType := map[asynq.OptionType]interface{}{}
	for _, o := range opts {
		byType[o.Type()] = o.Value()
	}
	assert.Equal(t, "reports", byType[asynq.QueueOpt])
	assert.Equal(t, 3, byType[asynq.MaxRetryOpt])
	assert.Equal(t, 2*time.Minute, byType[asynq.TimeoutOpt])
}

func TestRedisOpt(t *testing.T) {
	opt := RedisOpt(config.RedisConfig{Addr: "redis:6379", Password: "pw", DB: 2})
	assert.Equal(t, "redis:6379", opt.Addr)
	assert.Equal(t, "pw", opt.Password)
	assert.Equal(t, 2, opt.DB)
}

func TestLogger_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(zerolog.New(&buf))

	l.Warn("lease expired for task ", "abc")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "asynq", line["component"])
	assert.Equal(t, "lease expired for task abc", line["message"])
}
