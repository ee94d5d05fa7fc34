package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/report/service"
	"library-catalog/internal/shared"
)

// SnapshotHandler processes shared.TypeReportSnapshot tasks
type SnapshotHandler struct {
	snapshots service.SnapshotServiceInterface
}

func NewSnapshotHandler(snapshots service.SnapshotServiceInterface) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// ProcessTask exports the reports and uploads the workbook. A malformed
// payload is archived without retry.
func (h *SnapshotHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ReportSnapshotPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ReportSnapshot payload")
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	snapshot, err := h.snapshots.TakeSnapshot(ctx, payload)
	if err != nil {
		log.Error().
			Err(err).
			Str("trigger", string(payload.Trigger)).
			Msg("Failed to take report snapshot")
		return fmt.Errorf("take snapshot: %w", err)
	}

	log.Info().
		Str("key", snapshot.Key).
		Str("trigger", string(payload.Trigger)).
		Msg("Report snapshot completed")
	return nil
}
