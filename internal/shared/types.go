package shared

import "time"

// Asynq task types
const (
	TypeReportSnapshot = "report:snapshot"
)

// SnapshotTrigger records why a snapshot was taken.
type SnapshotTrigger string

const (
	TriggerSchedule SnapshotTrigger = "schedule"
	TriggerManual   SnapshotTrigger = "manual"
)

// ReportSnapshotPayload là payload của TypeReportSnapshot.
// Scheduled tasks are registered once, so RequestedAt is zero for them and
// the worker stamps the snapshot with its own clock.
type ReportSnapshotPayload struct {
	Trigger     SnapshotTrigger `json:"trigger"`
	RequestedBy string          `json:"requested_by,omitempty"`
	RequestedAt time.Time       `json:"requested_at,omitempty"`
}
