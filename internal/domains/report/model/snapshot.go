package model

import (
	"fmt"
	"time"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// SnapshotPrefix is the object key prefix of every stored snapshot.
	SnapshotPrefix = "snapshots/"
)

// Snapshot is a report workbook stored in object storage.
type Snapshot struct {
	Key       string    `json:"key"`
	URL       string    `json:"url,omitempty"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// SnapshotTicket acknowledges a queued snapshot request.
type SnapshotTicket struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// SnapshotKey partitions snapshots by UTC day, e.g.
// snapshots/2026/10/18/library-report-20261018T030000Z.xlsx
func SnapshotKey(at time.Time) string {
	at = at.UTC()
	return fmt.Sprintf("%s%s/library-report-%s.xlsx",
		SnapshotPrefix, at.Format("2006/01/02"), at.Format("20060102T150405Z"))
}
