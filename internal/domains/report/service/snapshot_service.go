package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/report/model"
	"library-catalog/internal/infrastructure/storage"
	"library-catalog/internal/shared"
	"library-catalog/internal/shared/apperror"
)

// ObjectStore is the subset of storage.MinIOStorage snapshots need.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	RemoveObjects(ctx context.Context, keys []string) error
}

// Enqueuer hands snapshot requests to the background worker.
type Enqueuer interface {
	EnqueueReportSnapshot(ctx context.Context, p shared.ReportSnapshotPayload) (string, error)
}

type SnapshotServiceInterface interface {
	// RequestSnapshot queues a snapshot for the worker.
	RequestSnapshot(ctx context.Context, requestedBy string) (*model.SnapshotTicket, error)
	// TakeSnapshot exports both reports and stores the workbook.
	TakeSnapshot(ctx context.Context, p shared.ReportSnapshotPayload) (*model.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]model.Snapshot, error)
}

type snapshotService struct {
	reports   ServiceInterface
	store     ObjectStore
	queue     Enqueuer
	retention time.Duration
	now       func() time.Time
}

// NewSnapshotService stores workbooks in store and prunes those older than
// retention after each upload. queue may be nil in processes that only
// take snapshots.
func NewSnapshotService(reports ServiceInterface, store ObjectStore, queue Enqueuer, retention time.Duration) SnapshotServiceInterface {
	return &snapshotService{
		reports:   reports,
		store:     store,
		queue:     queue,
		retention: retention,
		now:       time.Now,
	}
}

func (s *snapshotService) RequestSnapshot(ctx context.Context, requestedBy string) (*model.SnapshotTicket, error) {
	if s.queue == nil {
		return nil, apperror.Internal(errors.New("snapshot queue is not configured"))
	}

	id, err := s.queue.EnqueueReportSnapshot(ctx, shared.ReportSnapshotPayload{
		Trigger:     shared.TriggerManual,
		RequestedBy: requestedBy,
		RequestedAt: s.now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue report snapshot")
		return nil, apperror.Internal(err)
	}

	log.Info().Str("task_id", id).Str("requested_by", requestedBy).Msg("report snapshot queued")
	return &model.SnapshotTicket{TaskID: id, Status: "queued"}, nil
}

func (s *snapshotService) TakeSnapshot(ctx context.Context, p shared.ReportSnapshotPayload) (*model.Snapshot, error) {
	f, err := s.reports.ExportWorkbook(ctx)
	if err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if closeErr := f.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("failed to close workbook")
	}
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	createdAt := s.now().UTC()
	key := model.SnapshotKey(createdAt)
	url, err := s.store.Upload(ctx, key, buf.Bytes(), model.XLSXContentType)
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	log.Info().
		Str("key", key).
		Str("trigger", string(p.Trigger)).
		Str("requested_by", p.RequestedBy).
		Int("bytes", buf.Len()).
		Msg("report snapshot stored")

	s.prune(ctx, createdAt)

	return &model.Snapshot{
		Key:       key,
		URL:       url,
		Size:      int64(buf.Len()),
		CreatedAt: createdAt,
	}, nil
}

// prune is best effort: a failed prune is retried by the next snapshot.
func (s *snapshotService) prune(ctx context.Context, now time.Time) {
	if s.retention <= 0 {
		return
	}

	objects, err := s.store.List(ctx, model.SnapshotPrefix)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list snapshots for pruning")
		return
	}

	cutoff := now.Add(-s.retention)
	var expired []string
	for _, o := range objects {
		if o.LastModified.Before(cutoff) {
			expired = append(expired, o.Key)
		}
	}
	if len(expired) == 0 {
		return
	}

	if err := s.store.RemoveObjects(ctx, expired); err != nil {
		log.Warn().Err(err).Int("count", len(expired)).Msg("failed to prune snapshots")
		return
	}
	log.Info().Int("count", len(expired)).Msg("expired snapshots pruned")
}

func (s *snapshotService) ListSnapshots(ctx context.Context) ([]model.Snapshot, error) {
	objects, err := s.store.List(ctx, model.SnapshotPrefix)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	snapshots := make([]model.Snapshot, 0, len(objects))
	for _, o := range objects {
		snapshots = append(snapshots, model.Snapshot{
			Key:       o.Key,
			Size:      o.Size,
			CreatedAt: o.LastModified,
		})
	}
	return snapshots, nil
}
