package main

import (
	"github.com/hibiken/asynq"

	reportJob "library-catalog/internal/domains/report/job"
	"library-catalog/internal/shared"
	"library-catalog/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	reportSnapshot *reportJob.SnapshotHandler
}

func newHandlerRegistry(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		reportSnapshot: reportJob.NewSnapshotHandler(c.SnapshotService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeReportSnapshot, h.reportSnapshot.ProcessTask)
}
