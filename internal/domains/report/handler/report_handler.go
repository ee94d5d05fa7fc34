package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/report/model"
	"library-catalog/internal/domains/report/service"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
)

type ReportHandler struct {
	service   service.ServiceInterface
	snapshots service.SnapshotServiceInterface // nil when snapshots are disabled
}

func NewReportHandler(svc service.ServiceInterface, snapshots service.SnapshotServiceInterface) *ReportHandler {
	return &ReportHandler{service: svc, snapshots: snapshots}
}

// GET /v1/reports/books-by-genre
func (h *ReportHandler) BooksByGenre(c *gin.Context) {
	rows, err := h.service.BooksByGenre(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, rows, &response.Meta{Total: len(rows)})
}

// GET /v1/reports/books-by-author
func (h *ReportHandler) BooksByAuthor(c *gin.Context) {
	rows, err := h.service.BooksByAuthor(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, rows, &response.Meta{Total: len(rows)})
}

// GET /v1/reports/export
func (h *ReportHandler) Export(c *gin.Context) {
	f, err := h.service.ExportWorkbook(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	filename := fmt.Sprintf("library-report-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", model.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		// Headers are already sent
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("failed to stream workbook")
	}
}

// GET /v1/reports/snapshots
func (h *ReportHandler) ListSnapshots(c *gin.Context) {
	snapshots, err := h.snapshots.ListSnapshots(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, snapshots, &response.Meta{Total: len(snapshots)})
}

// POST /v1/reports/snapshots
func (h *ReportHandler) RequestSnapshot(c *gin.Context) {
	ticket, err := h.snapshots.RequestSnapshot(c.Request.Context(), c.GetString(middleware.StaffUsernameKey))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, ticket)
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup, writeGuard gin.HandlerFunc) {
	reports := rg.Group("/reports")
	reports.GET("/books-by-genre", h.BooksByGenre)
	reports.GET("/books-by-author", h.BooksByAuthor)
	reports.GET("/export", h.Export)

	if h.snapshots != nil {
		reports.GET("/snapshots", h.ListSnapshots)
		reports.POST("/snapshots", writeGuard, h.RequestSnapshot)
	}
}
