package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"library-catalog/internal/domains/report/model"
	"library-catalog/internal/shared"
	"library-catalog/internal/shared/apperror"
	"library-catalog/internal/shared/middleware"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) BooksByGenre(ctx context.Context) ([]model.BookCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.BookCount), args.Error(1)
}

func (m *mockService) BooksByAuthor(ctx context.Context) ([]model.BookCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.BookCount), args.Error(1)
}

func (m *mockService) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*excelize.File), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewReportHandler(svc, nil).RegisterRoutes(r.Group("/api/v1"), middleware.NoAuth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestBooksByGenre(t *testing.T) {
	svc := &mockService{}
	svc.On("BooksByGenre", mock.Anything).
		Return([]model.BookCount{{ID: 1, Name: "Fiction", BookCount: 2}}, nil)

	w := serve(svc, "/api/v1/reports/books-by-genre")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"book_count":2`)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestBooksByAuthor_Error(t *testing.T) {
	svc := &mockService{}
	svc.On("BooksByAuthor", mock.Anything).
		Return([]model.BookCount(nil), apperror.Internal(assert.AnError))

	w := serve(svc, "/api/v1/reports/books-by-author")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExport(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "ok"))

	svc := &mockService{}
	svc.On("ExportWorkbook", mock.Anything).Return(f, nil)

	w := serve(svc, "/api/v1/reports/export")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "library-report-")

	reopened, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer reopened.Close()
	v, err := reopened.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

type mockSnapshots struct {
	mock.Mock
}

func (m *mockSnapshots) RequestSnapshot(ctx context.Context, requestedBy string) (*model.SnapshotTicket, error) {
	args := m.Called(ctx, requestedBy)
	if v := args.Get(0); v != nil {
		return v.(*model.SnapshotTicket), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSnapshots) TakeSnapshot(ctx context.Context, p shared.ReportSnapshotPayload) (*model.Snapshot, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(*model.Snapshot), args.Error(1)
}

func (m *mockSnapshots) ListSnapshots(ctx context.Context) ([]model.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Snapshot), args.Error(1)
}

func serveSnapshots(snapshots *mockSnapshots, method, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	staff := func(c *gin.Context) { c.Set(middleware.StaffUsernameKey, "alice") }
	NewReportHandler(&mockService{}, snapshots).RegisterRoutes(r.Group("/api/v1"), staff)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestSnapshotRoutes_DisabledWithoutService(t *testing.T) {
	w := serve(&mockService{}, "/api/v1/reports/snapshots")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestSnapshot_Accepted(t *testing.T) {
	snapshots := &mockSnapshots{}
	snapshots.On("RequestSnapshot", mock.Anything, "alice").
		Return(&model.SnapshotTicket{TaskID: "t-1", Status: "queued"}, nil)

	w := serveSnapshots(snapshots, http.MethodPost, "/api/v1/reports/snapshots")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"task_id":"t-1"`)
	snapshots.AssertExpectations(t)
}

func TestRequestSnapshot_QueueDown(t *testing.T) {
	snapshots := &mockSnapshots{}
	snapshots.On("RequestSnapshot", mock.Anything, "alice").Return(nil, apperror.Internal(assert.AnError))

	w := serveSnapshots(snapshots, http.MethodPost, "/api/v1/reports/snapshots")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestListSnapshots(t *testing.T) {
	snapshots := &mockSnapshots{}
	snapshots.On("ListSnapshots", mock.Anything).
		Return([]model.Snapshot{{Key: "snapshots/2026/10/18/a.xlsx", Size: 42}}, nil)

	w := serveSnapshots(snapshots, http.MethodGet, "/api/v1/reports/snapshots")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"snapshots/2026/10/18/a.xlsx"`)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
