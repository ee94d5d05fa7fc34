package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/publisher/model"
	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/jwt"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreatePublisher(ctx context.Context, req model.PublisherRequest) (*model.Publisher, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*model.Publisher), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) GetPublisher(ctx context.Context, id int64) (*model.Publisher, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Publisher), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Publisher), args.Error(1)
}

func (m *mockService) UpdatePublisher(ctx context.Context, id int64, req model.PublisherRequest) (*model.Publisher, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*model.Publisher), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) DeletePublisher(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter(svc *mockService, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewPublisherHandler(svc).RegisterRoutes(r.Group("/api/v1"), guard)
	return r
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePublisher(t *testing.T) {
	svc := &mockService{}
	svc.On("CreatePublisher", mock.Anything, model.PublisherRequest{Name: "Penguin"}).
		Return(&model.Publisher{ID: 4, Name: "Penguin"}, nil)

	w := do(newRouter(svc, middleware.NoAuth()), http.MethodPost, "/api/v1/publishers", `{"name":"Penguin"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Penguin"`)
}

func TestDeletePublisher_HasBooks(t *testing.T) {
	svc := &mockService{}
	svc.On("DeletePublisher", mock.Anything, int64(4)).
		Return(model.ErrPublisherHasBooks.WithDetails(map[string]interface{}{"dependent_books": 2}))

	w := do(newRouter(svc, middleware.NoAuth()), http.MethodDelete, "/api/v1/publishers/4", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"dependent_books":2`)
}

func TestGetPublisher_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetPublisher", mock.Anything, int64(8)).Return(nil, model.ErrPublisherNotFound)

	w := do(newRouter(svc, middleware.NoAuth()), http.MethodGet, "/api/v1/publishers/8", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPublishers(t *testing.T) {
	svc := &mockService{}
	svc.On("ListPublishers", mock.Anything).Return([]model.Publisher{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	w := do(newRouter(svc, middleware.NoAuth()), http.MethodGet, "/api/v1/publishers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestWriteRoutesRequireStaffToken(t *testing.T) {
	svc := &mockService{}
	svc.On("ListPublishers", mock.Anything).Return([]model.Publisher{}, nil)
	svc.On("UpdatePublisher", mock.Anything, int64(1), mock.Anything).
		Return(&model.Publisher{ID: 1, Name: "New"}, nil)

	tokens := jwt.NewManager("secret", time.Hour)
	r := newRouter(svc, middleware.StaffAuth(tokens))

	// reads stay public
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/publishers", "").Code)

	w := do(r, http.MethodPut, "/api/v1/publishers/1", `{"name":"New"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "UpdatePublisher", mock.Anything, mock.Anything, mock.Anything)

	token, _, err := tokens.GenerateAccessToken("staff", jwt.RoleStaff)
	require.NoError(t, err)

	w = do(r, http.MethodPut, "/api/v1/publishers/1", `{"name":"New"}`, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
