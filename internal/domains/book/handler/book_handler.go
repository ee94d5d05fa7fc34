package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/service"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// BookIDResponse is returned by create and update.
type BookIDResponse struct {
	ID int64 `json:"id"`
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/books, /v1/books/search, /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	var req model.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "page and limit must be integers")
		return
	}

	books, total, err := h.service.ListBooks(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	req.ApplyDefaults()
	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

func (h *BookHandler) Search(c *gin.Context) {
	var req model.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid search query")
		return
	}

	books, err := h.service.SearchBooks(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidBookID)
		return
	}

	detail, err := h.service.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// ════════════════════════════════════════════════════════════════
// WRITE: POST /v1/books, PUT /v1/books/:id, DELETE /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Location", "/api/v1/books/"+strconv.FormatInt(id, 10))
	response.Success(c, http.StatusCreated, BookIDResponse{ID: id})
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidBookID)
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateBook(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, BookIDResponse{ID: id})
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidBookID)
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes mounts read routes publicly and write routes behind writeGuard.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup, writeGuard gin.HandlerFunc) {
	books := rg.Group("/books")
	books.GET("", h.List)
	books.GET("/search", h.Search)
	books.GET("/:id", h.GetByID)
	books.POST("", writeGuard, h.Create)
	books.PUT("/:id", writeGuard, h.Update)
	books.DELETE("/:id", writeGuard, h.Delete)
}
