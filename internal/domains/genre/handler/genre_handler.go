package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/genre/model"
	"library-catalog/internal/domains/genre/service"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type GenreHandler struct {
	service service.ServiceInterface
}

func NewGenreHandler(svc service.ServiceInterface) *GenreHandler {
	return &GenreHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/genres
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) Create(c *gin.Context) {
	var req model.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.CreateGenre(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/genres, GET /v1/genres/:id
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.ListGenres(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, genres, &response.Meta{Total: len(genres)})
}

func (h *GenreHandler) GetByID(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidGenreID)
		return
	}

	a, err := h.service.GetGenre(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/genres/:id
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidGenreID)
		return
	}

	var req model.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateGenre(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/genres/:id
// ════════════════════════════════════════════════════════════════

func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidGenreID)
		return
	}

	if err := h.service.DeleteGenre(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes mounts read routes publicly and write routes behind writeGuard.
func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup, writeGuard gin.HandlerFunc) {
	genres := rg.Group("/genres")
	genres.GET("", h.List)
	genres.GET("/:id", h.GetByID)
	genres.POST("", writeGuard, h.Create)
	genres.PUT("/:id", writeGuard, h.Update)
	genres.DELETE("/:id", writeGuard, h.Delete)
}
