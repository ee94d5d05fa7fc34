package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/publisher/model"
	"library-catalog/internal/domains/publisher/service"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type PublisherHandler struct {
	service service.ServiceInterface
}

func NewPublisherHandler(svc service.ServiceInterface) *PublisherHandler {
	return &PublisherHandler{service: svc}
}

func (h *PublisherHandler) RegisterRoutes(rg *gin.RouterGroup, writeGuard gin.HandlerFunc) {
	publishers := rg.Group("/publishers")
	publishers.GET("", h.ListPublishers)
	publishers.GET("/:id", h.GetPublisher)
	publishers.POST("", writeGuard, h.CreatePublisher)
	publishers.PUT("/:id", writeGuard, h.UpdatePublisher)
	publishers.DELETE("/:id", writeGuard, h.DeletePublisher)
}

func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.CreatePublisher(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *PublisherHandler) ListPublishers(c *gin.Context) {
	publishers, err := h.service.ListPublishers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, publishers, &response.Meta{Total: len(publishers)})
}

func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidPublisherID)
		return
	}

	p, err := h.service.GetPublisher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *PublisherHandler) UpdatePublisher(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidPublisherID)
		return
	}

	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.UpdatePublisher(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *PublisherHandler) DeletePublisher(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, model.ErrInvalidPublisherID)
		return
	}

	if err := h.service.DeletePublisher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
