package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"yamdb-backend/internal/domains/category"
	"yamdb-backend/internal/shared/response"
	"yamdb-backend/pkg/logger"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var req category.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Categories, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
	})
}

// CreateCategory handles POST /categories (admin only)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// DeleteCategory handles DELETE /categories/:slug (admin only)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ValidationError(c, vErrs)
	case errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, "category not found")
	case errors.Is(err, category.ErrSlugTaken):
		response.ErrorWithDetails(c, http.StatusConflict, "CONFLICT",
			category.ErrSlugTaken.Error(), gin.H{"slug": category.ErrSlugTaken.Error()})
	default:
		logger.Error("category handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
