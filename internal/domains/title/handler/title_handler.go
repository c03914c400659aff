package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"yamdb-backend/internal/domains/title"
	"yamdb-backend/internal/shared/response"
	"yamdb-backend/pkg/logger"
)

type TitleHandler struct {
	service title.Service
}

func NewTitleHandler(service title.Service) *TitleHandler {
	return &TitleHandler{service: service}
}

// ListTitles handles GET /titles
func (h *TitleHandler) ListTitles(c *gin.Context) {
	var req title.ListTitlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Titles, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
	})
}

// CreateTitle handles POST /titles (admin only)
func (h *TitleHandler) CreateTitle(c *gin.Context) {
	var req title.CreateTitleRequest
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

// GetTitle handles GET /titles/:title_id
func (h *TitleHandler) GetTitle(c *gin.Context) {
	id, ok := h.titleID(c)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateTitle handles PATCH /titles/:title_id (admin only)
func (h *TitleHandler) UpdateTitle(c *gin.Context) {
	id, ok := h.titleID(c)
	if !ok {
		return
	}

	var req title.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// DeleteTitle handles DELETE /titles/:title_id (admin only)
func (h *TitleHandler) DeleteTitle(c *gin.Context) {
	id, ok := h.titleID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TitleHandler) titleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("title_id"))
	if err != nil {
		response.BadRequest(c, "invalid title id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TitleHandler) renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ValidationError(c, vErrs)
	case errors.Is(err, title.ErrTitleNotFound):
		response.NotFound(c, "title not found")
	case errors.Is(err, title.ErrUnknownCategory):
		response.ValidationError(c, gin.H{"category": title.ErrUnknownCategory.Error()})
	case errors.Is(err, title.ErrUnknownGenre):
		response.ValidationError(c, gin.H{"genre": title.ErrUnknownGenre.Error()})
	default:
		logger.Error("title handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
