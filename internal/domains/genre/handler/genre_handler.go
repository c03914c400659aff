package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"yamdb-backend/internal/domains/genre"
	"yamdb-backend/internal/shared/response"
	"yamdb-backend/pkg/logger"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(service genre.Service) *GenreHandler {
	return &GenreHandler{service: service}
}

// ListGenres handles GET /genres
func (h *GenreHandler) ListGenres(c *gin.Context) {
	var req genre.ListGenresRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Genres, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
	})
}

// CreateGenre handles POST /genres (admin only)
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req genre.CreateGenreRequest
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

// DeleteGenre handles DELETE /genres/:slug (admin only)
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GenreHandler) renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ValidationError(c, vErrs)
	case errors.Is(err, genre.ErrGenreNotFound):
		response.NotFound(c, "genre not found")
	case errors.Is(err, genre.ErrSlugTaken):
		response.ErrorWithDetails(c, http.StatusConflict, "CONFLICT",
			genre.ErrSlugTaken.Error(), gin.H{"slug": genre.ErrSlugTaken.Error()})
	default:
		logger.Error("genre handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
