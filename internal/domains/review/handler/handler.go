package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"yamdb-backend/internal/domains/review/model"
	"yamdb-backend/internal/domains/review/service"
	"yamdb-backend/internal/domains/title"
	"yamdb-backend/internal/domains/user"
	"yamdb-backend/internal/shared/middleware"
	"yamdb-backend/internal/shared/response"
	"yamdb-backend/pkg/logger"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// ========================================
// REVIEWS
// ========================================

// CreateReview handles POST /titles/:title_id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	titleID, ok := h.pathID(c, "title_id")
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.CreateReview(c.Request.Context(), titleID, h.actor(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// ListReviews handles GET /titles/:title_id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	titleID, ok := h.pathID(c, "title_id")
	if !ok {
		return
	}

	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.ListReviews(c.Request.Context(), titleID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Reviews, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
	})
}

// GetReview handles GET /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	titleID, reviewID, ok := h.reviewPath(c)
	if !ok {
		return
	}

	dto, err := h.service.GetReview(c.Request.Context(), titleID, reviewID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateReview handles PATCH /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	titleID, reviewID, ok := h.reviewPath(c)
	if !ok {
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.UpdateReview(c.Request.Context(), titleID, reviewID, h.actor(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// DeleteReview handles DELETE /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	titleID, reviewID, ok := h.reviewPath(c)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), titleID, reviewID, h.actor(c)); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ========================================
// COMMENTS
// ========================================

// CreateComment handles POST /titles/:title_id/reviews/:review_id/comments
func (h *ReviewHandler) CreateComment(c *gin.Context) {
	titleID, reviewID, ok := h.reviewPath(c)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.CreateComment(c.Request.Context(), titleID, reviewID, h.actor(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// ListComments handles GET /titles/:title_id/reviews/:review_id/comments
func (h *ReviewHandler) ListComments(c *gin.Context) {
	titleID, reviewID, ok := h.reviewPath(c)
	if !ok {
		return
	}

	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.ListComments(c.Request.Context(), titleID, reviewID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Comments, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
	})
}

// GetComment handles GET /titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *ReviewHandler) GetComment(c *gin.Context) {
	titleID, reviewID, commentID, ok := h.commentPath(c)
	if !ok {
		return
	}

	dto, err := h.service.GetComment(c.Request.Context(), titleID, reviewID, commentID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateComment handles PATCH /titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *ReviewHandler) UpdateComment(c *gin.Context) {
	titleID, reviewID, commentID, ok := h.commentPath(c)
	if !ok {
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.UpdateComment(c.Request.Context(), titleID, reviewID, commentID, h.actor(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// DeleteComment handles DELETE /titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *ReviewHandler) DeleteComment(c *gin.Context) {
	titleID, reviewID, commentID, ok := h.commentPath(c)
	if !ok {
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), titleID, reviewID, commentID, h.actor(c)); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ========================================
// HELPERS
// ========================================

func (h *ReviewHandler) actor(c *gin.Context) service.Actor {
	return service.Actor{
		ID:       c.MustGet(middleware.CtxUserID).(uuid.UUID),
		Username: c.GetString(middleware.CtxUsername),
		Role:     user.Role(c.GetString(middleware.CtxRole)),
	}
}

func (h *ReviewHandler) pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReviewHandler) reviewPath(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	titleID, ok := h.pathID(c, "title_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	reviewID, ok := h.pathID(c, "review_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return titleID, reviewID, true
}

func (h *ReviewHandler) commentPath(c *gin.Context) (uuid.UUID, uuid.UUID, uuid.UUID, bool) {
	titleID, reviewID, ok := h.reviewPath(c)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	commentID, ok := h.pathID(c, "comment_id")
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	return titleID, reviewID, commentID, true
}

func (h *ReviewHandler) renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ValidationError(c, vErrs)
	case errors.Is(err, title.ErrTitleNotFound):
		response.NotFound(c, "title not found")
	case errors.Is(err, model.ErrReviewNotFound):
		response.NotFound(c, "review not found")
	case errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, "comment not found")
	case errors.Is(err, model.ErrAlreadyReviewed):
		response.Conflict(c, model.ErrAlreadyReviewed.Error())
	case errors.Is(err, model.ErrNotOwner):
		response.Forbidden(c, model.ErrNotOwner.Error())
	default:
		logger.Error("review handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
