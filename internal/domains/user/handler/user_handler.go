package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"yamdb-backend/internal/domains/user"
	"yamdb-backend/internal/shared/middleware"
	"yamdb-backend/internal/shared/response"
	"yamdb-backend/pkg/logger"
)

// UserHandler is the thin HTTP layer over user.Service
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// AUTH ENDPOINTS
// ========================================

// Signup handles POST /auth/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ObtainToken handles POST /auth/token
func (h *UserHandler) ObtainToken(c *gin.Context) {
	var req user.ObtainTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.ObtainToken(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========================================
// SELF-SERVICE PROFILE
// ========================================

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	dto, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateMe handles PATCH /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	var req user.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.UpdateMe(c.Request.Context(), userID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// ========================================
// ADMIN DIRECTORY
// ========================================

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req user.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Users, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
	})
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
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

// GetUser handles GET /users/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	dto, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateUser handles PATCH /users/:username
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// DeleteUser handles DELETE /users/:username
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("username")); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ========================================
// ERROR MAPPING
// ========================================

func (h *UserHandler) renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ValidationError(c, vErrs)
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, user.ErrUsernameTaken):
		response.ValidationError(c, gin.H{"username": user.ErrUsernameTaken.Error()})
	case errors.Is(err, user.ErrEmailTaken):
		response.ValidationError(c, gin.H{"email": user.ErrEmailTaken.Error()})
	case errors.Is(err, user.ErrInvalidConfirmationCode):
		response.BadRequest(c, user.ErrInvalidConfirmationCode.Error())
	case errors.Is(err, user.ErrInvalidRole):
		response.BadRequest(c, user.ErrInvalidRole.Error())
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
