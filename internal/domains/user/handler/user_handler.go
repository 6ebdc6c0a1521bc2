package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// UserHandler exposes the auth endpoints. Stateless; just holds the
// service dependency.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /auth/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userDTO, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    userDTO,
	})
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unauthorized(c, user.ErrInvalidCredentials.Error())
		return
	}

	loginResp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, loginResp)
}

// handleError maps domain errors to HTTP statuses. Anything outside
// the closed set is a store failure and reported generically.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var ve validation.Errors
	if errors.As(err, &ve) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation error", ve)
		return
	}

	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.BadRequest(c, user.ErrEmailAlreadyExists.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, user.ErrInvalidCredentials.Error())
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "Server error")
	}
}
