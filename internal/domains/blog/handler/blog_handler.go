package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// BlogHandler exposes the blog CRUD endpoints. Every route behind it
// requires the auth middleware; the actor comes from the context.
type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /blogs?category&author
func (h *BlogHandler) List(c *gin.Context) {
	var filters blog.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	blogs, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blogs": blogs})
}

// Create handles POST /blogs
func (h *BlogHandler) Create(c *gin.Context) {
	actorID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req blog.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	blogDTO, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Blog created successfully",
		"blog":    blogDTO,
	})
}

// Update handles PUT /blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	actorID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id can never name an existing record.
		response.NotFound(c, blog.ErrBlogNotFound.Error())
		return
	}

	var req blog.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	blogDTO, err := h.service.Update(c.Request.Context(), actorID, blogID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Blog updated successfully",
		"blog":    blogDTO,
	})
}

// Delete handles DELETE /blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, blog.ErrBlogNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, blogID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

// handleError maps domain errors to HTTP statuses. Anything outside
// the closed set is a store failure and reported generically.
func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var ve validation.Errors
	if errors.As(err, &ve) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation error", ve)
		return
	}

	switch {
	case errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, blog.ErrBlogNotFound.Error())
	case errors.Is(err, blog.ErrNotOwner):
		response.Forbidden(c, blog.ErrNotOwner.Error())
	case errors.Is(err, blog.ErrAuthorNotFound):
		response.NotFound(c, blog.ErrAuthorNotFound.Error())
	default:
		logger.Error("blog handler error", err)
		response.InternalServerError(c, "Server error")
	}
}
