package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// BlogHandler обслуживает маршруты блога.
type BlogHandler struct {
	store *storage.BlogStore
}

// NewBlogHandler создаёт новый хэндлер.
func NewBlogHandler(store *storage.BlogStore) *BlogHandler {
	return &BlogHandler{store: store}
}

// ListBlogPosts обрабатывает GET /api/blog-posts.
func (h *BlogHandler) ListBlogPosts(c *gin.Context) {
	posts, err := h.store.List(c.Request.Context())
	if err != nil {
		internalError(c, "не удалось получить записи блога", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlogPost обрабатывает GET /api/blog-posts/:id.
func (h *BlogHandler) GetBlogPost(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	post, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrBlogPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "запись не найдена"})
			return
		}
		internalError(c, "не удалось получить запись блога", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreateBlogPost обрабатывает POST /api/blog-posts.
func (h *BlogHandler) CreateBlogPost(c *gin.Context) {
	var req models.CreateBlogPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	if errs := validation.ValidateCreateBlogPost(req); len(errs) > 0 {
		validationError(c, errs)
		return
	}

	post, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		internalError(c, "не удалось создать запись блога", err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdateBlogPost обрабатывает PATCH /api/blog-posts/:id.
// createdAt неизменяем, updatedAt обновляется при каждой мутации.
func (h *BlogHandler) UpdateBlogPost(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBlogPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	if errs := validation.ValidateUpdateBlogPost(req); len(errs) > 0 {
		validationError(c, errs)
		return
	}

	post, err := h.store.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrBlogPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "запись не найдена"})
			return
		}
		internalError(c, "не удалось обновить запись блога", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteBlogPost обрабатывает DELETE /api/blog-posts/:id. Идемпотентен.
func (h *BlogHandler) DeleteBlogPost(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		internalError(c, "не удалось удалить запись блога", err)
		return
	}
	c.Status(http.StatusNoContent)
}
