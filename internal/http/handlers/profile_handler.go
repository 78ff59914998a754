package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// ProfileHandler обслуживает маршруты профиля.
type ProfileHandler struct {
	store storage.Storage
}

// NewProfileHandler создаёт новый хэндлер.
func NewProfileHandler(store storage.Storage) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// GetProfile обрабатывает GET /api/profile.
// Пока профиль не сохраняли, отдаётся заглушка с id = 1.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context())
	if err != nil {
		internalError(c, "не удалось получить профиль", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile обрабатывает PATCH /api/profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	if errs := validation.ValidateUpdateProfile(req); len(errs) > 0 {
		validationError(c, errs)
		return
	}

	profile, err := h.store.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		internalError(c, "не удалось обновить профиль", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
