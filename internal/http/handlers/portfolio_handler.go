package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// PortfolioHandler обслуживает маршруты портфолио.
type PortfolioHandler struct {
	store *storage.PortfolioStore
}

// NewPortfolioHandler создаёт новый хэндлер.
func NewPortfolioHandler(store *storage.PortfolioStore) *PortfolioHandler {
	return &PortfolioHandler{store: store}
}

// ListPortfolioItems обрабатывает GET /api/portfolio-items.
func (h *PortfolioHandler) ListPortfolioItems(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		internalError(c, "не удалось получить портфолио", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ReplacePortfolioItems обрабатывает POST /api/portfolio-items.
// Клиент присылает полный массив желаемого состояния, коллекция
// заменяется целиком.
func (h *PortfolioHandler) ReplacePortfolioItems(c *gin.Context) {
	var items []models.PortfolioItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	if err := h.store.Replace(c.Request.Context(), items); err != nil {
		internalError(c, "не удалось сохранить портфолио", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "портфолио сохранено"})
}
