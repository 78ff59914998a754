package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/analysis"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// MaxEncodedImageChars — лимит длины base64-представления изображения.
// Проверяется длина закодированного текста, не декодированных байт.
const MaxEncodedImageChars = 7 * 1024 * 1024

// PhotoHandler обслуживает маршруты галереи.
type PhotoHandler struct {
	store    storage.Storage
	analyzer analysis.Analyzer
}

// NewPhotoHandler создаёт новый хэндлер.
func NewPhotoHandler(store storage.Storage, analyzer analysis.Analyzer) *PhotoHandler {
	return &PhotoHandler{store: store, analyzer: analyzer}
}

// ListPhotos обрабатывает GET /api/photos.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	photos, err := h.store.GetAllPhotos(c.Request.Context())
	if err != nil {
		internalError(c, "не удалось получить фотографии", err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// GetPhoto обрабатывает GET /api/photos/:id.
func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	photo, err := h.store.GetPhotoByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "фотография не найдена"})
			return
		}
		internalError(c, "не удалось получить фотографию", err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

// ListPhotosByCategory обрабатывает GET /api/photos/category/:category.
func (h *PhotoHandler) ListPhotosByCategory(c *gin.Context) {
	photos, err := h.store.GetPhotosByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		internalError(c, "не удалось получить фотографии категории", err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// CreatePhoto обрабатывает POST /api/photos: валидация, проверка размера,
// best-effort анализ изображения и сохранение.
func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	var req models.InsertPhoto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	if errs := validation.ValidateInsertPhoto(req); len(errs) > 0 {
		validationError(c, errs)
		return
	}

	if len(req.ImageURL) > MaxEncodedImageChars {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "изображение слишком большое, загрузите файл поменьше",
		})
		return
	}

	// Обогащение — best-effort: ошибка анализа не должна блокировать
	// загрузку, подставляем заглушку.
	result, err := h.analyzer.Analyze(c.Request.Context(), req.ImageURL)
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithError(err).Warn("анализ изображения не удался, используем заглушку")
		}
		result = analysis.FallbackResult()
	}
	req.AIDescription = &result.Description
	req.Tags = result.SuggestedTags

	photo, err := h.store.AddPhoto(c.Request.Context(), req)
	if err != nil {
		internalError(c, "не удалось сохранить фотографию", err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// UpdatePhoto обрабатывает PATCH /api/photos/:id.
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdatePhoto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	if errs := validation.ValidateUpdatePhoto(req); len(errs) > 0 {
		validationError(c, errs)
		return
	}

	photo, err := h.store.UpdatePhoto(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "фотография не найдена"})
			return
		}
		internalError(c, "не удалось обновить фотографию", err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

// DeletePhoto обрабатывает DELETE /api/photos/:id. Удаление идемпотентно.
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeletePhoto(c.Request.Context(), id); err != nil {
		internalError(c, "не удалось удалить фотографию", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// intParam парсит целочисленный параметр пути, при ошибке отвечает 400.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный " + name})
		return 0, false
	}
	return id, true
}

// validationError отвечает 400 с полным списком нарушений по полям.
func validationError(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "некорректные данные",
		"errors": errs,
	})
}

// internalError логирует причину и отвечает 500 с общим сообщением.
// Детали внутренней ошибки клиенту не отдаются.
func internalError(c *gin.Context, message string, err error) {
	if logger.Log != nil {
		logger.Log.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).WithError(err).Error(message)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
