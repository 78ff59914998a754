package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/analysis"
	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// Прозрачный PNG размером 1x1 в виде data-URL.
const tinyPNGDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:             "test",
		AllowedOrigins:  []string{"http://localhost:5173"},
		RateLimitLimit:  10000,
		RateLimitPeriod: time.Minute,
	}

	dir := t.TempDir()
	store, err := storage.NewFileStorage(dir)
	require.NoError(t, err)
	blogStore := storage.NewBlogStore(filepath.Join(dir, "blog-posts.json"))
	portfolioStore := storage.NewPortfolioStore(filepath.Join(dir, "portfolio-items.json"))

	return router.SetupRouter(
		cfg,
		handlers.NewPhotoHandler(store, analysis.NewMetadataAnalyzer()),
		handlers.NewProfileHandler(store),
		handlers.NewBlogHandler(blogStore),
		handlers.NewPortfolioHandler(portfolioStore),
		handlers.NewHealthHandler(nil),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer test-token")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPhotos_ListEmpty(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/photos", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPhotos_CreateAnalyzesImage(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{
		"title":    "Tiny",
		"imageUrl": tinyPNGDataURL,
		"category": "nature",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var photo models.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photo))
	assert.Equal(t, 1, photo.ID)
	require.NotNil(t, photo.AIDescription)
	assert.Equal(t, "An image with dimensions 1x1", *photo.AIDescription)
	assert.Contains(t, photo.Tags, "png")
}

func TestPhotos_CreateFallsBackOnUnreadableImage(t *testing.T) {
	r := newTestServer(t)

	// Валидный base64, но не изображение: загрузка всё равно проходит.
	w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{
		"title":    "Broken",
		"imageUrl": "data:image/png;base64,AAAA",
		"category": "nature",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var photo models.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photo))
	require.NotNil(t, photo.AIDescription)
	assert.Equal(t, "An uploaded image", *photo.AIDescription)
	assert.Equal(t, []string{"photo"}, photo.Tags)
}

func TestPhotos_CreateRejectsOversizedImage(t *testing.T) {
	r := newTestServer(t)

	big := "data:image/png;base64," + string(bytes.Repeat([]byte("A"), handlers.MaxEncodedImageChars))
	w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{
		"title":    "Huge",
		"imageUrl": big,
		"category": "nature",
	}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Отклонённая фотография не сохраняется.
	w = doJSON(t, r, http.MethodGet, "/api/photos", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPhotos_CreateValidationErrors(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string `json:"error"`
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"title", "imageUrl", "category"}, fields)
}

func TestPhotos_MutationsRequireAuth(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{
		"title":    "Tiny",
		"imageUrl": tinyPNGDataURL,
		"category": "nature",
	}, false)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Коллекция не изменилась.
	w = doJSON(t, r, http.MethodGet, "/api/photos", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPhotos_GetByID(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{
		"title":    "Tiny",
		"imageUrl": tinyPNGDataURL,
		"category": "nature",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/photos/1", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var photo models.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photo))
	assert.Equal(t, "Tiny", photo.Title)
}

func TestPhotos_GetMissingIs404(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/photos/99", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPhotos_BadIDIs400(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/photos/abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPhotos_CategoryFilter(t *testing.T) {
	r := newTestServer(t)

	for i, category := range []string{"nature", "nature", "street"} {
		w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{
			"title":    fmt.Sprintf("photo %d", i+1),
			"imageUrl": tinyPNGDataURL,
			"category": category,
		}, true)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/photos/category/nature", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var photos []models.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photos))
	require.Len(t, photos, 2)
	assert.Equal(t, "photo 1", photos[0].Title)
	assert.Equal(t, "photo 2", photos[1].Title)

	w = doJSON(t, r, http.MethodGet, "/api/photos/category/unknown", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPhotos_UpdateAndDelete(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/photos", gin.H{
		"title":    "Tiny",
		"imageUrl": tinyPNGDataURL,
		"category": "nature",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/photos/1", gin.H{"title": "Renamed"}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var photo models.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photo))
	assert.Equal(t, "Renamed", photo.Title)
	assert.Equal(t, "nature", photo.Category)

	w = doJSON(t, r, http.MethodDelete, "/api/photos/1", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Повторное удаление идемпотентно.
	w = doJSON(t, r, http.MethodDelete, "/api/photos/1", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestPhotos_UpdateMissingIs404(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/photos/42", gin.H{"title": "X"}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
