package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

func TestBlogPosts_ListIncludesDefault(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/blog-posts", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Welcome to My Photography Blog", posts[0].Title)
}

func TestBlogPosts_CreateSetsTimestamps(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/blog-posts", gin.H{
		"title":   "New Lens",
		"content": "First impressions.",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var post models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, 2, post.ID)
	assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
}

func TestBlogPosts_UpdateRefreshesUpdatedAt(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/blog-posts", gin.H{
		"title":   "New Lens",
		"content": "First impressions.",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	time.Sleep(10 * time.Millisecond)

	w = doJSON(t, r, http.MethodPatch, "/api/blog-posts/2", gin.H{"content": "Updated."}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Updated.", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestBlogPosts_CreateRequiresFields(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/blog-posts", gin.H{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogPosts_GetMissingIs404(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/blog-posts/99", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogPosts_DeleteIsIdempotent(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodDelete, "/api/blog-posts/1", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/blog-posts/1", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestBlogPosts_MutationsRequireAuth(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/blog-posts", gin.H{
		"title":   "A",
		"content": "B",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
