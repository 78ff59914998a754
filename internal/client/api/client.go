// Package api — HTTP клиент к REST API портфолио с кэшем ответов.
// GET-ответы кэшируются по пути запроса; любая мутация сбрасывает кэш,
// чтобы следующее чтение увидело свежие данные.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// TokenSource отдаёт текущий bearer-токен. Пустая строка — токена нет,
// заголовок Authorization не выставляется.
type TokenSource interface {
	Token() string
}

// Client представляет HTTP клиент для взаимодействия с сервером.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource

	mu    sync.Mutex
	cache map[string][]byte
}

// NewClient создает новый API клиент. tokens может быть nil —
// тогда запросы уходят без авторизации.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: make(map[string][]byte),
	}
}

// Photos возвращает все фотографии.
func (c *Client) Photos(ctx context.Context) ([]models.Photo, error) {
	var photos []models.Photo
	if err := c.get(ctx, "/api/photos", &photos); err != nil {
		return nil, fmt.Errorf("photos request failed: %w", err)
	}
	return photos, nil
}

// PhotoByID возвращает фотографию по id.
func (c *Client) PhotoByID(ctx context.Context, id int) (*models.Photo, error) {
	var photo models.Photo
	if err := c.get(ctx, fmt.Sprintf("/api/photos/%d", id), &photo); err != nil {
		return nil, fmt.Errorf("photo request failed: %w", err)
	}
	return &photo, nil
}

// PhotosByCategory возвращает фотографии категории.
func (c *Client) PhotosByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	var photos []models.Photo
	if err := c.get(ctx, "/api/photos/category/"+category, &photos); err != nil {
		return nil, fmt.Errorf("photos by category request failed: %w", err)
	}
	return photos, nil
}

// CreatePhoto загружает новую фотографию.
func (c *Client) CreatePhoto(ctx context.Context, req models.InsertPhoto) (*models.Photo, error) {
	var photo models.Photo
	if err := c.mutate(ctx, http.MethodPost, "/api/photos", req, &photo); err != nil {
		return nil, fmt.Errorf("create photo request failed: %w", err)
	}
	return &photo, nil
}

// UpdatePhoto частично обновляет фотографию.
func (c *Client) UpdatePhoto(ctx context.Context, id int, req models.UpdatePhoto) (*models.Photo, error) {
	var photo models.Photo
	if err := c.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/photos/%d", id), req, &photo); err != nil {
		return nil, fmt.Errorf("update photo request failed: %w", err)
	}
	return &photo, nil
}

// DeletePhoto удаляет фотографию.
func (c *Client) DeletePhoto(ctx context.Context, id int) error {
	if err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/photos/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete photo request failed: %w", err)
	}
	return nil
}

// Profile возвращает профиль владельца.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, "/api/profile", &profile); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &profile, nil
}

// UpdateProfile частично обновляет профиль.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfile) (*models.Profile, error) {
	var profile models.Profile
	if err := c.mutate(ctx, http.MethodPatch, "/api/profile", req, &profile); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &profile, nil
}

// BlogPosts возвращает записи блога.
func (c *Client) BlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := c.get(ctx, "/api/blog-posts", &posts); err != nil {
		return nil, fmt.Errorf("blog posts request failed: %w", err)
	}
	return posts, nil
}

// BlogPostByID возвращает запись блога по id.
func (c *Client) BlogPostByID(ctx context.Context, id int) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.get(ctx, fmt.Sprintf("/api/blog-posts/%d", id), &post); err != nil {
		return nil, fmt.Errorf("blog post request failed: %w", err)
	}
	return &post, nil
}

// CreateBlogPost создаёт запись блога.
func (c *Client) CreateBlogPost(ctx context.Context, req models.CreateBlogPost) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.mutate(ctx, http.MethodPost, "/api/blog-posts", req, &post); err != nil {
		return nil, fmt.Errorf("create blog post request failed: %w", err)
	}
	return &post, nil
}

// UpdateBlogPost частично обновляет запись блога.
func (c *Client) UpdateBlogPost(ctx context.Context, id int, req models.UpdateBlogPost) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/blog-posts/%d", id), req, &post); err != nil {
		return nil, fmt.Errorf("update blog post request failed: %w", err)
	}
	return &post, nil
}

// DeleteBlogPost удаляет запись блога.
func (c *Client) DeleteBlogPost(ctx context.Context, id int) error {
	if err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/blog-posts/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete blog post request failed: %w", err)
	}
	return nil
}

// PortfolioItems возвращает проекты портфолио.
func (c *Client) PortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := c.get(ctx, "/api/portfolio-items", &items); err != nil {
		return nil, fmt.Errorf("portfolio items request failed: %w", err)
	}
	return items, nil
}

// ReplacePortfolioItems заменяет коллекцию портфолио целиком.
func (c *Client) ReplacePortfolioItems(ctx context.Context, items []models.PortfolioItem) error {
	if err := c.mutate(ctx, http.MethodPost, "/api/portfolio-items", items, nil); err != nil {
		return fmt.Errorf("replace portfolio items request failed: %w", err)
	}
	return nil
}

// InvalidateCache полностью сбрасывает кэш GET-ответов.
func (c *Client) InvalidateCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string][]byte)
}

// get отдаёт кэшированный ответ или выполняет запрос и кэширует тело.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	c.mu.Lock()
	cached, ok := c.cache[path]
	c.mu.Unlock()

	if ok {
		return json.Unmarshal(cached, result)
	}

	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.cache[path] = body
	c.mu.Unlock()

	return json.Unmarshal(body, result)
}

// mutate выполняет мутацию и сбрасывает кэш.
func (c *Client) mutate(ctx context.Context, method, path string, body, result interface{}) error {
	respBody, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	c.InvalidateCache()

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// doRequest выполняет HTTP запрос и возвращает тело успешного ответа.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
