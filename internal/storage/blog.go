package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// BlogStore хранит записи блога в одном JSON-файле. В отличие от Storage
// это не абстракция с двумя бэкендами: блог всегда файловый, CRUD-операции
// работают по той же схеме «прочитать всё — изменить — переписать файл».
type BlogStore struct {
	path   string
	mu     sync.Mutex
	nextID int
}

// NewBlogStore создаёт блог-хранилище поверх файла path.
// Пока файла нет, чтение отдаёт встроенную приветственную запись;
// счётчик id учитывает её, чтобы первая созданная запись не столкнулась
// с дефолтной по id.
func NewBlogStore(path string) *BlogStore {
	s := &BlogStore{path: path, nextID: 1}
	for _, p := range s.load() {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// List возвращает все записи в порядке хранения.
func (s *BlogStore) List(ctx context.Context) ([]models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// GetByID возвращает запись или ErrBlogPostNotFound.
func (s *BlogStore) GetByID(ctx context.Context, id int) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, ErrBlogPostNotFound
}

// Create сохраняет новую запись: id = счётчик, createdAt == updatedAt.
func (s *BlogStore) Create(ctx context.Context, req models.CreateBlogPost) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	post := models.BlogPost{
		ID:        s.nextID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
	}

	posts := append(s.load(), post)
	if err := s.save(posts); err != nil {
		return nil, err
	}
	s.nextID++
	return &post, nil
}

// Update сливает присланные поля в запись и обновляет updatedAt.
// createdAt неизменяем.
func (s *BlogStore) Update(ctx context.Context, id int, upd models.UpdateBlogPost) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load()
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		upd.Apply(&posts[i])
		posts[i].UpdatedAt = time.Now().UTC()
		if err := s.save(posts); err != nil {
			return nil, err
		}
		post := posts[i]
		return &post, nil
	}
	return nil, ErrBlogPostNotFound
}

// Delete удаляет запись. Идемпотентна.
func (s *BlogStore) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load()
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return nil
	}
	return s.save(kept)
}

// load читает записи с диска. Отсутствующий или битый файл — сигнал
// «блог ещё не сохраняли», отдаём дефолтные записи.
func (s *BlogStore) load() []models.BlogPost {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.DefaultBlogPosts()
	}
	var posts []models.BlogPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return models.DefaultBlogPosts()
	}
	return posts
}

func (s *BlogStore) save(posts []models.BlogPost) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("blog store: не удалось сериализовать записи: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("blog store: не удалось записать файл: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("blog store: не удалось переименовать файл: %w", err)
	}
	return nil
}
