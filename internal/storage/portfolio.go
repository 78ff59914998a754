package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// PortfolioStore хранит проекты портфолио в одном JSON-файле.
// Семантика — замена коллекции целиком: клиент присылает полный
// массив желаемого состояния, файл переписывается как есть.
type PortfolioStore struct {
	path string
	mu   sync.Mutex
}

// NewPortfolioStore создаёт хранилище портфолио поверх файла path.
func NewPortfolioStore(path string) *PortfolioStore {
	return &PortfolioStore{path: path}
}

// List возвращает сохранённые проекты или встроенный дефолтный,
// если файла ещё нет.
func (s *PortfolioStore) List(ctx context.Context) ([]models.PortfolioItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.DefaultPortfolioItems(), nil
	}
	var items []models.PortfolioItem
	if err := json.Unmarshal(data, &items); err != nil {
		return models.DefaultPortfolioItems(), nil
	}
	return items, nil
}

// Replace сохраняет присланный массив как есть. Уникальность id внутри
// массива не проверяется — это контракт вызывающей стороны.
func (s *PortfolioStore) Replace(ctx context.Context, items []models.PortfolioItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("portfolio store: не удалось сериализовать проекты: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("portfolio store: не удалось записать файл: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("portfolio store: не удалось переименовать файл: %w", err)
	}
	return nil
}
