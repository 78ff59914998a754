package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// Имена документов файлового бэкенда.
const (
	photosFile  = "photos.json"
	profileFile = "profile.json"
)

// FileStorage хранит коллекции в JSON-файлах: один документ на коллекцию,
// при каждой мутации файл переписывается целиком. Все операции
// сериализуются одним мьютексом, чтобы read-modify-write двух
// одновременных запросов не потерял одну из мутаций.
type FileStorage struct {
	dir    string
	mu     sync.Mutex
	nextID int
}

// NewFileStorage создаёт файловое хранилище в каталоге dir.
// Счётчик id инициализируется как max(id)+1 по сохранённым фотографиям.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file storage: не удалось создать каталог %s: %w", dir, err)
	}

	s := &FileStorage{dir: dir, nextID: 1}
	for _, p := range s.readPhotos() {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s, nil
}

// GetAllPhotos возвращает все фотографии в порядке вставки.
func (s *FileStorage) GetAllPhotos(ctx context.Context) ([]models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photos := s.readPhotos()
	if photos == nil {
		// Пустая коллекция сериализуется как [], а не null.
		photos = []models.Photo{}
	}
	return photos, nil
}

// GetPhotosByCategory возвращает фотографии заданной категории
// (точное, регистрозависимое совпадение) в исходном порядке.
func (s *FileStorage) GetPhotosByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Photo{}
	for _, p := range s.readPhotos() {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetPhotoByID возвращает фотографию или ErrPhotoNotFound.
func (s *FileStorage) GetPhotoByID(ctx context.Context, id int) (*models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.readPhotos() {
		if p.ID == id {
			photo := p
			return &photo, nil
		}
	}
	return nil, ErrPhotoNotFound
}

// AddPhoto назначает новый id и дописывает фотографию в конец коллекции.
func (s *FileStorage) AddPhoto(ctx context.Context, photo models.InsertPhoto) (*models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := models.Photo{
		ID:            s.nextID,
		Title:         photo.Title,
		Description:   photo.Description,
		ImageURL:      photo.ImageURL,
		Category:      photo.Category,
		Tags:          photo.Tags,
		AIDescription: photo.AIDescription,
		ISO:           photo.ISO,
		Aperture:      photo.Aperture,
		Camera:        photo.Camera,
		Lens:          photo.Lens,
	}

	photos := append(s.readPhotos(), stored)
	if err := s.writeJSON(photosFile, photos); err != nil {
		return nil, err
	}
	s.nextID++
	return &stored, nil
}

// UpdatePhoto сливает присланные поля в существующую запись.
func (s *FileStorage) UpdatePhoto(ctx context.Context, id int, upd models.UpdatePhoto) (*models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photos := s.readPhotos()
	for i := range photos {
		if photos[i].ID != id {
			continue
		}
		upd.Apply(&photos[i])
		if err := s.writeJSON(photosFile, photos); err != nil {
			return nil, err
		}
		photo := photos[i]
		return &photo, nil
	}
	return nil, ErrPhotoNotFound
}

// DeletePhoto удаляет фотографию. Идемпотентна.
func (s *FileStorage) DeletePhoto(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photos := s.readPhotos()
	kept := photos[:0]
	for _, p := range photos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(photos) {
		// Нечего удалять — не ошибка.
		return nil
	}
	return s.writeJSON(photosFile, kept)
}

// GetProfile возвращает профиль или заглушку, если файла ещё нет.
func (s *FileStorage) GetProfile(ctx context.Context) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.readProfile()
	return &profile, nil
}

// UpdateProfile сливает поля в текущий (или дефолтный) профиль и сохраняет его.
func (s *FileStorage) UpdateProfile(ctx context.Context, upd models.UpdateProfile) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.readProfile()
	upd.Apply(&profile)
	profile.ID = models.ProfileID
	if err := s.writeJSON(profileFile, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// readPhotos читает коллекцию с диска. Отсутствующий или битый файл
// трактуется как пустая коллекция — это штатный сигнал «ещё не создано».
func (s *FileStorage) readPhotos() []models.Photo {
	data, err := os.ReadFile(filepath.Join(s.dir, photosFile))
	if err != nil {
		return nil
	}
	var photos []models.Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil
	}
	return photos
}

func (s *FileStorage) readProfile() models.Profile {
	data, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		return models.DefaultProfile()
	}
	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return models.DefaultProfile()
	}
	return profile
}

// writeJSON атомарно переписывает документ: сначала во временный файл,
// затем rename поверх целевого.
func (s *FileStorage) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("file storage: не удалось сериализовать %s: %w", name, err)
	}

	target := filepath.Join(s.dir, name)
	tempPath := target + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("file storage: не удалось записать %s: %w", name, err)
	}
	if err := os.Rename(tempPath, target); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("file storage: не удалось переименовать %s: %w", name, err)
	}
	return nil
}
