package storage

import (
	"context"
	"errors"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// Ошибки хранилища.
var (
	// ErrPhotoNotFound возвращается, когда фотография не найдена.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrBlogPostNotFound возвращается, когда запись блога не найдена.
	ErrBlogPostNotFound = errors.New("blog post not found")
)

// Storage — единый интерфейс хранилища фотографий и профиля.
// Две реализации: DatabaseStorage (PostgreSQL) и FileStorage (JSON-файлы).
// Бэкенд выбирается конфигурацией при старте процесса.
type Storage interface {
	// GetAllPhotos возвращает все фотографии в порядке хранения.
	// Пустая коллекция — не ошибка.
	GetAllPhotos(ctx context.Context) ([]models.Photo, error)

	// GetPhotosByCategory возвращает фотографии с точным совпадением
	// категории. Неизвестная категория — пустой список, не ошибка.
	GetPhotosByCategory(ctx context.Context, category string) ([]models.Photo, error)

	// GetPhotoByID возвращает фотографию или ErrPhotoNotFound.
	GetPhotoByID(ctx context.Context, id int) (*models.Photo, error)

	// AddPhoto сохраняет новую фотографию и возвращает её с назначенным id.
	AddPhoto(ctx context.Context, photo models.InsertPhoto) (*models.Photo, error)

	// UpdatePhoto сливает присланные поля в существующую запись.
	// Возвращает ErrPhotoNotFound, если записи нет.
	UpdatePhoto(ctx context.Context, id int, upd models.UpdatePhoto) (*models.Photo, error)

	// DeletePhoto удаляет фотографию. Идемпотентна: удаление
	// несуществующего id не считается ошибкой.
	DeletePhoto(ctx context.Context, id int) error

	// GetProfile возвращает профиль. Если профиль ни разу не сохраняли,
	// возвращается профиль-заглушка без записи в хранилище.
	GetProfile(ctx context.Context) (*models.Profile, error)

	// UpdateProfile сливает присланные поля в текущий (или дефолтный)
	// профиль и сохраняет результат.
	UpdateProfile(ctx context.Context, upd models.UpdateProfile) (*models.Profile, error)
}
