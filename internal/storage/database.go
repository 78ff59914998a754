package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

const photoColumns = `id, title, description, image_url, category, tags, ai_description, iso, aperture, camera, lens`

// DatabaseStorage — табличный бэкенд поверх PostgreSQL.
// Все операции — одиночные statements, атомарность на уровне строки
// обеспечивает движок.
type DatabaseStorage struct {
	db *sqlx.DB
}

// NewDatabaseStorage создаёт табличное хранилище.
func NewDatabaseStorage(db *sqlx.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

// GetAllPhotos возвращает все фотографии, отсортированные по id.
func (s *DatabaseStorage) GetAllPhotos(ctx context.Context) ([]models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos ORDER BY id`
	return s.queryPhotos(ctx, query)
}

// GetPhotosByCategory возвращает фотографии с точным совпадением категории.
func (s *DatabaseStorage) GetPhotosByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE category = $1 ORDER BY id`
	return s.queryPhotos(ctx, query, category)
}

// GetPhotoByID возвращает фотографию или ErrPhotoNotFound.
func (s *DatabaseStorage) GetPhotoByID(ctx context.Context, id int) (*models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`

	photo, err := scanPhoto(s.db.QueryRowxContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("database storage: get photo by id %w", err)
	}
	return photo, nil
}

// AddPhoto вставляет фотографию; id назначает последовательность таблицы.
func (s *DatabaseStorage) AddPhoto(ctx context.Context, photo models.InsertPhoto) (*models.Photo, error) {
	query := `
		INSERT INTO photos (title, description, image_url, category, tags, ai_description, iso, aperture, camera, lens)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + photoColumns

	stored, err := scanPhoto(s.db.QueryRowxContext(
		ctx,
		query,
		photo.Title,
		photo.Description,
		photo.ImageURL,
		photo.Category,
		pq.Array(photo.Tags),
		photo.AIDescription,
		photo.ISO,
		photo.Aperture,
		photo.Camera,
		photo.Lens,
	))
	if err != nil {
		return nil, fmt.Errorf("database storage: insert photo %w", err)
	}
	return stored, nil
}

// UpdatePhoto обновляет только присланные поля одним UPDATE по первичному
// ключу и возвращает строку после обновления.
func (s *DatabaseStorage) UpdatePhoto(ctx context.Context, id int, upd models.UpdatePhoto) (*models.Photo, error) {
	set := make([]string, 0, 10)
	args := make([]interface{}, 0, 11)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.ImageURL != nil {
		add("image_url", *upd.ImageURL)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Tags != nil {
		add("tags", pq.Array(*upd.Tags))
	}
	if upd.AIDescription != nil {
		add("ai_description", *upd.AIDescription)
	}
	if upd.ISO != nil {
		add("iso", *upd.ISO)
	}
	if upd.Aperture != nil {
		add("aperture", *upd.Aperture)
	}
	if upd.Camera != nil {
		add("camera", *upd.Camera)
	}
	if upd.Lens != nil {
		add("lens", *upd.Lens)
	}

	// Пустое обновление — просто отдаём текущую строку.
	if len(set) == 0 {
		return s.GetPhotoByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE photos SET %s WHERE id = $%d RETURNING `+photoColumns,
		strings.Join(set, ", "), len(args),
	)

	photo, err := scanPhoto(s.db.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("database storage: update photo %w", err)
	}
	return photo, nil
}

// DeletePhoto удаляет строку по первичному ключу. Идемпотентна:
// нулевое число затронутых строк не считается ошибкой.
func (s *DatabaseStorage) DeletePhoto(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("database storage: delete photo %w", err)
	}
	return nil
}

// GetProfile возвращает профиль или заглушку, если строки ещё нет.
// Заглушка в базу не пишется.
func (s *DatabaseStorage) GetProfile(ctx context.Context) (*models.Profile, error) {
	query := `SELECT id, name, title, bio, avatar_url, github, linkedin FROM profile WHERE id = $1`

	var profile models.Profile
	if err := s.db.GetContext(ctx, &profile, query, models.ProfileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			def := models.DefaultProfile()
			return &def, nil
		}
		return nil, fmt.Errorf("database storage: get profile %w", err)
	}
	return &profile, nil
}

// UpdateProfile сливает поля в текущий (или дефолтный) профиль
// и сохраняет результат upsert-ом.
func (s *DatabaseStorage) UpdateProfile(ctx context.Context, upd models.UpdateProfile) (*models.Profile, error) {
	current, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	upd.Apply(current)
	current.ID = models.ProfileID

	query := `
		INSERT INTO profile (id, name, title, bio, avatar_url, github, linkedin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			github = EXCLUDED.github,
			linkedin = EXCLUDED.linkedin
		RETURNING id, name, title, bio, avatar_url, github, linkedin
	`

	var stored models.Profile
	if err := s.db.QueryRowxContext(
		ctx,
		query,
		current.ID,
		current.Name,
		current.Title,
		current.Bio,
		current.AvatarURL,
		current.GitHub,
		current.LinkedIn,
	).StructScan(&stored); err != nil {
		return nil, fmt.Errorf("database storage: update profile %w", err)
	}
	return &stored, nil
}

func (s *DatabaseStorage) queryPhotos(ctx context.Context, query string, args ...interface{}) ([]models.Photo, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("database storage: query photos %w", err)
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("database storage: scan photo %w", err)
		}
		photos = append(photos, *photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database storage: rows %w", err)
	}
	return photos, nil
}

// rowScanner покрывает и *sqlx.Row, и *sqlx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPhoto читает строку photos; tags хранится как text[].
func scanPhoto(row rowScanner) (*models.Photo, error) {
	var photo models.Photo
	var tags pq.StringArray

	if err := row.Scan(
		&photo.ID,
		&photo.Title,
		&photo.Description,
		&photo.ImageURL,
		&photo.Category,
		&tags,
		&photo.AIDescription,
		&photo.ISO,
		&photo.Aperture,
		&photo.Camera,
		&photo.Lens,
	); err != nil {
		return nil, err
	}

	photo.Tags = []string(tags)
	return &photo, nil
}
