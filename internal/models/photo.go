package models

// Photo описывает фотографию в галерее.
type Photo struct {
	ID            int      `db:"id" json:"id"`
	Title         string   `db:"title" json:"title"`
	Description   *string  `db:"description" json:"description"`
	ImageURL      string   `db:"image_url" json:"imageUrl"`
	Category      string   `db:"category" json:"category"`
	Tags          []string `db:"tags" json:"tags"`
	AIDescription *string  `db:"ai_description" json:"aiDescription"`
	ISO           *int     `db:"iso" json:"iso"`
	Aperture      *string  `db:"aperture" json:"aperture"`
	Camera        *string  `db:"camera" json:"camera"`
	Lens          *string  `db:"lens" json:"lens"`
}

// InsertPhoto содержит данные для создания фотографии. ID назначает хранилище.
type InsertPhoto struct {
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	AIDescription *string  `json:"aiDescription"`
	ISO           *int     `json:"iso"`
	Aperture      *string  `json:"aperture"`
	Camera        *string  `json:"camera"`
	Lens          *string  `json:"lens"`
}

// UpdatePhoto содержит частичное обновление фотографии.
// Nil-поля не затрагиваются при слиянии.
type UpdatePhoto struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"imageUrl"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
	AIDescription *string   `json:"aiDescription"`
	ISO           *int      `json:"iso"`
	Aperture      *string   `json:"aperture"`
	Camera        *string   `json:"camera"`
	Lens          *string   `json:"lens"`
}

// Apply накладывает частичное обновление на существующую фотографию.
func (u UpdatePhoto) Apply(p *Photo) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.AIDescription != nil {
		p.AIDescription = u.AIDescription
	}
	if u.ISO != nil {
		p.ISO = u.ISO
	}
	if u.Aperture != nil {
		p.Aperture = u.Aperture
	}
	if u.Camera != nil {
		p.Camera = u.Camera
	}
	if u.Lens != nil {
		p.Lens = u.Lens
	}
}
