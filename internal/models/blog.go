package models

import "time"

// BlogPost описывает запись блога.
type BlogPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
}

// CreateBlogPost содержит данные для создания записи.
// ID и таймстемпы назначает хранилище.
type CreateBlogPost struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	ImageURL *string  `json:"imageUrl"`
	Tags     []string `json:"tags"`
}

// UpdateBlogPost содержит частичное обновление записи.
// CreatedAt неизменяем, UpdatedAt обновляет хранилище.
type UpdateBlogPost struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	ImageURL *string   `json:"imageUrl"`
	Tags     *[]string `json:"tags"`
}

// Apply накладывает частичное обновление на запись.
func (u UpdateBlogPost) Apply(p *BlogPost) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.ImageURL != nil {
		p.ImageURL = u.ImageURL
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
}

// DefaultBlogPosts возвращает записи, которые отдаются, пока блог
// ни разу не сохраняли на диск.
func DefaultBlogPosts() []BlogPost {
	now := time.Now().UTC()
	return []BlogPost{
		{
			ID:        1,
			Title:     "Welcome to My Photography Blog",
			Content:   "Hello everyone! This is where I'll be sharing my photography journey, latest shoots, and creative ideas.",
			CreatedAt: now,
			UpdatedAt: now,
			Tags:      []string{"welcome", "photography"},
		},
	}
}
