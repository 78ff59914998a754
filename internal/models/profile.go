package models

// ProfileID — идентификатор единственной записи профиля.
const ProfileID = 1

// Profile описывает профиль владельца сайта. Запись всегда одна, id = 1.
type Profile struct {
	ID        int     `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Title     string  `db:"title" json:"title"`
	Bio       string  `db:"bio" json:"bio"`
	AvatarURL string  `db:"avatar_url" json:"avatarUrl"`
	GitHub    *string `db:"github" json:"github"`
	LinkedIn  *string `db:"linkedin" json:"linkedin"`
}

// UpdateProfile содержит частичное обновление профиля.
type UpdateProfile struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	GitHub    *string `json:"github"`
	LinkedIn  *string `json:"linkedin"`
}

// Apply накладывает частичное обновление на профиль.
func (u UpdateProfile) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.AvatarURL != nil {
		p.AvatarURL = *u.AvatarURL
	}
	if u.GitHub != nil {
		p.GitHub = u.GitHub
	}
	if u.LinkedIn != nil {
		p.LinkedIn = u.LinkedIn
	}
}

// DefaultProfile возвращает профиль-заглушку, который отдаётся,
// пока профиль ни разу не сохраняли. Не персистится автоматически.
func DefaultProfile() Profile {
	return Profile{
		ID:        ProfileID,
		Name:      "Ronny Reyes",
		Title:     "Photographer",
		Bio:       "Nature and travel photographer sharing moments from around the world.",
		AvatarURL: "/images/avatar-placeholder.png",
	}
}
