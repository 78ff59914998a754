package validation

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ValidateUpdateProfile проверяет частичное обновление профиля.
// github и linkedin могут быть пустыми строками — это очистка поля.
func ValidateUpdateProfile(req models.UpdateProfile) []FieldError {
	var errs []FieldError
	errs = presentString(errs, "name", req.Name, MaxNameLength)
	errs = presentString(errs, "title", req.Title, MaxTitleLength)
	errs = presentString(errs, "bio", req.Bio, MaxBioLength)
	errs = presentString(errs, "avatarUrl", req.AvatarURL, 0)
	return errs
}
