package validation

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ValidateInsertPhoto проверяет данные новой фотографии.
// Возвращает полный список нарушений, а не первое попавшееся.
func ValidateInsertPhoto(req models.InsertPhoto) []FieldError {
	var errs []FieldError
	errs = requiredString(errs, "title", req.Title, MaxTitleLength)
	errs = requiredString(errs, "imageUrl", req.ImageURL, 0)
	errs = requiredString(errs, "category", req.Category, MaxCategoryLength)
	if req.Description != nil {
		errs = checkMax(errs, "description", *req.Description, MaxDescriptionLength)
	}
	errs = checkTags(errs, "tags", req.Tags)
	if req.ISO != nil && *req.ISO < 0 {
		errs = append(errs, FieldError{Field: "iso", Message: "iso не может быть отрицательным"})
	}
	return errs
}

// ValidateUpdatePhoto проверяет частичное обновление фотографии.
// Допускается любое подмножество полей, но присланные поля
// проверяются по тем же правилам, что и при создании.
func ValidateUpdatePhoto(req models.UpdatePhoto) []FieldError {
	var errs []FieldError
	errs = presentString(errs, "title", req.Title, MaxTitleLength)
	errs = presentString(errs, "imageUrl", req.ImageURL, 0)
	errs = presentString(errs, "category", req.Category, MaxCategoryLength)
	if req.Description != nil {
		errs = checkMax(errs, "description", *req.Description, MaxDescriptionLength)
	}
	if req.Tags != nil {
		errs = checkTags(errs, "tags", *req.Tags)
	}
	if req.ISO != nil && *req.ISO < 0 {
		errs = append(errs, FieldError{Field: "iso", Message: "iso не может быть отрицательным"})
	}
	return errs
}
