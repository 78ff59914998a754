package validation

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ValidateCreateBlogPost проверяет данные новой записи блога.
func ValidateCreateBlogPost(req models.CreateBlogPost) []FieldError {
	var errs []FieldError
	errs = requiredString(errs, "title", req.Title, MaxTitleLength)
	errs = requiredString(errs, "content", req.Content, MaxContentLength)
	errs = checkTags(errs, "tags", req.Tags)
	return errs
}

// ValidateUpdateBlogPost проверяет частичное обновление записи блога.
func ValidateUpdateBlogPost(req models.UpdateBlogPost) []FieldError {
	var errs []FieldError
	errs = presentString(errs, "title", req.Title, MaxTitleLength)
	errs = presentString(errs, "content", req.Content, MaxContentLength)
	if req.Tags != nil {
		errs = checkTags(errs, "tags", *req.Tags)
	}
	return errs
}
