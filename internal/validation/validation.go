package validation

import "strings"

// Ограничения на размеры полей.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxCategoryLength    = 50
	MaxTagLength         = 50
	MaxTagsCount         = 50
	MaxNameLength        = 100
	MaxBioLength         = 1000
	MaxContentLength     = 50000
)

// FieldError описывает нарушение по конкретному полю.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// requiredString проверяет, что обязательная строка непустая.
func requiredString(errs []FieldError, field, value string, max int) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Field: field, Message: "поле обязательно и не может быть пустым"})
	}
	return checkMax(errs, field, value, max)
}

// presentString проверяет поле частичного обновления: nil допустим,
// присланная строка должна быть непустой.
func presentString(errs []FieldError, field string, value *string, max int) []FieldError {
	if value == nil {
		return errs
	}
	return requiredString(errs, field, *value, max)
}

func checkMax(errs []FieldError, field, value string, max int) []FieldError {
	if max > 0 && len([]rune(value)) > max {
		return append(errs, FieldError{Field: field, Message: "значение слишком длинное"})
	}
	return errs
}

// checkTags проверяет список тегов.
func checkTags(errs []FieldError, field string, tags []string) []FieldError {
	if len(tags) > MaxTagsCount {
		return append(errs, FieldError{Field: field, Message: "слишком много тегов"})
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" || len([]rune(tag)) > MaxTagLength {
			return append(errs, FieldError{Field: field, Message: "некорректный тег"})
		}
	}
	return errs
}
