package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateInsertPhoto_Valid(t *testing.T) {
	req := models.InsertPhoto{
		Title:    "Sunset",
		ImageURL: "data:image/jpeg;base64,AAAA",
		Category: "nature",
		Tags:     []string{"sunset", "golden hour"},
	}
	assert.Empty(t, ValidateInsertPhoto(req))
}

func TestValidateInsertPhoto_MissingRequiredFields(t *testing.T) {
	errs := ValidateInsertPhoto(models.InsertPhoto{})
	assert.ElementsMatch(t, []string{"title", "imageUrl", "category"}, fieldNames(errs))
}

func TestValidateInsertPhoto_WhitespaceIsEmpty(t *testing.T) {
	req := models.InsertPhoto{
		Title:    "   ",
		ImageURL: "data:image/jpeg;base64,AAAA",
		Category: "nature",
	}
	errs := ValidateInsertPhoto(req)
	assert.Equal(t, []string{"title"}, fieldNames(errs))
}

func TestValidateInsertPhoto_TooLongTitle(t *testing.T) {
	req := models.InsertPhoto{
		Title:    strings.Repeat("a", MaxTitleLength+1),
		ImageURL: "data:image/jpeg;base64,AAAA",
		Category: "nature",
	}
	errs := ValidateInsertPhoto(req)
	assert.Equal(t, []string{"title"}, fieldNames(errs))
}

func TestValidateInsertPhoto_NegativeISO(t *testing.T) {
	iso := -100
	req := models.InsertPhoto{
		Title:    "Sunset",
		ImageURL: "data:image/jpeg;base64,AAAA",
		Category: "nature",
		ISO:      &iso,
	}
	errs := ValidateInsertPhoto(req)
	assert.Equal(t, []string{"iso"}, fieldNames(errs))
}

func TestValidateInsertPhoto_BadTags(t *testing.T) {
	req := models.InsertPhoto{
		Title:    "Sunset",
		ImageURL: "data:image/jpeg;base64,AAAA",
		Category: "nature",
		Tags:     []string{"ok", "  "},
	}
	errs := ValidateInsertPhoto(req)
	assert.Equal(t, []string{"tags"}, fieldNames(errs))
}

func TestValidateUpdatePhoto_EmptySubsetIsValid(t *testing.T) {
	assert.Empty(t, ValidateUpdatePhoto(models.UpdatePhoto{}))
}

func TestValidateUpdatePhoto_PresentFieldMustBeNonEmpty(t *testing.T) {
	empty := ""
	errs := ValidateUpdatePhoto(models.UpdatePhoto{Title: &empty})
	assert.Equal(t, []string{"title"}, fieldNames(errs))
}

func TestValidateUpdatePhoto_PartialSubset(t *testing.T) {
	title := "New Title"
	iso := 400
	errs := ValidateUpdatePhoto(models.UpdatePhoto{Title: &title, ISO: &iso})
	assert.Empty(t, errs)
}
