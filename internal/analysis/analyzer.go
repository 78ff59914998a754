// Package analysis извлекает метаданные из загруженного изображения:
// описание по размерам и набор тегов по формату и ориентации.
// Это best-effort обогащение: любая ошибка здесь не должна блокировать
// загрузку — маршрутный слой подставляет FallbackResult.
package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp"
)

// Result — результат анализа изображения.
type Result struct {
	Description   string   `json:"description"`
	SuggestedTags []string `json:"suggestedTags"`
}

// Analyzer анализирует изображение, переданное data-URL строкой.
type Analyzer interface {
	Analyze(ctx context.Context, dataURL string) (Result, error)
}

// FallbackResult возвращает результат-заглушку, используемую при
// любой ошибке анализа.
func FallbackResult() Result {
	return Result{
		Description:   "An uploaded image",
		SuggestedTags: []string{"photo"},
	}
}

// MetadataAnalyzer разбирает заголовки изображения локально,
// без внешних сервисов.
type MetadataAnalyzer struct{}

// NewMetadataAnalyzer создаёт анализатор.
func NewMetadataAnalyzer() *MetadataAnalyzer {
	return &MetadataAnalyzer{}
}

// Analyze декодирует data-URL, определяет формат, размеры и наличие
// альфа-канала и собирает из них описание и теги.
func (a *MetadataAnalyzer) Analyze(ctx context.Context, dataURL string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	raw, err := decodeDataURL(dataURL)
	if err != nil {
		return Result{}, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Result{}, fmt.Errorf("analysis: не удалось прочитать заголовок изображения: %w", err)
	}

	tags := make([]string, 0, 3)

	if kind, err := filetype.Match(raw); err == nil && kind != filetype.Unknown {
		tags = append(tags, kind.Extension)
	} else {
		tags = append(tags, "image")
	}

	if cfg.Width > cfg.Height {
		tags = append(tags, "landscape")
	} else {
		tags = append(tags, "portrait")
	}

	if hasAlpha(cfg.ColorModel) {
		tags = append(tags, "transparent")
	} else {
		tags = append(tags, "opaque")
	}

	return Result{
		Description:   fmt.Sprintf("An image with dimensions %dx%d", cfg.Width, cfg.Height),
		SuggestedTags: tags,
	}, nil
}

// decodeDataURL выделяет base64-часть из data-URL и декодирует её.
// Принимается и голый base64 без префикса.
func decodeDataURL(dataURL string) ([]byte, error) {
	payload := dataURL
	if idx := strings.Index(dataURL, ","); idx >= 0 {
		payload = dataURL[idx+1:]
	}
	if payload == "" {
		return nil, fmt.Errorf("analysis: пустое изображение")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Некоторые клиенты шлют base64 без выравнивания.
		raw, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("analysis: некорректный base64: %w", err)
	}
	return raw, nil
}

func hasAlpha(m color.Model) bool {
	switch m {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
