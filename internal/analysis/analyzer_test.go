package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Прозрачный PNG размером 1x1.
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestMetadataAnalyzer_Analyze_PNG(t *testing.T) {
	a := NewMetadataAnalyzer()

	result, err := a.Analyze(context.Background(), "data:image/png;base64,"+tinyPNG)
	require.NoError(t, err)

	assert.Equal(t, "An image with dimensions 1x1", result.Description)
	assert.Contains(t, result.SuggestedTags, "png")
	assert.Contains(t, result.SuggestedTags, "portrait")
	assert.Contains(t, result.SuggestedTags, "transparent")
}

func TestMetadataAnalyzer_Analyze_BareBase64(t *testing.T) {
	a := NewMetadataAnalyzer()

	result, err := a.Analyze(context.Background(), tinyPNG)
	require.NoError(t, err)
	assert.Equal(t, "An image with dimensions 1x1", result.Description)
}

func TestMetadataAnalyzer_Analyze_NotAnImage(t *testing.T) {
	a := NewMetadataAnalyzer()

	// Валидный base64, но не изображение.
	_, err := a.Analyze(context.Background(), "data:image/png;base64,AAAA")
	assert.Error(t, err)
}

func TestMetadataAnalyzer_Analyze_InvalidBase64(t *testing.T) {
	a := NewMetadataAnalyzer()

	_, err := a.Analyze(context.Background(), "data:image/png;base64,@@@@")
	assert.Error(t, err)
}

func TestMetadataAnalyzer_Analyze_EmptyPayload(t *testing.T) {
	a := NewMetadataAnalyzer()

	_, err := a.Analyze(context.Background(), "data:image/png;base64,")
	assert.Error(t, err)
}

func TestMetadataAnalyzer_Analyze_CancelledContext(t *testing.T) {
	a := NewMetadataAnalyzer()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, "data:image/png;base64,"+tinyPNG)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallbackResult(t *testing.T) {
	result := FallbackResult()
	assert.Equal(t, "An uploaded image", result.Description)
	assert.Equal(t, []string{"photo"}, result.SuggestedTags)
}
