package canvas

import (
	"testing"

	"github.com/buildfy/backend/internal/shared/types"
	"github.com/stretchr/testify/assert"
)

func TestDefaultSizeKnownTypes(t *testing.T) {
	assert.Equal(t, types.Size{Width: 120, Height: 40}, DefaultSize(types.TypeButton))
	assert.Equal(t, types.Size{Width: 200, Height: 200}, DefaultSize(types.TypeImage))
	assert.Equal(t, types.Size{Width: 300, Height: 150}, DefaultSize(types.TypeParagraph))
}

func TestDefaultSizeFallback(t *testing.T) {
	assert.Equal(t, types.Size{Width: 120, Height: 40}, DefaultSize("mystery"))
}

func TestDefaultPropsButton(t *testing.T) {
	p := DefaultProps(types.TypeButton)

	assert.Equal(t, "Button", p["text"])
	assert.Equal(t, "#ffffff", p["bgColor"])
	assert.Equal(t, "#000000", p["fgColor"])
	assert.Equal(t, 8, p["cornerRadius"])
	assert.Equal(t, "Arial", p["font"])
}

func TestDefaultPropsLabelHasNoBackground(t *testing.T) {
	p := DefaultProps(types.TypeLabel)

	assert.Equal(t, "Label", p["text"])
	assert.NotContains(t, p, "bgColor")
	assert.NotContains(t, p, "borderColor")
}

func TestDefaultPropsEntryPlaceholder(t *testing.T) {
	assert.Equal(t, "Enter text...", DefaultProps(types.TypeEntry)["placeholder"])
}

func TestDefaultPropsParagraph(t *testing.T) {
	p := DefaultProps(types.TypeParagraph)
	assert.Equal(t, "Paragraph text goes here.", p["text"])
	assert.Equal(t, 1.5, p["lineHeight"])
}

func TestDefaultPropsReturnsFreshMap(t *testing.T) {
	a := DefaultProps(types.TypeButton)
	a["text"] = "mutated"
	assert.Equal(t, "Button", DefaultProps(types.TypeButton)["text"])
}
