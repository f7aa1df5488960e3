package canvas

import "github.com/buildfy/backend/internal/shared/types"

// DefaultSize returns the initial footprint a widget gets when dropped
// from the palette.
func DefaultSize(t types.WidgetType) types.Size {
	switch t {
	case types.TypeButton:
		return types.Size{Width: 120, Height: 40}
	case types.TypeLabel:
		return types.Size{Width: 200, Height: 30}
	case types.TypeEntry:
		return types.Size{Width: 200, Height: 40}
	case types.TypeImage:
		return types.Size{Width: 200, Height: 200}
	case types.TypeSlider:
		return types.Size{Width: 200, Height: 30}
	case types.TypeFrame:
		return types.Size{Width: 300, Height: 200}
	case types.TypeCheckbox:
		return types.Size{Width: 120, Height: 30}
	case types.TypeDatePicker:
		return types.Size{Width: 200, Height: 40}
	case types.TypeProgressBar:
		return types.Size{Width: 200, Height: 30}
	case types.TypeTextbox:
		return types.Size{Width: 200, Height: 100}
	case types.TypeParagraph:
		return types.Size{Width: 300, Height: 150}
	default:
		return types.Size{Width: 120, Height: 40}
	}
}

// DefaultProps returns the initial property bag for a freshly dropped
// widget. Maps are built per call so callers own their copy.
func DefaultProps(t types.WidgetType) map[string]interface{} {
	props := map[string]interface{}{
		"font":       "Arial",
		"fontSize":   12,
		"fontWeight": "normal",
		"fontStyle":  "normal",
	}
	withBorder := func() {
		props["borderColor"] = "#e2e8f0"
		props["borderWidth"] = 1
		props["cornerRadius"] = 8
	}
	withColors := func() {
		props["bgColor"] = "#ffffff"
		props["fgColor"] = "#000000"
	}

	switch t {
	case types.TypeButton:
		props["text"] = "Button"
		withColors()
		withBorder()
	case types.TypeLabel:
		props["text"] = "Label"
		props["fgColor"] = "#000000"
	case types.TypeEntry:
		props["placeholder"] = "Enter text..."
		withColors()
		withBorder()
	case types.TypeParagraph:
		props["text"] = "Paragraph text goes here."
		withColors()
		withBorder()
		props["padding"] = 10
		props["lineHeight"] = 1.5
	default:
		withColors()
		withBorder()
	}
	return props
}
