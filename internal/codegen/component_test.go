package codegen

import (
	"strings"
	"testing"

	"github.com/buildfy/backend/internal/shared/types"
	"github.com/stretchr/testify/assert"
)

func buttonWidget() types.Widget {
	return types.Widget{
		ID:       "button-01J8XK2M",
		Type:     types.TypeButton,
		Position: types.Position{X: 10, Y: 10},
		Size:     types.Size{Width: 120, Height: 40},
		Props:    map[string]interface{}{"text": "Click"},
	}
}

func TestComponentButton(t *testing.T) {
	frag := Component(buttonWidget(), "        ")

	assert.Contains(t, frag, `self.button_01J8XK2M = ctk.CTkButton(`)
	assert.Contains(t, frag, `text="Click"`)
	assert.Contains(t, frag, "width=120")
	assert.Contains(t, frag, "height=40")
	assert.Contains(t, frag, ".place(x=10, y=10)")
}

func TestComponentButtonDefaults(t *testing.T) {
	w := buttonWidget()
	w.Props = nil
	frag := Component(w, "")

	assert.Contains(t, frag, `text="Button"`)
	assert.Contains(t, frag, `fg_color="#3b82f6"`)
	assert.Contains(t, frag, `text_color="#ffffff"`)
	assert.Contains(t, frag, "corner_radius=8")
}

func TestComponentMissingType(t *testing.T) {
	w := types.Widget{ID: "x"}
	assert.Equal(t, "    # Missing component data or type\n", Component(w, "    "))
}

func TestComponentUnknownType(t *testing.T) {
	w := types.Widget{ID: "notebook-1", Type: "notebook"}
	frag := Component(w, "  ")
	assert.Equal(t, "  # Unsupported widget type: notebook\n", frag)
}

func TestComponentProgressBarFraction(t *testing.T) {
	w := types.Widget{
		ID:    "progressbar-1",
		Type:  types.TypeProgressBar,
		Size:  types.Size{Width: 200, Height: 30},
		Props: map[string]interface{}{"value": float64(50)},
	}
	frag := Component(w, "")
	assert.Contains(t, frag, ".set(0.5)")
}

func TestComponentProgressBarFull(t *testing.T) {
	w := types.Widget{
		ID:    "progressbar-2",
		Type:  types.TypeProgressBar,
		Size:  types.Size{Width: 200, Height: 30},
		Props: map[string]interface{}{"value": float64(100)},
	}
	assert.Contains(t, Component(w, ""), ".set(1)")
}

func TestComponentDatePickerRuntimeConditional(t *testing.T) {
	w := types.Widget{
		ID:   "datepicker-1",
		Type: types.TypeDatePicker,
		Size: types.Size{Width: 200, Height: 40},
	}
	frag := Component(w, "")

	// The dependency check must live in the emitted program, not here
	assert.Contains(t, frag, "if DateEntry:")
	assert.Contains(t, frag, "else:")
	assert.Contains(t, frag, `text="Date Picker (tkcalendar required)"`)
	assert.Contains(t, frag, "width=20") // 200 / 10
}

func TestComponentParagraphWrap(t *testing.T) {
	w := types.Widget{
		ID:   "paragraph-1",
		Type: types.TypeParagraph,
		Size: types.Size{Width: 300, Height: 150},
	}
	frag := Component(w, "")
	assert.Contains(t, frag, "wraplength=280")
	assert.Contains(t, frag, `anchor="nw"`)
}

func TestComponentCheckbox(t *testing.T) {
	w := types.Widget{
		ID:    "checkbox-1",
		Type:  types.TypeCheckbox,
		Size:  types.Size{Width: 120, Height: 30},
		Props: map[string]interface{}{"checked": true},
	}
	assert.Contains(t, Component(w, ""), "self.checkbox_1.select()")

	w.Props["checked"] = false
	assert.NotContains(t, Component(w, ""), ".select()")
}

func TestComponentTextboxPlaceholderFallback(t *testing.T) {
	w := types.Widget{
		ID:   "textbox-1",
		Type: types.TypeTextbox,
		Size: types.Size{Width: 200, Height: 100},
	}
	assert.Contains(t, Component(w, ""), `insert("1.0", "Enter text here...")`)

	w.Props = map[string]interface{}{"text": "hello"}
	assert.Contains(t, Component(w, ""), `insert("1.0", "hello")`)
}

func TestComponentTextColorAlias(t *testing.T) {
	w := buttonWidget()
	w.Props = map[string]interface{}{"textColor": "#ff0000"}
	assert.Contains(t, Component(w, ""), `text_color="#ff0000"`)
}

func TestComponentFontProp(t *testing.T) {
	w := buttonWidget()
	w.Props = map[string]interface{}{"font": "Georgia", "fontSize": float64(16)}
	assert.Contains(t, Component(w, ""), `font=("Georgia", 16)`)
}

func TestComponentFontFamilyAlias(t *testing.T) {
	w := buttonWidget()
	w.Props = map[string]interface{}{"fontFamily": "Courier New"}
	assert.Contains(t, Component(w, ""), `font=("Courier New", 12)`)
}

func TestComponentEscapesQuotes(t *testing.T) {
	w := buttonWidget()
	w.Props = map[string]interface{}{"text": `Say "hi"`}
	frag := Component(w, "")
	assert.Contains(t, frag, `text="Say \"hi\""`)
}

func TestComponentLabelTransparentBackground(t *testing.T) {
	w := types.Widget{
		ID:   "label-1",
		Type: types.TypeLabel,
		Size: types.Size{Width: 200, Height: 30},
	}
	frag := Component(w, "")
	assert.NotContains(t, frag, "fg_color")

	w.Props = map[string]interface{}{"bgColor": "#374151"}
	assert.Contains(t, Component(w, ""), `fg_color="#374151"`)
}

func TestComponentImageFallbackFile(t *testing.T) {
	w := types.Widget{
		ID:   "image-1",
		Type: types.TypeImage,
		Size: types.Size{Width: 200, Height: 200},
	}
	frag := Component(w, "")
	assert.Contains(t, frag, `self.load_image("assets/placeholder.png", (200, 200))`)
	assert.Contains(t, frag, "except Exception as e:")
}

func TestComponentSliderRange(t *testing.T) {
	w := types.Widget{
		ID:    "slider-1",
		Type:  types.TypeSlider,
		Size:  types.Size{Width: 200, Height: 30},
		Props: map[string]interface{}{"from": float64(10), "to": float64(90), "value": float64(25)},
	}
	frag := Component(w, "")
	assert.Contains(t, frag, "from_=10")
	assert.Contains(t, frag, "to=90")
	assert.Contains(t, frag, ".set(25)")
}

func fragmentCount(program, needle string) int {
	return strings.Count(program, needle)
}
