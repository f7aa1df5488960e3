package codegen

import (
	"strings"
	"testing"

	"github.com/buildfy/backend/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoWindow() types.WindowProperties {
	return types.WindowProperties{
		Title: "Demo",
		Size:  types.Size{Width: 800, Height: 600},
	}
}

func TestProgramDeterministic(t *testing.T) {
	widgets := []types.Widget{buttonWidget()}

	first := Program(widgets, demoWindow())
	second := Program(widgets, demoWindow())

	assert.Equal(t, first, second)
}

func TestProgramContainsScaffold(t *testing.T) {
	code := Program([]types.Widget{buttonWidget()}, demoWindow())

	assert.Contains(t, code, "import customtkinter as ctk")
	assert.Contains(t, code, `self.title("Demo")`)
	assert.Contains(t, code, `self.geometry("800x600")`)
	assert.Contains(t, code, "def load_image(self, path, size):")
	assert.Contains(t, code, `if __name__ == "__main__":`)
	assert.Contains(t, code, "self._image_references = []")
}

func TestProgramSingleButtonScenario(t *testing.T) {
	code := Program([]types.Widget{buttonWidget()}, demoWindow())

	require.Equal(t, 1, fragmentCount(code, "ctk.CTkButton("))
	assert.Contains(t, code, `text="Click"`)
	assert.Contains(t, code, ".place(x=10, y=10)")
}

func TestProgramSkipsInvisible(t *testing.T) {
	hidden := buttonWidget()
	no := false
	hidden.Visible = &no

	code := Program([]types.Widget{hidden}, demoWindow())

	assert.NotContains(t, code, "ctk.CTkButton(")
	// An all-hidden design still gets the sample widget
	assert.Contains(t, code, `text="Hello, CustomTkinter!"`)
}

func TestProgramEmptyListIsRunnable(t *testing.T) {
	code := Program(nil, demoWindow())

	assert.Contains(t, code, "self.sample_label")
	assert.Contains(t, code, ".place(x=300, y=275)")
}

func TestProgramDefaultTitleAndSize(t *testing.T) {
	code := Program(nil, types.WindowProperties{})

	assert.Contains(t, code, `self.title("My CustomTkinter Application")`)
	assert.Contains(t, code, `self.geometry("800x600")`)
	assert.Contains(t, code, `fg_color="#1A1A1A"`)
}

func TestProgramWindowBackground(t *testing.T) {
	win := demoWindow()
	win.BackgroundColor = "#fff"

	code := Program(nil, win)
	assert.Contains(t, code, `self.configure(fg_color="#ffffff")`)
}

func TestProgramZOrder(t *testing.T) {
	first := buttonWidget()
	second := types.Widget{
		ID:    "label-01J8XK2N",
		Type:  types.TypeLabel,
		Size:  types.Size{Width: 200, Height: 30},
		Props: map[string]interface{}{"text": "Under"},
	}

	code := Program([]types.Widget{first, second}, demoWindow())

	buttonAt := strings.Index(code, "CTkButton(")
	labelAt := strings.Index(code, "CTkLabel(")
	require.True(t, buttonAt >= 0 && labelAt >= 0)
	assert.Less(t, buttonAt, labelAt, "construction must follow list (z) order")
}

func TestProgramBadWidgetDoesNotAbort(t *testing.T) {
	bad := types.Widget{ID: "mystery-1", Type: "mystery"}
	good := buttonWidget()

	code := Program([]types.Widget{bad, good}, demoWindow())

	assert.Contains(t, code, "# Unsupported widget type: mystery")
	assert.Contains(t, code, "ctk.CTkButton(")
}
