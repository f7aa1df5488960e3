package types

import "time"

// WidgetType identifies the kind of widget placed on the canvas
type WidgetType string

const (
	TypeButton      WidgetType = "button"
	TypeLabel       WidgetType = "label"
	TypeEntry       WidgetType = "entry"
	TypeImage       WidgetType = "image"
	TypeSlider      WidgetType = "slider"
	TypeFrame       WidgetType = "frame"
	TypeCheckbox    WidgetType = "checkbox"
	TypeDatePicker  WidgetType = "datepicker"
	TypeProgressBar WidgetType = "progressbar"
	TypeTextbox     WidgetType = "textbox"
	TypeParagraph   WidgetType = "paragraph"
)

// Position is a widget's top-left corner in canvas coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size represents widget or window dimensions
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Widget is one placed element on the design canvas.
// List order is z-order: later entries paint on top.
type Widget struct {
	ID       string                 `json:"id"`
	Type     WidgetType             `json:"type"`
	Position Position               `json:"position"`
	Size     Size                   `json:"size"`
	Props    map[string]interface{} `json:"props"`
	Visible  *bool                  `json:"visible,omitempty"` // nil means visible
	Locked   bool                   `json:"locked,omitempty"`
}

// IsVisible reports whether the widget participates in code generation.
// Absence of the flag means visible; only an explicit false hides.
func (w Widget) IsVisible() bool {
	return w.Visible == nil || *w.Visible
}

// Clone returns a deep copy of the widget
func (w Widget) Clone() Widget {
	cp := w
	if w.Props != nil {
		cp.Props = cloneValue(w.Props).(map[string]interface{})
	}
	if w.Visible != nil {
		v := *w.Visible
		cp.Visible = &v
	}
	return cp
}

// CloneWidgets deep-copies a widget list (used for history snapshots)
func CloneWidgets(widgets []Widget) []Widget {
	if widgets == nil {
		return nil
	}
	out := make([]Widget, len(widgets))
	for i, w := range widgets {
		out[i] = w.Clone()
	}
	return out
}

// cloneValue deep-copies the JSON-shaped values stored in widget props
func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}

// WindowProperties describe the designed application window
type WindowProperties struct {
	Title           string `json:"title"`
	Size            Size   `json:"size"`
	BackgroundColor string `json:"backgroundColor"`
}

// DefaultWindow returns the window properties for a fresh project
func DefaultWindow() WindowProperties {
	return WindowProperties{
		Title:           "My App",
		Size:            Size{Width: 800, Height: 600},
		BackgroundColor: "#FFFFFF",
	}
}

// MinWindowSide is the smallest accepted window width or height
const MinWindowSide = 100

// MinWidgetSide is the resize floor for widget width and height
const MinWidgetSide = 50

// Project is one saved canvas design
type Project struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Widgets      []Widget         `json:"widgets"`
	Window       WindowProperties `json:"windowProperties"`
	LastModified time.Time        `json:"lastModified"`
}

// ProjectSummary is the dashboard view of a project
type ProjectSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LastModified time.Time `json:"lastModified"`
}
