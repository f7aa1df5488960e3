package canvas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/buildfy/backend/internal/history"
	"github.com/buildfy/backend/internal/shared/id"
	"github.com/buildfy/backend/internal/shared/types"
)

// Recorder receives a widget-list snapshot after every significant
// mutation. history.Manager satisfies it.
type Recorder interface {
	Record(widgets []types.Widget, action history.ActionType)
}

// Corner identifies a resize handle by compass direction.
type Corner string

const (
	CornerNW Corner = "nw"
	CornerNE Corner = "ne"
	CornerSW Corner = "sw"
	CornerSE Corner = "se"
)

func (c Corner) north() bool { return strings.ContainsRune(string(c), 'n') }
func (c Corner) south() bool { return strings.ContainsRune(string(c), 's') }
func (c Corner) west() bool  { return strings.ContainsRune(string(c), 'w') }
func (c Corner) east() bool  { return strings.ContainsRune(string(c), 'e') }

func (c Corner) valid() bool {
	switch c {
	case CornerNW, CornerNE, CornerSW, CornerSE:
		return true
	}
	return false
}

// Drop places the cursor near the new widget's visual center rather
// than its top-left corner.
const (
	dropOffsetX = 60
	dropOffsetY = 20
)

// Paste nudges the clone so it does not land exactly on the original.
const pasteOffset = 10

type mode int

const (
	idle mode = iota
	dragging
	resizing
)

// Engine is the canvas interaction state machine. One instance serves
// one open project; all methods are safe for concurrent use. The
// Recorder is always invoked outside the engine's lock.
type Engine struct {
	rec Recorder

	mu        sync.Mutex
	widgets   []types.Widget
	window    types.WindowProperties
	selected  string
	clipboard *types.Widget

	mode   mode
	active int // index into widgets while dragging/resizing
	corner Corner
	grabX  int // pointer-to-origin offset captured at drag start
	grabY  int
}

// New builds an engine over an initial widget list. rec may be nil.
// A stored window below the minimum size gets the default size back
// while keeping its title and background.
func New(widgets []types.Widget, window types.WindowProperties, rec Recorder) *Engine {
	def := types.DefaultWindow()
	if window.Size.Width < types.MinWindowSide || window.Size.Height < types.MinWindowSide {
		window.Size = def.Size
	}
	if window.Title == "" {
		window.Title = def.Title
	}
	if window.BackgroundColor == "" {
		window.BackgroundColor = def.BackgroundColor
	}
	return &Engine{
		rec:     rec,
		widgets: types.CloneWidgets(widgets),
		window:  window,
		active:  -1,
	}
}

// Widgets returns a deep copy of the current list in z-order.
func (e *Engine) Widgets() []types.Widget {
	e.mu.Lock()
	defer e.mu.Unlock()
	return types.CloneWidgets(e.widgets)
}

// Window returns the current window properties.
func (e *Engine) Window() types.WindowProperties {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.window
}

// Selected returns the id of the selected widget, or "".
func (e *Engine) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// Restore replaces the widget list with a snapshot, typically one
// produced by an undo or redo. Selection is cleared: it may reference a
// widget that no longer exists on the other side of the jump. The
// Recorder is not notified.
func (e *Engine) Restore(snapshot []types.Widget) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.widgets = types.CloneWidgets(snapshot)
	e.selected = ""
	e.mode = idle
	e.active = -1
}

// Drop creates a widget of the given type at the drop point, offset so
// the cursor lands near its center, gives it type defaults and a fresh
// id, appends it on top of the z-order, and selects it.
func (e *Engine) Drop(t types.WidgetType, x, y int) types.Widget {
	e.mu.Lock()
	w := types.Widget{
		ID:   id.NewWidgetID(string(t)).String(),
		Type: t,
		Position: types.Position{
			X: max(0, x-dropOffsetX),
			Y: max(0, y-dropOffsetY),
		},
		Size:  DefaultSize(t),
		Props: DefaultProps(t),
	}
	e.widgets = append(e.widgets, w)
	e.selected = w.ID
	out := w.Clone()
	snap := types.CloneWidgets(e.widgets)
	e.mu.Unlock()

	e.record(snap, history.ActionAddComponent)
	return out
}

// ClickCanvas clears the selection.
func (e *Engine) ClickCanvas() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = ""
}

// ClickWidget selects the widget exclusively. Returns false for an
// unknown id.
func (e *Engine) ClickWidget(widgetID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.indexOf(widgetID) < 0 {
		return false
	}
	e.selected = widgetID
	return true
}

// PointerDown begins a drag on the widget body. Locked widgets select
// but do not enter the drag state.
func (e *Engine) PointerDown(widgetID string, x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(widgetID)
	if i < 0 {
		return false
	}
	e.selected = widgetID
	if e.widgets[i].Locked {
		return false
	}
	e.mode = dragging
	e.active = i
	e.grabX = x - e.widgets[i].Position.X
	e.grabY = y - e.widgets[i].Position.Y
	return true
}

// PointerDownHandle begins a resize from one of the four corner
// handles.
func (e *Engine) PointerDownHandle(widgetID string, corner Corner, x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(widgetID)
	if i < 0 || !corner.valid() {
		return false
	}
	e.selected = widgetID
	if e.widgets[i].Locked {
		return false
	}
	e.mode = resizing
	e.active = i
	e.corner = corner
	e.grabX = x
	e.grabY = y
	return true
}

// PointerMove advances an in-progress drag or resize to the pointer's
// canvas-local coordinates. Outside those states it is a no-op.
func (e *Engine) PointerMove(x, y int) {
	e.mu.Lock()
	if e.active < 0 || e.active >= len(e.widgets) {
		e.mu.Unlock()
		return
	}
	w := &e.widgets[e.active]

	switch e.mode {
	case dragging:
		w.Position.X = clamp(x-e.grabX, 0, e.window.Size.Width-w.Size.Width)
		w.Position.Y = clamp(y-e.grabY, 0, e.window.Size.Height-w.Size.Height)
	case resizing:
		resize(w, e.corner, x, y)
	default:
		e.mu.Unlock()
		return
	}
	snap := types.CloneWidgets(e.widgets)
	e.mu.Unlock()

	e.record(snap, history.ActionUpdate)
}

// resize updates the edges named by the active corner. The opposite
// edge stays fixed: shrinking from the north or west moves the origin
// by the same delta as the size change, floored at MinWidgetSide.
func resize(w *types.Widget, corner Corner, x, y int) {
	if corner.east() {
		w.Size.Width = max(types.MinWidgetSide, x-w.Position.X)
	}
	if corner.south() {
		w.Size.Height = max(types.MinWidgetSide, y-w.Position.Y)
	}
	if corner.west() {
		right := w.Position.X + w.Size.Width
		w.Size.Width = max(types.MinWidgetSide, right-x)
		w.Position.X = right - w.Size.Width
	}
	if corner.north() {
		bottom := w.Position.Y + w.Size.Height
		w.Size.Height = max(types.MinWidgetSide, bottom-y)
		w.Position.Y = bottom - w.Size.Height
	}
}

// PointerUp ends any drag or resize.
func (e *Engine) PointerUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = idle
	e.active = -1
	e.corner = ""
}

// Delete removes the selected widget.
func (e *Engine) Delete() bool {
	e.mu.Lock()
	ok := e.deleteSelectedLocked()
	var snap []types.Widget
	if ok {
		snap = types.CloneWidgets(e.widgets)
	}
	e.mu.Unlock()

	if ok {
		e.record(snap, history.ActionDelete)
	}
	return ok
}

func (e *Engine) deleteSelectedLocked() bool {
	i := e.indexOf(e.selected)
	if i < 0 {
		return false
	}
	e.widgets = append(e.widgets[:i], e.widgets[i+1:]...)
	e.selected = ""
	e.mode = idle
	e.active = -1
	return true
}

// Copy places a clone of the selection in the single-slot clipboard,
// overwriting whatever was there.
func (e *Engine) Copy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copySelectedLocked()
}

func (e *Engine) copySelectedLocked() bool {
	i := e.indexOf(e.selected)
	if i < 0 {
		return false
	}
	c := e.widgets[i].Clone()
	e.clipboard = &c
	return true
}

// Cut copies the selection to the clipboard and deletes it.
func (e *Engine) Cut() bool {
	e.mu.Lock()
	ok := e.copySelectedLocked() && e.deleteSelectedLocked()
	var snap []types.Widget
	if ok {
		snap = types.CloneWidgets(e.widgets)
	}
	e.mu.Unlock()

	if ok {
		e.record(snap, history.ActionDelete)
	}
	return ok
}

// Paste inserts a clone of the clipboard with a fresh id, nudged so it
// does not cover the original, and selects it. Returns false when the
// clipboard is empty.
func (e *Engine) Paste() (types.Widget, bool) {
	e.mu.Lock()
	if e.clipboard == nil {
		e.mu.Unlock()
		return types.Widget{}, false
	}
	w := e.clipboard.Clone()
	w.ID = id.NewWidgetID(string(w.Type)).String()
	w.Position.X = clamp(w.Position.X+pasteOffset, 0, e.window.Size.Width-w.Size.Width)
	w.Position.Y = clamp(w.Position.Y+pasteOffset, 0, e.window.Size.Height-w.Size.Height)
	e.widgets = append(e.widgets, w)
	e.selected = w.ID
	out := w.Clone()
	snap := types.CloneWidgets(e.widgets)
	e.mu.Unlock()

	e.record(snap, history.ActionAddComponent)
	return out, true
}

// HandleKey dispatches a keyboard shortcut. Delete, copy and cut act on
// the selection; paste needs only a filled clipboard, so it still works
// after a cut cleared the selection. Delete and Backspace are ignored
// while focus is inside a text input.
func (e *Engine) HandleKey(key string, ctrl, inTextInput bool) {
	if ctrl && key == "v" {
		e.Paste()
		return
	}
	if e.Selected() == "" {
		return
	}

	switch {
	case (key == "Delete" || key == "Backspace") && !inTextInput:
		e.Delete()
	case ctrl && key == "c":
		e.Copy()
	case ctrl && key == "x":
		e.Cut()
	}
}

// SetWindowTitle trims and applies a new title. A blank title keeps the
// current one. Returns the title in effect afterwards.
func (e *Engine) SetWindowTitle(title string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t := strings.TrimSpace(title); t != "" {
		e.window.Title = t
	}
	return e.window.Title
}

// SetWindowSize resizes the design window. Both sides must be at least
// MinWindowSide.
func (e *Engine) SetWindowSize(width, height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if width < types.MinWindowSide || height < types.MinWindowSide {
		return fmt.Errorf("window size %dx%d below minimum %dx%d",
			width, height, types.MinWindowSide, types.MinWindowSide)
	}
	e.window.Size = types.Size{Width: width, Height: height}
	return nil
}

// SetWindowBackground applies a new background color.
func (e *Engine) SetWindowBackground(color string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.window.BackgroundColor = color
}

func (e *Engine) indexOf(widgetID string) int {
	if widgetID == "" {
		return -1
	}
	for i := range e.widgets {
		if e.widgets[i].ID == widgetID {
			return i
		}
	}
	return -1
}

func (e *Engine) record(snapshot []types.Widget, action history.ActionType) {
	if e.rec != nil {
		e.rec.Record(snapshot, action)
	}
}

// clamp keeps v within [lo, hi], collapsing to lo when the widget is
// larger than the window (hi < lo).
func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
