package codegen

import (
	"strings"

	"github.com/buildfy/backend/internal/codegen/color"
	"github.com/buildfy/backend/internal/shared/types"
)

// PropSet lifts a widget's loose string-keyed property bag into typed
// accessors. Emitters read through it with per-type defaults, so a missing
// or mistyped property can never panic a generation pass.
type PropSet struct {
	raw      map[string]interface{}
	Position types.Position
	Size     types.Size
}

// NewPropSet builds the canonical property view for a widget.
// Legacy keys are aliased onto their canonical names when the latter are
// absent ("textColor"→"fgColor", "fontFamily"→"font"); position and size
// fall back to the historic 0,0 / 100x30 shape.
func NewPropSet(w types.Widget) PropSet {
	raw := w.Props
	if raw == nil {
		raw = map[string]interface{}{}
	}
	raw = alias(raw, "textColor", "fgColor")
	raw = alias(raw, "fontFamily", "font")

	size := w.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = types.Size{Width: 100, Height: 30}
	}

	return PropSet{raw: raw, Position: w.Position, Size: size}
}

// alias copies props[from] to props[to] when the canonical key is absent.
// The map is copied so the alias never mutates canvas state.
func alias(raw map[string]interface{}, from, to string) map[string]interface{} {
	if _, ok := raw[to]; ok {
		return raw
	}
	v, ok := raw[from]
	if !ok {
		return raw
	}
	merged := make(map[string]interface{}, len(raw)+1)
	for k, mv := range raw {
		merged[k] = mv
	}
	merged[to] = v
	return merged
}

// String returns a string property or def when absent/empty
func (p PropSet) String(key, def string) string {
	if v, ok := p.raw[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Color returns a normalized color property, with def normalized as the
// fallback. Bad color strings degrade to black rather than failing.
func (p PropSet) Color(key, def string) string {
	return color.Format(p.String(key, def))
}

// Transparent reports whether a color property is absent or explicitly
// transparent (labels and paragraphs omit their background in that case)
func (p PropSet) Transparent(key string) bool {
	v, ok := p.raw[key].(string)
	return !ok || v == "" || strings.EqualFold(v, "transparent")
}

// Int returns an integer property or def when absent.
// JSON decoding stores numbers as float64; both forms are accepted.
func (p PropSet) Int(key string, def int) int {
	switch v := p.raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

// Float returns a numeric property or def when absent
func (p PropSet) Float(key string, def float64) float64 {
	switch v := p.raw[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Bool returns a boolean property or def when absent
func (p PropSet) Bool(key string, def bool) bool {
	if v, ok := p.raw[key].(bool); ok {
		return v
	}
	return def
}
