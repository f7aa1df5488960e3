package codegen

import "strings"

// SanitizeID maps a widget ID to a valid Python identifier.
// Widget IDs use a "type-suffix" scheme whose hyphen is illegal in
// identifiers; every rune outside [A-Za-z0-9_] becomes an underscore and a
// leading digit gets a "widget_" prefix. The mapping is deterministic, so
// the same widget resolves to the same identifier throughout a generation
// pass.
func SanitizeID(raw string) string {
	if raw == "" {
		return "widget_0"
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	s := b.String()
	if s[0] >= '0' && s[0] <= '9' {
		s = "widget_" + s
	}
	return s
}
