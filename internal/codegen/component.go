package codegen

import (
	"fmt"

	"github.com/buildfy/backend/internal/shared/types"
)

// Component renders the construction fragment for a single widget.
// Any per-widget failure — missing type, emitter panic on a malformed
// property bag — is converted into an inert comment fragment tagged with
// the widget's id and type, so the rest of the export continues unaffected.
func Component(w types.Widget, indent string) (fragment string) {
	if w.Type == "" {
		return fmt.Sprintf("%s# Missing component data or type\n", indent)
	}

	defer func() {
		if r := recover(); r != nil {
			fragment = fmt.Sprintf("%s# Error generating code for %s (%s)\n", indent, w.Type, w.ID)
		}
	}()

	return EmitWidget(w.Type, SanitizeID(w.ID), NewPropSet(w), indent)
}
