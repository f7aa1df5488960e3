// Package codegen turns the canvas widget graph into a runnable
// CustomTkinter program.
//
// The pipeline is layered the same way the data flows:
//   - SanitizeID maps widget IDs into valid Python identifier space
//   - PropSet lifts a widget's loose property bag into typed accessors
//   - per-type emitters render one widget into a source fragment
//   - Component dispatches a widget to its emitter and isolates failures
//   - Program assembles the full file: imports, App class, widget
//     construction in z-order, image loading helper, entry point
//
// Generation is deterministic: structurally identical input produces
// byte-identical output. Per-widget failures (unknown type, bad props)
// degrade to comment fragments; nothing in this package returns an error.
package codegen
