// Package canvas implements the interaction engine behind the design
// surface: it owns the authoritative widget list, single-selection
// state, pointer-driven drag and corner-resize math with window-bound
// clamping, palette drops, the keyboard clipboard, and the window
// properties that constrain placement.
//
// The engine is a state machine: Idle until a pointer goes down on a
// widget body (Dragging) or a corner handle (Resizing), back to Idle on
// pointer-up. Every mutation is reported to an optional Recorder so the
// history layer can snapshot it; restoring a snapshot bypasses the
// Recorder to avoid re-entrant recording.
package canvas
