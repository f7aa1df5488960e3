// Package ws provides the WebSocket canvas session.
//
// Each connection owns one interaction engine and one history manager:
// the client streams pointer, keyboard, and palette events; the server
// applies them and answers with the authoritative widget list. Binding
// a session to a saved project (?project_id=...) loads its state and
// auto-saves after every edit.
package ws
