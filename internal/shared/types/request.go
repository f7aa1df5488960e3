package types

// SaveProjectRequest carries the full editable state of a project
type SaveProjectRequest struct {
	Name    string            `json:"name"`
	Widgets []Widget          `json:"widgets" binding:"required"`
	Window  *WindowProperties `json:"windowProperties,omitempty"`
}

// CreateProjectRequest creates a new (empty) project
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
	Tier string `json:"tier,omitempty"`
}

// ExportRequest triggers a code export for an ad-hoc widget list
type ExportRequest struct {
	Widgets []Widget          `json:"widgets"`
	Window  *WindowProperties `json:"windowProperties,omitempty"`
	Tier    string            `json:"tier,omitempty"`
}

// WSMessage represents a WebSocket canvas session message
type WSMessage struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Widget  string `json:"widget,omitempty"`
	Corner  string `json:"corner,omitempty"`
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
	Key     string `json:"key,omitempty"`
	Ctrl    bool   `json:"ctrl,omitempty"`
	InInput bool   `json:"in_input,omitempty"`
	Title   string `json:"title,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Color   string `json:"color,omitempty"`
}
