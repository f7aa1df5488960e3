// Package types provides shared data structures for the Buildfy backend.
//
// This package defines core types used across all backend components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - Widget: One placed element on the design canvas
//   - WindowProperties: Designed application window settings
//   - Project: A saved canvas design with its widget list
//
// Request Types:
//   - ExportRequest, SaveProjectRequest: HTTP API payloads
//   - WSMessage: WebSocket canvas session communication
//
// State Management:
//   - Position, Size: Widget geometry
//   - ProjectSummary: Dashboard listing entry
//
// Example Usage:
//
//	widget := types.Widget{
//	    ID:       id.NewWidgetID(types.TypeButton),
//	    Type:     types.TypeButton,
//	    Position: types.Position{X: 10, Y: 10},
//	    Size:     types.Size{Width: 120, Height: 40},
//	}
package types
