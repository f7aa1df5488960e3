// Package http provides HTTP handlers and routing for the Buildfy REST API.
//
// This package implements all HTTP endpoints using the Gin framework,
// including health checks, project CRUD, code preview, and archive export.
//
// Endpoints:
//   - Health: / and /health
//   - Projects: /projects, /projects/:id
//   - Preview: /projects/:id/preview
//   - Export: /projects/:id/export and /export
//
// Features:
//   - JSON request/response handling
//   - Proper HTTP status codes
//   - Error response formatting
//   - Subscription-tier gating on export
package http
