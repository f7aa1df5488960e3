// Package main is the entry point for the Buildfy backend server.
//
// The server backs the browser-based GUI builder: it owns project
// persistence, the canvas interaction engine behind each editing
// session, and the CustomTkinter code-generation/export pipeline.
//
// Architecture:
//
//	Frontend (browser canvas) → Go Backend → project store (JSON files)
//	                                      → archive exporter (ZIP)
//
// The server provides:
//   - REST API for project management and export
//   - WebSocket canvas sessions with undo/redo
//   - Code preview without archive download
//   - Rate limiting and Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - Optional TOML config file (-config)
//   - CLI flags (override both)
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -storage /var/lib/buildfy/projects
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
