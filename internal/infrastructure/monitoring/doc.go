/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the
backend, tracking HTTP requests, the export pipeline, project storage,
and canvas sessions.

# Features

- HTTP request metrics (latency, throughput, size)
- Export metrics (duration, archive size, asset substitutions)
- Project lifecycle metrics
- Canvas session and WebSocket metrics
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.IncProjectsTotal()
	metrics.RecordExport("success", elapsed, len(archive))

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
