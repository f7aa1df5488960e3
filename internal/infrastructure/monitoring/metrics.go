package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Export pipeline metrics
	ExportsTotal       *prometheus.CounterVec
	ExportDuration     prometheus.Histogram
	ExportArchiveSize  prometheus.Histogram
	AssetsEmbedded     prometheus.Counter
	AssetSubstitutions prometheus.Counter

	// Project metrics
	ProjectsTotal  prometheus.Counter
	ProjectsActive prometheus.Gauge

	// Canvas session metrics
	SessionsActive prometheus.Gauge
	WSMessages     *prometheus.CounterVec
	HistoryOps     *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for JSON API
type MetricsSnapshot struct {
	TotalRequests  int64
	TotalErrors    int64
	TotalExports   int64
	ActiveSessions int64
	TotalDuration  float64 // sum of all request durations
	RequestCount   int64   // count for averaging
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildfy_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buildfy_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buildfy_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buildfy_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		// Export pipeline metrics
		ExportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildfy_exports_total",
				Help: "Total number of project exports",
			},
			[]string{"status"},
		),
		ExportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "buildfy_export_duration_seconds",
				Help:    "Archive build duration in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		ExportArchiveSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "buildfy_export_archive_bytes",
				Help:    "Exported archive size in bytes",
				Buckets: []float64{1000, 10000, 100000, 1000000, 10000000, 100000000},
			},
		),
		AssetsEmbedded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "buildfy_export_assets_embedded_total",
				Help: "Total number of image assets embedded in archives",
			},
		),
		AssetSubstitutions: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "buildfy_export_asset_substitutions_total",
				Help: "Total number of malformed image payloads replaced by the placeholder",
			},
		),

		// Project metrics
		ProjectsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "buildfy_projects_created_total",
				Help: "Total number of projects created",
			},
		),
		ProjectsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "buildfy_projects",
				Help: "Number of stored projects",
			},
		),

		// Canvas session metrics
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "buildfy_canvas_sessions_active",
				Help: "Number of active canvas sessions",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildfy_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),
		HistoryOps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildfy_history_ops_total",
				Help: "Total number of undo/redo operations",
			},
			[]string{"op", "outcome"},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "buildfy_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	// Update snapshot
	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	m.snapshot.RequestCount++
	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordExport records the outcome of an archive build
func (m *Metrics) RecordExport(status string, duration time.Duration, archiveBytes int) {
	m.ExportsTotal.WithLabelValues(status).Inc()
	m.ExportDuration.Observe(duration.Seconds())
	if archiveBytes > 0 {
		m.ExportArchiveSize.Observe(float64(archiveBytes))
	}

	m.mu.Lock()
	m.snapshot.TotalExports++
	m.mu.Unlock()
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// RecordHistoryOp records an undo or redo and whether it had an effect
func (m *Metrics) RecordHistoryOp(op string, applied bool) {
	outcome := "applied"
	if !applied {
		outcome = "noop"
	}
	m.HistoryOps.WithLabelValues(op, outcome).Inc()
}

// IncProjectsTotal increments the created-projects counter
func (m *Metrics) IncProjectsTotal() {
	m.ProjectsTotal.Inc()
}

// SetProjectsActive sets the number of stored projects
func (m *Metrics) SetProjectsActive(count int) {
	m.ProjectsActive.Set(float64(count))
}

// IncSessions increments active canvas sessions
func (m *Metrics) IncSessions() {
	m.SessionsActive.Inc()
	m.mu.Lock()
	m.snapshot.ActiveSessions++
	m.mu.Unlock()
}

// DecSessions decrements active canvas sessions
func (m *Metrics) DecSessions() {
	m.SessionsActive.Dec()
	m.mu.Lock()
	m.snapshot.ActiveSessions--
	m.mu.Unlock()
}

// Snapshot returns current aggregate values for the JSON status API
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
