package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/buildfy/backend/internal/export"
	"github.com/buildfy/backend/internal/feature"
	"github.com/buildfy/backend/internal/infrastructure/logging"
	"github.com/buildfy/backend/internal/infrastructure/monitoring"
	"github.com/buildfy/backend/internal/project"
	"github.com/buildfy/backend/internal/shared/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	projects      *project.Manager
	exporter      *export.Exporter
	metrics       *monitoring.Metrics
	log           *logging.Logger
	exportTimeout time.Duration
}

// NewHandlers creates a new handler set
func NewHandlers(
	projects *project.Manager,
	exporter *export.Exporter,
	metrics *monitoring.Metrics,
	log *logging.Logger,
	exportTimeout time.Duration,
) *Handlers {
	return &Handlers{
		projects:      projects,
		exporter:      exporter,
		metrics:       metrics,
		log:           log,
		exportTimeout: exportTimeout,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Buildfy Backend (Go)",
		"version": "0.2.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	count, err := h.projects.Count(c.Request.Context())
	healthy := err == nil

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":   statusWord(healthy),
		"projects": count,
		"metrics":  h.metrics.Snapshot(),
	})
}

func statusWord(healthy bool) string {
	if healthy {
		return "healthy"
	}
	return "degraded"
}

// ListProjects returns dashboard summaries
func (h *Handlers) ListProjects(c *gin.Context) {
	summaries, err := h.projects.List(c.Request.Context())
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": summaries})
}

// CreateProject makes a new empty project
func (h *Handlers) CreateProject(c *gin.Context) {
	var req types.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.projects.Create(c.Request.Context(), req.Name, tierFrom(c, req.Tier))
	if err != nil {
		if errors.Is(err, project.ErrProjectLimit) {
			abortForbidden(c, feature.CreateProjects)
			return
		}
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.metrics.IncProjectsTotal()
	c.JSON(http.StatusCreated, p)
}

// GetProject returns one full project
func (h *Handlers) GetProject(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveProject replaces a project's editable state
func (h *Handlers) SaveProject(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	var req types.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Window != nil {
		if req.Window.Size.Width < types.MinWindowSide || req.Window.Size.Height < types.MinWindowSide {
			abortError(c, http.StatusBadRequest, "window size below minimum")
			return
		}
		p.Window = *req.Window
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	p.Widgets = req.Widgets

	if err := h.projects.Save(c.Request.Context(), p); err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject removes a project
func (h *Handlers) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")
	err := h.projects.Delete(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, project.ErrNotFound):
		abortError(c, http.StatusNotFound, "project not found")
	case err != nil:
		abortError(c, http.StatusInternalServerError, err.Error())
	default:
		c.JSON(http.StatusOK, gin.H{"deleted": projectID})
	}
}

// PreviewCode returns the generated program text without building an
// archive. Preview is not tier-gated; only the download is.
func (h *Handlers) PreviewCode(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, export.Preview(p.Widgets, p.Window))
}

// ExportProject builds and returns the project archive
func (h *Handlers) ExportProject(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}
	h.export(c, p.Widgets, p.Window, tierFrom(c, ""))
}

// ExportAdhoc builds an archive from the widget list in the request
// body, for designs that were never saved as a project
func (h *Handlers) ExportAdhoc(c *gin.Context) {
	var req types.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}
	window := types.DefaultWindow()
	if req.Window != nil {
		window = *req.Window
	}
	h.export(c, req.Widgets, window, tierFrom(c, req.Tier))
}

func (h *Handlers) export(c *gin.Context, widgets []types.Widget, window types.WindowProperties, tier feature.Tier) {
	if !feature.Has(tier, feature.ExportCode) {
		abortForbidden(c, feature.ExportCode)
		return
	}

	ctx := c.Request.Context()
	if h.exportTimeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, h.exportTimeout)
		defer cancel()
	}

	start := time.Now()
	data, err := h.exporter.Export(ctx, widgets, window)
	if err != nil {
		h.metrics.RecordExport("error", time.Since(start), 0)
		h.log.Error("export failed", zap.Error(err))
		abortError(c, http.StatusInternalServerError, "export failed")
		return
	}
	h.metrics.RecordExport("success", time.Since(start), len(data))
	h.log.Info("export complete",
		zap.Int("widgets", len(widgets)),
		zap.Int("archive_bytes", len(data)),
		zap.Bool("embedded_images", export.HasEmbeddedImages(widgets)),
		zap.Duration("elapsed", time.Since(start)))

	c.Header("Content-Disposition", `attachment; filename="`+export.ArchiveName+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}

func (h *Handlers) loadProject(c *gin.Context) (*types.Project, bool) {
	projectID := c.Param("id")
	p, err := h.projects.Load(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, project.ErrNotFound):
		abortError(c, http.StatusNotFound, "project not found")
		return nil, false
	case err != nil:
		abortError(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return p, true
}
