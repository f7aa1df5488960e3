package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	nethttp "net/http"

	"github.com/buildfy/backend/internal/api/middleware"
	"github.com/buildfy/backend/internal/export"
	httpapi "github.com/buildfy/backend/internal/http"
	"github.com/buildfy/backend/internal/infrastructure/config"
	"github.com/buildfy/backend/internal/infrastructure/logging"
	"github.com/buildfy/backend/internal/infrastructure/monitoring"
	"github.com/buildfy/backend/internal/project"
	"github.com/buildfy/backend/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *nethttp.Server
	projects *project.Manager
	metrics  *monitoring.Metrics
	log      *logging.Logger
	cfg      *config.Config
}

// New creates a new server instance
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	store, err := project.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open project store: %w", err)
	}
	projects := project.NewManager(store, log.Logger)
	exporter := export.New(log.Logger)
	metrics := monitoring.NewMetrics()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	exportTimeout := time.Duration(cfg.Export.TimeoutSeconds) * time.Second
	handlers := httpapi.NewHandlers(projects, exporter, metrics, log, exportTimeout)
	wsHandler := ws.NewHandler(projects, metrics, log)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Project management
	router.GET("/projects", handlers.ListProjects)
	router.POST("/projects", handlers.CreateProject)
	router.GET("/projects/:id", handlers.GetProject)
	router.PUT("/projects/:id", handlers.SaveProject)
	router.DELETE("/projects/:id", handlers.DeleteProject)

	// Code generation
	router.GET("/projects/:id/preview", handlers.PreviewCode)
	router.POST("/projects/:id/export", handlers.ExportProject)
	router.POST("/export", handlers.ExportAdhoc)

	// WebSocket canvas session
	router.GET("/canvas", wsHandler.HandleConnection)

	return &Server{
		router:   router,
		projects: projects,
		metrics:  metrics,
		log:      log,
		cfg:      cfg,
	}, nil
}

// Run starts the server and blocks until it stops
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.log.Info("starting server", zap.String("addr", addr))

	s.http = &nethttp.Server{
		Addr:    addr,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	s.log.Info("shutting down")
	return s.http.Shutdown(ctx)
}
