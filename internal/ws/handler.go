package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/buildfy/backend/internal/canvas"
	"github.com/buildfy/backend/internal/feature"
	"github.com/buildfy/backend/internal/history"
	"github.com/buildfy/backend/internal/infrastructure/logging"
	"github.com/buildfy/backend/internal/infrastructure/monitoring"
	"github.com/buildfy/backend/internal/project"
	"github.com/buildfy/backend/internal/shared/id"
	"github.com/buildfy/backend/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler manages WebSocket canvas sessions
type Handler struct {
	projects *project.Manager
	metrics  *monitoring.Metrics
	log      *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(projects *project.Manager, metrics *monitoring.Metrics, log *logging.Logger) *Handler {
	return &Handler{
		projects: projects,
		metrics:  metrics,
		log:      log,
	}
}

// session is the per-connection state
type session struct {
	id      id.SessionID
	tier    feature.Tier
	engine  *canvas.Engine
	hist    *history.Manager
	proj    *types.Project // nil for unbound scratch sessions
	handler *Handler
	conn    *websocket.Conn
}

// HandleConnection upgrades the request and runs the session loop
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.IncSessions()
	defer h.metrics.DecSessions()

	s := &session{
		id:      id.NewSessionID(),
		tier:    feature.Normalize(c.Query("tier")),
		handler: h,
		conn:    conn,
	}

	var widgets []types.Widget
	window := types.DefaultWindow()
	if projectID := c.Query("project_id"); projectID != "" {
		p, err := h.projects.Load(c.Request.Context(), projectID)
		if err != nil {
			s.sendError("project not found")
			return
		}
		s.proj = p
		widgets = p.Widgets
		window = p.Window
	}
	s.hist = history.New(widgets)
	s.engine = canvas.New(widgets, window, s.hist)

	h.log.Info("canvas session opened",
		zap.String("session_id", s.id.String()),
		zap.String("tier", string(s.tier)))

	s.send(gin.H{
		"type":       "system",
		"session_id": s.id.String(),
		"message":    "Connected to Buildfy Backend (Go)",
	})
	s.sendState()

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Debug("canvas session closed",
				zap.String("session_id", s.id.String()), zap.Error(err))
			break
		}
		h.metrics.RecordWSMessage("in", msg.Type)

		if msg.Type == "ping" {
			s.send(gin.H{"type": "pong"})
			continue
		}
		if s.dispatch(msg) {
			s.autosave(c)
		}
		s.sendState()
	}
}

// dispatch applies one client event. It reports whether the design may
// have changed and should be persisted.
func (s *session) dispatch(msg types.WSMessage) bool {
	switch msg.Type {
	case "drop":
		t := types.WidgetType(msg.Widget)
		if !feature.WidgetAvailable(s.tier, t) {
			s.sendError("widget requires a paid plan")
			return false
		}
		s.engine.Drop(t, msg.X, msg.Y)
		return true

	case "pointer_down":
		if msg.Corner != "" {
			s.engine.PointerDownHandle(msg.ID, canvas.Corner(msg.Corner), msg.X, msg.Y)
		} else {
			s.engine.PointerDown(msg.ID, msg.X, msg.Y)
		}
		return false

	// Move events stream at pointer frequency; the drag is persisted
	// once on pointer_up instead of on every frame.
	case "pointer_move":
		s.engine.PointerMove(msg.X, msg.Y)
		return false

	case "pointer_up":
		s.engine.PointerUp()
		return true

	case "click":
		if msg.ID == "" {
			s.engine.ClickCanvas()
		} else {
			s.engine.ClickWidget(msg.ID)
		}
		return false

	case "key":
		s.engine.HandleKey(msg.Key, msg.Ctrl, msg.InInput)
		return true

	case "undo":
		applied := s.hist.Undo(s.engine.Restore)
		s.handler.metrics.RecordHistoryOp("undo", applied)
		return applied

	case "redo":
		applied := s.hist.Redo(s.engine.Restore)
		s.handler.metrics.RecordHistoryOp("redo", applied)
		return applied

	case "set_window":
		if msg.Title != "" {
			s.engine.SetWindowTitle(msg.Title)
		}
		if msg.Width > 0 || msg.Height > 0 {
			if err := s.engine.SetWindowSize(msg.Width, msg.Height); err != nil {
				s.sendError(err.Error())
			}
		}
		if msg.Color != "" {
			s.engine.SetWindowBackground(msg.Color)
		}
		return true

	default:
		s.sendError("unknown message type")
		return false
	}
}

// autosave persists the current design onto the bound project
func (s *session) autosave(c *gin.Context) {
	if s.proj == nil {
		return
	}
	s.proj.Widgets = s.engine.Widgets()
	s.proj.Window = s.engine.Window()
	if err := s.handler.projects.Save(c.Request.Context(), s.proj); err != nil {
		s.handler.log.Warn("autosave failed",
			zap.String("session_id", s.id.String()),
			zap.String("project_id", s.proj.ID),
			zap.Error(err))
	}
}

// sendState pushes the authoritative design state to the client
func (s *session) sendState() {
	s.send(gin.H{
		"type":             "state",
		"widgets":          s.engine.Widgets(),
		"windowProperties": s.engine.Window(),
		"selected":         s.engine.Selected(),
		"can_undo":         s.hist.CanUndo(),
		"can_redo":         s.hist.CanRedo(),
		"timestamp":        time.Now().Unix(),
	})
}

func (s *session) send(data interface{}) {
	if err := s.conn.WriteJSON(data); err != nil {
		s.handler.log.Debug("websocket write failed",
			zap.String("session_id", s.id.String()), zap.Error(err))
	}
	if m, ok := data.(gin.H); ok {
		if t, ok := m["type"].(string); ok {
			s.handler.metrics.RecordWSMessage("out", t)
		}
	}
}

func (s *session) sendError(msg string) {
	s.send(gin.H{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
