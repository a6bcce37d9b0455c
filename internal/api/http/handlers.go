package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/termdeck/termdeck/internal/api/ws"
	"github.com/termdeck/termdeck/internal/domain/catalog"
	"github.com/termdeck/termdeck/internal/domain/dock"
	"github.com/termdeck/termdeck/internal/domain/drawer"
	"github.com/termdeck/termdeck/internal/domain/reminders"
	"github.com/termdeck/termdeck/internal/domain/usage"
	"github.com/termdeck/termdeck/internal/infrastructure/logging"
	"github.com/termdeck/termdeck/internal/infrastructure/monitoring"
	"github.com/termdeck/termdeck/internal/providers/bridge"
	"github.com/termdeck/termdeck/internal/providers/launch"
)

// Deps bundles the components behind the HTTP surface.
type Deps struct {
	Composer   *drawer.Composer
	Reloader   *catalog.Reloader
	Tracker    *usage.Tracker
	Dock       *dock.Manager
	Scheduler  *reminders.Scheduler
	Pomodoro   *reminders.Pomodoro
	Dispatcher launch.Dispatcher
	Hub        *ws.Hub
	Bridge     *bridge.Client // nil outside bridge mode
	Metrics    *monitoring.Metrics
	Logger     *logging.Logger
	Mode       string

	// Pomodoro phase lengths used when a start request omits them.
	PomodoroWork  time.Duration
	PomodoroBreak time.Duration
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	deps Deps
}

// NewHandlers creates a new handler set.
func NewHandlers(deps Deps) *Handlers {
	return &Handlers{deps: deps}
}

// Root handles the liveness check.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "termdeckd",
		"version": "1.0.0",
	})
}

// Health handles the detailed health check.
func (h *Handlers) Health(c *gin.Context) {
	state := h.deps.Composer.State()
	size := 0
	for _, n := range state.View.Counts {
		size += n
	}

	health := gin.H{
		"status": "healthy",
		"mode":   h.deps.Mode,
		"catalog": gin.H{
			"generation": state.Generation,
			"loading":    state.Loading,
			"cached":     state.Cached,
			"size":       size,
		},
		"stream": gin.H{
			"clients": h.deps.Hub.ClientCount(),
		},
		"dock": gin.H{
			"pins": len(h.deps.Dock.State().Pins),
		},
		"reminders": gin.H{
			"pending": len(h.deps.Scheduler.List()),
		},
	}
	if h.deps.Bridge != nil {
		health["bridge"] = gin.H{
			"breaker": h.deps.Bridge.BreakerState().String(),
		}
	}
	c.JSON(http.StatusOK, health)
}

// Stats returns the JSON metrics snapshot.
func (h *Handlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Metrics.Snapshot())
}
