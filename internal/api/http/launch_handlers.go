package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/termdeck/termdeck/internal/shared/utils"
)

// LaunchApp dispatches an app launch and records it in the usage tracker.
// Usage is recorded only after the dispatcher accepts the launch, so failed
// attempts never pollute recents.
func (h *Handlers) LaunchApp(c *gin.Context) {
	identity := c.Param("identity")
	if err := utils.ValidateIdentity(identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, ok := h.deps.Composer.Record(identity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown identity"})
		return
	}

	if err := h.deps.Dispatcher.Launch(c.Request.Context(), rec); err != nil {
		h.deps.Metrics.RecordLaunch(false)
		h.deps.Logger.Warn("launch failed",
			zap.String("identity", identity),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	h.deps.Metrics.RecordLaunch(true)
	h.deps.Tracker.RecordLaunch(identity)
	h.deps.Composer.SetUsage(h.deps.Tracker.State())

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"identity": identity,
	})
}

// GetUsage returns the session launch history.
func (h *Handlers) GetUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Tracker.State())
}
