package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/termdeck/termdeck/internal/domain/dock"
	"github.com/termdeck/termdeck/internal/shared/types"
	"github.com/termdeck/termdeck/internal/shared/utils"
)

// GetDock returns the pinned dock and widget-host state.
func (h *Handlers) GetDock(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Dock.State())
}

// SetPins replaces the ordered pin list. An empty list clears the dock.
func (h *Handlers) SetPins(c *gin.Context) {
	var req types.PinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, pin := range req.Pins {
		if err := utils.ValidateIdentity(pin); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.deps.Dock.SetPins(req.Pins); err != nil {
		c.JSON(dockStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.deps.Dock.State())
}

// PinApp appends one identity to the dock.
func (h *Handlers) PinApp(c *gin.Context) {
	identity := c.Param("identity")
	if err := utils.ValidateIdentity(identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.deps.Dock.Pin(identity); err != nil {
		c.JSON(dockStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.deps.Dock.State())
}

// UnpinApp removes one identity from the dock. Unpinning an identity that
// is not pinned succeeds without effect.
func (h *Handlers) UnpinApp(c *gin.Context) {
	identity := c.Param("identity")
	if err := utils.ValidateIdentity(identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.deps.Dock.Unpin(identity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.deps.Dock.State())
}

// SetWidgets replaces the widget-host identifiers.
func (h *Handlers) SetWidgets(c *gin.Context) {
	var req types.WidgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.deps.Dock.SetWidgets(req.Widgets); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.deps.Dock.State())
}

// dockStatus maps dock errors onto HTTP statuses.
func dockStatus(err error) int {
	if errors.Is(err, dock.ErrDockFull) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
