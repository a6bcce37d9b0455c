package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/termdeck/termdeck/internal/providers/icons"
	"github.com/termdeck/termdeck/internal/shared/types"
	"github.com/termdeck/termdeck/internal/shared/utils"
)

// GetDrawer returns the composite drawer state.
func (h *Handlers) GetDrawer(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Composer.State())
}

// GetCategorized returns the category-grouped view.
func (h *Handlers) GetCategorized(c *gin.Context) {
	view := h.deps.Composer.View()
	c.JSON(http.StatusOK, gin.H{
		"categorized": view.Categorized,
		"counts":      view.Counts,
	})
}

// GetList returns the filtered flat list view.
func (h *Handlers) GetList(c *gin.Context) {
	view := h.deps.Composer.View()
	c.JSON(http.StatusOK, gin.H{
		"apps":  view.Filtered,
		"count": len(view.Filtered),
	})
}

// GetResults returns the ranked search results view.
func (h *Handlers) GetResults(c *gin.Context) {
	view := h.deps.Composer.View()
	c.JSON(http.StatusOK, gin.H{
		"results": view.Results,
		"count":   len(view.Results),
	})
}

// GetCategories returns the fixed taxonomy with live per-category counts.
func (h *Handlers) GetCategories(c *gin.Context) {
	view := h.deps.Composer.View()
	categories := make([]gin.H, 0, len(types.Categories()))
	for _, cat := range types.Categories() {
		categories = append(categories, gin.H{
			"category": cat,
			"label":    cat.Label(),
			"token":    cat.Token(),
			"count":    view.Counts[cat],
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// SetQuery sets the live search query axis.
func (h *Handlers) SetQuery(c *gin.Context) {
	var req types.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.deps.Composer.SetQuery(req.Query)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   req.Query,
	})
}

// SetFilter sets the live category filter axis. A null category clears it.
func (h *Handlers) SetFilter(c *gin.Context) {
	var req types.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	h.deps.Composer.SetFilter(req.Category)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"filter":  req.Category,
	})
}

// Reload requests an asynchronous catalog reload.
func (h *Handlers) Reload(c *gin.Context) {
	generation := h.deps.Reloader.Reload()
	c.JSON(http.StatusAccepted, gin.H{
		"accepted":   true,
		"generation": generation,
	})
}

// GetIcon serves an app's icon bytes with a sniffed content type.
func (h *Handlers) GetIcon(c *gin.Context) {
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
	if rec.Icon == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "app has no icon"})
		return
	}

	data, contentType, err := icons.Load(rec.Icon)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "icon not readable"})
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
