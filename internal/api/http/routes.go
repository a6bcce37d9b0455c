package http

import "github.com/gin-gonic/gin"

// Register wires every REST route onto the router. The Prometheus
// exposition and the WebSocket stream are wired by the server, which owns
// those handlers.
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/stats", h.Stats)

	drawer := router.Group("/drawer")
	{
		drawer.GET("", h.GetDrawer)
		drawer.GET("/categorized", h.GetCategorized)
		drawer.GET("/list", h.GetList)
		drawer.GET("/results", h.GetResults)
		drawer.GET("/categories", h.GetCategories)
		drawer.PUT("/query", h.SetQuery)
		drawer.PUT("/filter", h.SetFilter)
		drawer.POST("/reload", h.Reload)
		drawer.GET("/apps/:identity/icon", h.GetIcon)
	}

	router.POST("/apps/:identity/launch", h.LaunchApp)
	router.GET("/usage", h.GetUsage)

	dock := router.Group("/dock")
	{
		dock.GET("", h.GetDock)
		dock.PUT("/pins", h.SetPins)
		dock.POST("/pins/:identity", h.PinApp)
		dock.DELETE("/pins/:identity", h.UnpinApp)
		dock.PUT("/widgets", h.SetWidgets)
	}

	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
		reminders.DELETE("/:id", h.DeleteReminder)
	}

	pomodoro := router.Group("/pomodoro")
	{
		pomodoro.POST("/start", h.StartPomodoro)
		pomodoro.POST("/stop", h.StopPomodoro)
		pomodoro.GET("", h.GetPomodoro)
	}
}
