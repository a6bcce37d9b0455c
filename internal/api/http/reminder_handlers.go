package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/termdeck/termdeck/internal/domain/reminders"
	"github.com/termdeck/termdeck/internal/shared/types"
	"github.com/termdeck/termdeck/internal/shared/utils"
)

// CreateReminder schedules a one-shot reminder. The deadline comes from
// exactly one of "at" (RFC 3339) or "in_seconds".
func (h *Handlers) CreateReminder(c *gin.Context) {
	var req types.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateLabel(req.Label); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	at, err := reminderDeadline(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.deps.Scheduler.Create(req.Label, at)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reminders.ErrPastDue) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// reminderDeadline resolves the requested deadline from the two mutually
// exclusive request forms.
func reminderDeadline(req types.ReminderRequest) (time.Time, error) {
	switch {
	case req.At != "" && req.InSeconds != 0:
		return time.Time{}, errors.New("set either at or in_seconds, not both")
	case req.At != "":
		at, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			return time.Time{}, errors.New("at must be an RFC 3339 timestamp")
		}
		return at, nil
	case req.InSeconds != 0:
		return time.Now().Add(time.Duration(req.InSeconds) * time.Second), nil
	default:
		return time.Time{}, errors.New("either at or in_seconds is required")
	}
}

// ListReminders lists pending reminders, soonest first.
func (h *Handlers) ListReminders(c *gin.Context) {
	list := h.deps.Scheduler.List()
	c.JSON(http.StatusOK, gin.H{
		"reminders": list,
		"count":     len(list),
	})
}

// DeleteReminder cancels a pending reminder.
func (h *Handlers) DeleteReminder(c *gin.Context) {
	id := c.Param("id")
	if err := utils.ValidateString(id, "id", 1, 64, true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.deps.Scheduler.Cancel(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reminders.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
	})
}

// StartPomodoro starts or restarts the Pomodoro timer. Omitted durations
// fall back to the configured defaults.
func (h *Handlers) StartPomodoro(c *gin.Context) {
	var req types.PomodoroRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	work := h.deps.PomodoroWork
	if req.WorkSeconds != 0 {
		work = time.Duration(req.WorkSeconds) * time.Second
	}
	rest := h.deps.PomodoroBreak
	if req.BreakSeconds != 0 {
		rest = time.Duration(req.BreakSeconds) * time.Second
	}

	status, err := h.deps.Pomodoro.Start(work, rest)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, reminders.ErrBadDuration) {
			code = http.StatusBadRequest
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// StopPomodoro stops the Pomodoro timer and returns the idle status.
func (h *Handlers) StopPomodoro(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Pomodoro.Stop())
}

// GetPomodoro returns the current Pomodoro status.
func (h *Handlers) GetPomodoro(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Pomodoro.Status())
}
