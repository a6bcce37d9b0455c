package types

// QueryRequest sets the live search query axis.
type QueryRequest struct {
	Query string `json:"query"`
}

// FilterRequest sets the live category filter axis. A nil category clears
// the filter.
type FilterRequest struct {
	Category *Category `json:"category"`
}

// PinsRequest replaces the ordered pinned-dock identities.
type PinsRequest struct {
	Pins []string `json:"pins" binding:"required"`
}

// WidgetsRequest replaces the widget-host identifiers.
type WidgetsRequest struct {
	Widgets []string `json:"widgets" binding:"required"`
}

// ReminderRequest schedules a one-shot reminder. Exactly one of At
// (RFC 3339) or InSeconds must be set.
type ReminderRequest struct {
	Label     string `json:"label" binding:"required"`
	At        string `json:"at,omitempty"`
	InSeconds int    `json:"in_seconds,omitempty"`
}

// PomodoroRequest starts a Pomodoro run. Zero durations fall back to the
// configured defaults.
type PomodoroRequest struct {
	WorkSeconds  int `json:"work_seconds,omitempty"`
	BreakSeconds int `json:"break_seconds,omitempty"`
}

// WSMessage is a client-to-server WebSocket message.
type WSMessage struct {
	Type   string   `json:"type"`
	Topics []string `json:"topics,omitempty"`
}
