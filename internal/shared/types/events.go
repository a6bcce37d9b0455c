package types

// Change is a bitmask naming which drawer input axes changed in one commit.
type Change uint8

const (
	ChangeCatalog Change = 1 << iota
	ChangeQuery
	ChangeFilter
	ChangeUsage
)

// Has reports whether the mask includes c.
func (m Change) Has(c Change) bool {
	return m&c != 0
}

// Names lists the changed axes for event payloads, in a stable order.
func (m Change) Names() []string {
	var names []string
	if m.Has(ChangeCatalog) {
		names = append(names, "catalog")
	}
	if m.Has(ChangeQuery) {
		names = append(names, "query")
	}
	if m.Has(ChangeFilter) {
		names = append(names, "filter")
	}
	if m.Has(ChangeUsage) {
		names = append(names, "usage")
	}
	return names
}

// Stream event types pushed to WebSocket subscribers.
const (
	EventDrawerUpdate  = "drawer.update"
	EventUsageUpdate   = "usage.update"
	EventDockUpdate    = "dock.update"
	EventReminderFired = "reminder.fired"
	EventPomodoroPhase = "pomodoro.phase"
)

// Event is one server-to-client stream message.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}
