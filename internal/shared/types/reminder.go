package types

import "time"

// Reminder is one scheduled one-shot reminder.
type Reminder struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"created_at"`
}

// PomodoroPhase is the current phase of a Pomodoro run.
type PomodoroPhase string

const (
	PomodoroIdle  PomodoroPhase = "idle"
	PomodoroWork  PomodoroPhase = "work"
	PomodoroBreak PomodoroPhase = "break"
)

// PomodoroStatus is the published state of the Pomodoro timer.
type PomodoroStatus struct {
	Phase     PomodoroPhase `json:"phase"`
	Cycle     int           `json:"cycle"`
	PhaseEnds *time.Time    `json:"phase_ends,omitempty"`
}
