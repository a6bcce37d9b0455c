package reminders

import (
	"errors"
	"sync"
	"time"

	"github.com/termdeck/termdeck/internal/shared/types"
)

// ErrBadDuration is returned when a Pomodoro phase duration is not positive.
var ErrBadDuration = errors.New("phase durations must be positive")

// Pomodoro alternates work and break phases until stopped. Cycle counts the
// current work round, starting at 1.
type Pomodoro struct {
	mu       sync.Mutex
	phase    types.PomodoroPhase
	cycle    int
	ends     time.Time
	work     time.Duration
	rest     time.Duration
	timer    *time.Timer
	onChange func(types.PomodoroStatus)
}

// NewPomodoro creates an idle Pomodoro timer.
func NewPomodoro() *Pomodoro {
	return &Pomodoro{
		phase: types.PomodoroIdle,
	}
}

// WithPhaseChange registers a callback invoked on every phase transition,
// outside the lock.
func (p *Pomodoro) WithPhaseChange(fn func(types.PomodoroStatus)) *Pomodoro {
	p.onChange = fn
	return p
}

// Start begins a run with the given phase durations. A running timer is
// restarted from the first work phase.
func (p *Pomodoro) Start(work, rest time.Duration) (types.PomodoroStatus, error) {
	if work <= 0 || rest <= 0 {
		return types.PomodoroStatus{}, ErrBadDuration
	}

	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.work = work
	p.rest = rest
	p.phase = types.PomodoroWork
	p.cycle = 1
	p.ends = time.Now().Add(work)
	p.timer = time.AfterFunc(work, p.advance)
	status := p.status()
	p.mu.Unlock()

	p.emit(status)
	return status, nil
}

// Stop returns the timer to idle. Stopping an idle timer is a no-op.
func (p *Pomodoro) Stop() types.PomodoroStatus {
	p.mu.Lock()
	if p.phase == types.PomodoroIdle {
		status := p.status()
		p.mu.Unlock()
		return status
	}
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.phase = types.PomodoroIdle
	p.cycle = 0
	p.ends = time.Time{}
	status := p.status()
	p.mu.Unlock()

	p.emit(status)
	return status
}

// Status returns the current phase, cycle, and phase deadline.
func (p *Pomodoro) Status() types.PomodoroStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status()
}

// Close stops the timer without emitting a phase change.
func (p *Pomodoro) Close() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.phase = types.PomodoroIdle
	p.cycle = 0
	p.ends = time.Time{}
	p.mu.Unlock()
}

// advance flips to the next phase when the current one expires.
func (p *Pomodoro) advance() {
	p.mu.Lock()
	switch p.phase {
	case types.PomodoroWork:
		p.phase = types.PomodoroBreak
		p.ends = time.Now().Add(p.rest)
		p.timer = time.AfterFunc(p.rest, p.advance)
	case types.PomodoroBreak:
		p.phase = types.PomodoroWork
		p.cycle++
		p.ends = time.Now().Add(p.work)
		p.timer = time.AfterFunc(p.work, p.advance)
	default:
		// Stopped between expiry and delivery.
		p.mu.Unlock()
		return
	}
	status := p.status()
	p.mu.Unlock()

	p.emit(status)
}

// status builds the published view. Callers hold the lock.
func (p *Pomodoro) status() types.PomodoroStatus {
	status := types.PomodoroStatus{
		Phase: p.phase,
		Cycle: p.cycle,
	}
	if p.phase != types.PomodoroIdle {
		ends := p.ends
		status.PhaseEnds = &ends
	}
	return status
}

func (p *Pomodoro) emit(status types.PomodoroStatus) {
	if p.onChange != nil {
		p.onChange(status)
	}
}
