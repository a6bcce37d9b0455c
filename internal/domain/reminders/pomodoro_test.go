package reminders

import (
	"errors"
	"testing"
	"time"

	"github.com/termdeck/termdeck/internal/shared/types"
)

func waitPhase(t *testing.T, events <-chan types.PomodoroStatus, want types.PomodoroPhase) types.PomodoroStatus {
	t.Helper()
	select {
	case status := <-events:
		if status.Phase != want {
			t.Fatalf("phase = %s, want %s", status.Phase, want)
		}
		return status
	case <-time.After(2 * time.Second):
		t.Fatalf("no %s phase event", want)
		return types.PomodoroStatus{}
	}
}

func TestStartEntersWorkPhase(t *testing.T) {
	p := NewPomodoro()
	defer p.Close()

	status, err := p.Start(time.Hour, time.Minute)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if status.Phase != types.PomodoroWork || status.Cycle != 1 {
		t.Errorf("status = %+v, want work cycle 1", status)
	}
	if status.PhaseEnds == nil || !status.PhaseEnds.After(time.Now()) {
		t.Errorf("PhaseEnds = %v, want a future deadline", status.PhaseEnds)
	}
}

func TestStartRejectsBadDurations(t *testing.T) {
	p := NewPomodoro()
	defer p.Close()

	if _, err := p.Start(0, time.Minute); !errors.Is(err, ErrBadDuration) {
		t.Errorf("zero work error = %v, want ErrBadDuration", err)
	}
	if _, err := p.Start(time.Minute, -time.Second); !errors.Is(err, ErrBadDuration) {
		t.Errorf("negative break error = %v, want ErrBadDuration", err)
	}
}

func TestPhasesAlternate(t *testing.T) {
	events := make(chan types.PomodoroStatus, 8)
	p := NewPomodoro().WithPhaseChange(func(status types.PomodoroStatus) {
		events <- status
	})
	defer p.Close()

	if _, err := p.Start(30*time.Millisecond, 30*time.Millisecond); err != nil {
		t.Fatalf("Start: %v", err)
	}

	waitPhase(t, events, types.PomodoroWork)
	waitPhase(t, events, types.PomodoroBreak)
	second := waitPhase(t, events, types.PomodoroWork)
	if second.Cycle != 2 {
		t.Errorf("second work cycle = %d, want 2", second.Cycle)
	}
}

func TestStopReturnsIdle(t *testing.T) {
	events := make(chan types.PomodoroStatus, 8)
	p := NewPomodoro().WithPhaseChange(func(status types.PomodoroStatus) {
		events <- status
	})
	defer p.Close()

	if _, err := p.Start(time.Hour, time.Hour); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitPhase(t, events, types.PomodoroWork)

	status := p.Stop()
	if status.Phase != types.PomodoroIdle || status.Cycle != 0 || status.PhaseEnds != nil {
		t.Errorf("stopped status = %+v, want idle", status)
	}
	waitPhase(t, events, types.PomodoroIdle)

	// A second Stop is a no-op and must not emit.
	p.Stop()
	select {
	case status := <-events:
		t.Errorf("idle Stop emitted %+v", status)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRestartResetsCycle(t *testing.T) {
	events := make(chan types.PomodoroStatus, 8)
	p := NewPomodoro().WithPhaseChange(func(status types.PomodoroStatus) {
		events <- status
	})
	defer p.Close()

	if _, err := p.Start(20*time.Millisecond, 20*time.Millisecond); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitPhase(t, events, types.PomodoroWork)
	waitPhase(t, events, types.PomodoroBreak)

	status, err := p.Start(time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if status.Phase != types.PomodoroWork || status.Cycle != 1 {
		t.Errorf("restarted status = %+v, want work cycle 1", status)
	}
}

func TestStatusMatchesLifecycle(t *testing.T) {
	p := NewPomodoro()
	defer p.Close()

	if status := p.Status(); status.Phase != types.PomodoroIdle || status.PhaseEnds != nil {
		t.Errorf("initial status = %+v, want idle", status)
	}
	if _, err := p.Start(time.Hour, time.Hour); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if status := p.Status(); status.Phase != types.PomodoroWork {
		t.Errorf("running status = %+v, want work", status)
	}
	p.Stop()
	if status := p.Status(); status.Phase != types.PomodoroIdle {
		t.Errorf("stopped status = %+v, want idle", status)
	}
}
