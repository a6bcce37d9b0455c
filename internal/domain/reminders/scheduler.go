package reminders

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/termdeck/termdeck/internal/shared/id"
	"github.com/termdeck/termdeck/internal/shared/types"
)

var (
	// ErrNotFound is returned when cancelling an unknown reminder.
	ErrNotFound = errors.New("reminder not found")

	// ErrPastDue is returned when a reminder deadline is not in the future.
	ErrPastDue = errors.New("reminder deadline is in the past")
)

// Scheduler owns the set of pending reminders and their timers.
type Scheduler struct {
	mu      sync.Mutex
	entries map[string]*entry
	fired   func(types.Reminder)
	closed  bool
}

type entry struct {
	reminder types.Reminder
	timer    *time.Timer
}

// NewScheduler creates an empty reminder scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		entries: make(map[string]*entry),
	}
}

// WithFired registers a callback invoked when a reminder fires. The callback
// runs outside the scheduler lock on the timer goroutine.
func (s *Scheduler) WithFired(fn func(types.Reminder)) *Scheduler {
	s.fired = fn
	return s
}

// Create schedules a reminder for the given deadline and returns it with its
// assigned ID. Deadlines that are not strictly in the future are rejected.
func (s *Scheduler) Create(label string, at time.Time) (types.Reminder, error) {
	if !at.After(time.Now()) {
		return types.Reminder{}, ErrPastDue
	}

	reminder := types.Reminder{
		ID:        id.NewReminderID().String(),
		Label:     label,
		At:        at,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return types.Reminder{}, errors.New("scheduler is closed")
	}
	s.entries[reminder.ID] = &entry{
		reminder: reminder,
		timer: time.AfterFunc(time.Until(at), func() {
			s.fire(reminder.ID)
		}),
	}
	s.mu.Unlock()

	return reminder, nil
}

// List returns pending reminders ordered by deadline.
func (s *Scheduler) List() []types.Reminder {
	s.mu.Lock()
	out := make([]types.Reminder, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.reminder)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].At.Equal(out[j].At) {
			return out[i].At.Before(out[j].At)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Cancel removes a pending reminder and stops its timer.
func (s *Scheduler) Cancel(reminderID string) error {
	s.mu.Lock()
	e, ok := s.entries[reminderID]
	if ok {
		delete(s.entries, reminderID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	e.timer.Stop()
	return nil
}

// Close stops all pending timers. Reminders already firing may still deliver.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	entries := s.entries
	s.entries = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range entries {
		e.timer.Stop()
	}
}

// fire delivers one reminder. A reminder cancelled between timer expiry and
// delivery is dropped silently.
func (s *Scheduler) fire(reminderID string) {
	s.mu.Lock()
	e, ok := s.entries[reminderID]
	if ok {
		delete(s.entries, reminderID)
	}
	fn := s.fired
	s.mu.Unlock()

	if ok && fn != nil {
		fn(e.reminder)
	}
}
