// Package dock persists the pinned dock and widget-host identifiers.
//
// Unlike session usage, dock state survives restarts: it is stored as JSON
// in the state directory and rewritten atomically on every mutation.
package dock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/termdeck/termdeck/internal/shared/types"
	"github.com/termdeck/termdeck/internal/shared/utils"
)

const (
	stateFile = "dock.json"
	// maxPins bounds the dock rail.
	maxPins = 8
)

// ErrDockFull is returned when pinning would exceed the dock bound.
var ErrDockFull = errors.New("dock is full")

// Manager owns the dock state. Mutations persist before returning.
type Manager struct {
	mu     sync.RWMutex
	path   string
	state  types.DockState
	notify func(types.DockState)
}

// NewManager loads dock state from dir, starting empty when the file is
// missing or unreadable.
func NewManager(dir string) *Manager {
	m := &Manager{
		path:  filepath.Join(dir, stateFile),
		state: types.DockState{Pins: []string{}, Widgets: []string{}},
	}
	m.load()
	return m
}

// WithNotify attaches the change callback, invoked with a copy of the new
// state after every persisted mutation.
func (m *Manager) WithNotify(fn func(types.DockState)) *Manager {
	m.notify = fn
	return m
}

// State returns a copy of the current dock state.
func (m *Manager) State() types.DockState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.copyState()
}

// Pin appends identity to the dock. Pinning an already pinned identity is
// a no-op; pinning past the bound returns ErrDockFull.
func (m *Manager) Pin(identity string) error {
	m.mu.Lock()
	for _, pinned := range m.state.Pins {
		if pinned == identity {
			m.mu.Unlock()
			return nil
		}
	}
	if len(m.state.Pins) >= maxPins {
		m.mu.Unlock()
		return ErrDockFull
	}
	m.state.Pins = append(m.state.Pins, identity)
	return m.persistAndNotify()
}

// Unpin removes identity from the dock. Unpinning an absent identity is a
// no-op.
func (m *Manager) Unpin(identity string) error {
	m.mu.Lock()
	kept := m.state.Pins[:0]
	found := false
	for _, pinned := range m.state.Pins {
		if pinned == identity {
			found = true
			continue
		}
		kept = append(kept, pinned)
	}
	if !found {
		m.mu.Unlock()
		return nil
	}
	m.state.Pins = kept
	return m.persistAndNotify()
}

// SetPins replaces the ordered pin list. Duplicates collapse to their
// first occurrence; more than maxPins distinct identities is an error.
func (m *Manager) SetPins(pins []string) error {
	deduped := dedupe(pins)
	if len(deduped) > maxPins {
		return fmt.Errorf("%w: %d pins exceed the %d slot dock", ErrDockFull, len(deduped), maxPins)
	}

	m.mu.Lock()
	m.state.Pins = deduped
	return m.persistAndNotify()
}

// SetWidgets replaces the widget-host identifiers.
func (m *Manager) SetWidgets(widgets []string) error {
	m.mu.Lock()
	m.state.Widgets = dedupe(widgets)
	return m.persistAndNotify()
}

// persistAndNotify writes the state, then releases the lock and fires the
// callback. Callers hold the write lock on entry.
func (m *Manager) persistAndNotify() error {
	err := m.persist()
	state := m.copyState()
	m.mu.Unlock()

	if err != nil {
		return err
	}
	if m.notify != nil {
		m.notify(state)
	}
	return nil
}

func (m *Manager) persist() error {
	data, err := sonic.Marshal(m.state)
	if err != nil {
		return fmt.Errorf("encode dock state: %w", err)
	}
	return utils.WriteFileAtomic(m.path, data, 0o644)
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	var state types.DockState
	if err := sonic.Unmarshal(data, &state); err != nil {
		return
	}
	if state.Pins == nil {
		state.Pins = []string{}
	}
	if state.Widgets == nil {
		state.Widgets = []string{}
	}
	if len(state.Pins) > maxPins {
		state.Pins = state.Pins[:maxPins]
	}
	m.state = state
}

func (m *Manager) copyState() types.DockState {
	out := types.DockState{
		Pins:    make([]string, len(m.state.Pins)),
		Widgets: make([]string, len(m.state.Widgets)),
	}
	copy(out.Pins, m.state.Pins)
	copy(out.Widgets, m.state.Widgets)
	return out
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
