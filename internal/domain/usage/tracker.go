package usage

import (
	"sort"
	"sync"

	"github.com/termdeck/termdeck/internal/shared/types"
)

const (
	// maxRecents bounds the most-recent-first list.
	maxRecents = 8
	// topSize bounds the top-by-count view.
	topSize = 4
)

// Tracker owns the session launch history. All mutation goes through
// RecordLaunch; consumers observe the state via copied snapshots.
type Tracker struct {
	mu      sync.RWMutex
	recents []string
	counts  map[string]int
	top     []string
	seq     map[string]int // last launch sequence per identity, for top ordering
	lastSeq int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		counts: make(map[string]int),
		seq:    make(map[string]int),
	}
}

// RecordLaunch notes one launch of identity: the identity moves to the
// front of the recents list without duplicating, its count increments, and
// the top-by-count view is recomputed immediately.
func (t *Tracker) RecordLaunch(identity string) {
	if identity == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[identity]++
	t.lastSeq++
	t.seq[identity] = t.lastSeq

	recents := make([]string, 0, len(t.recents)+1)
	recents = append(recents, identity)
	for _, id := range t.recents {
		if id != identity {
			recents = append(recents, id)
		}
	}
	if len(recents) > maxRecents {
		recents = recents[:maxRecents]
	}
	t.recents = recents

	t.recomputeTop()
}

// recomputeTop orders identities by count, breaking ties by most recent
// launch. Sequence stamps are unique so the order is total.
func (t *Tracker) recomputeTop() {
	ids := make([]string, 0, len(t.counts))
	for id := range t.counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if t.counts[ids[i]] != t.counts[ids[j]] {
			return t.counts[ids[i]] > t.counts[ids[j]]
		}
		return t.seq[ids[i]] > t.seq[ids[j]]
	})
	if len(ids) > topSize {
		ids = ids[:topSize]
	}
	t.top = ids
}

// Count returns the session launch count for identity.
func (t *Tracker) Count(identity string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[identity]
}

// State returns a copy of the current usage state.
func (t *Tracker) State() types.UsageState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state := types.UsageState{
		Recents: make([]string, len(t.recents)),
		Top:     make([]string, len(t.top)),
		Counts:  make(map[string]int, len(t.counts)),
	}
	copy(state.Recents, t.recents)
	copy(state.Top, t.top)
	for id, n := range t.counts {
		state.Counts[id] = n
	}
	return state
}
