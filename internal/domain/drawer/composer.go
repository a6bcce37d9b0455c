package drawer

import (
	"sync"

	"github.com/termdeck/termdeck/internal/infrastructure/monitoring"
	"github.com/termdeck/termdeck/internal/shared/types"
)

// Composer owns the drawer's observable state and its derived views.
type Composer struct {
	mu sync.RWMutex

	// Input axes. records holds the committed snapshot in canonical
	// catalog order; usage is the last observed tracker state.
	records []types.AppRecord
	query   string
	filter  *types.Category
	usage   types.UsageState

	// Reload bookkeeping. loading is derived: requested > committed.
	requested uint64
	committed uint64
	cached    bool

	// Derived views, rebuilt on input change under mu.
	categorized []types.CategoryGroup
	filtered    []types.AppRecord
	results     []types.SearchMatch
	counts      map[types.Category]int

	notify  func(types.Change)
	metrics *monitoring.Metrics
}

// NewComposer returns a composer with an empty snapshot. All views start
// empty and report loading until the first commit.
func NewComposer() *Composer {
	c := &Composer{
		usage: types.UsageState{Counts: map[string]int{}},
	}
	c.recompute(types.ChangeCatalog)
	return c
}

// WithNotify attaches the change callback. It runs after the mutation's
// critical section with the mask of changed axes.
func (c *Composer) WithNotify(fn func(types.Change)) *Composer {
	c.notify = fn
	return c
}

// WithMetrics attaches a metrics manager.
func (c *Composer) WithMetrics(m *monitoring.Metrics) *Composer {
	c.metrics = m
	return c
}

// BeginReload allocates the next reload generation.
func (c *Composer) BeginReload() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested++
	return c.requested
}

// CommitSnapshot installs a loaded snapshot. Commits with a generation not
// newer than the committed one are rejected, so out-of-order completions
// cannot clobber a newer snapshot. Returns whether the commit was applied.
func (c *Composer) CommitSnapshot(generation uint64, records []types.AppRecord) bool {
	c.mu.Lock()
	if generation <= c.committed {
		c.mu.Unlock()
		return false
	}
	c.committed = generation
	c.cached = false
	c.records = copyRecords(records)
	c.recompute(types.ChangeCatalog)
	c.observeCatalog()
	c.mu.Unlock()

	c.emit(types.ChangeCatalog)
	return true
}

// WarmStart installs a cached snapshot before any live load has committed.
// It is a no-op once a real generation exists.
func (c *Composer) WarmStart(records []types.AppRecord) bool {
	c.mu.Lock()
	if c.committed > 0 {
		c.mu.Unlock()
		return false
	}
	c.cached = true
	c.records = copyRecords(records)
	c.recompute(types.ChangeCatalog)
	c.observeCatalog()
	c.mu.Unlock()

	c.emit(types.ChangeCatalog)
	return true
}

// SetQuery replaces the live query axis.
func (c *Composer) SetQuery(query string) {
	c.mu.Lock()
	if c.query == query {
		c.mu.Unlock()
		return
	}
	c.query = query
	c.recompute(types.ChangeQuery)
	c.mu.Unlock()

	c.emit(types.ChangeQuery)
}

// SetFilter replaces the live category filter axis; nil clears it.
func (c *Composer) SetFilter(filter *types.Category) {
	c.mu.Lock()
	if sameFilter(c.filter, filter) {
		c.mu.Unlock()
		return
	}
	if filter == nil {
		c.filter = nil
	} else {
		f := *filter
		c.filter = &f
	}
	c.recompute(types.ChangeFilter)
	c.mu.Unlock()

	c.emit(types.ChangeFilter)
}

// SetUsage replaces the observed usage state. Session launch counts are
// part of the published records, so record-bearing views are rebuilt.
func (c *Composer) SetUsage(state types.UsageState) {
	c.mu.Lock()
	c.usage = copyUsage(state)
	c.recompute(types.ChangeUsage)
	c.mu.Unlock()

	c.emit(types.ChangeUsage)
}

// State returns a deep copy of the composite drawer state.
func (c *Composer) State() types.DrawerState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := types.DrawerState{
		Generation: c.committed,
		Loading:    c.requested > c.committed,
		Cached:     c.cached,
		Query:      c.query,
		View:       c.copyView(),
		Usage:      copyUsage(c.usage),
	}
	if c.filter != nil {
		f := *c.filter
		state.Filter = &f
	}
	return state
}

// View returns a deep copy of the four derived projections.
func (c *Composer) View() types.CatalogView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyView()
}

// Record looks up one committed record by identity, with its session launch
// count applied. The second return reports whether the identity is known to
// the current snapshot.
func (c *Composer) Record(identity string) (types.AppRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, rec := range c.records {
		if rec.Identity == identity {
			return c.materialize(rec), true
		}
	}
	return types.AppRecord{}, false
}

func (c *Composer) emit(change types.Change) {
	if c.notify != nil {
		c.notify(change)
	}
}

func (c *Composer) observeCatalog() {
	if c.metrics != nil {
		c.metrics.SetCatalogSize(len(c.records))
	}
}

func sameFilter(a, b *types.Category) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyRecords(records []types.AppRecord) []types.AppRecord {
	out := make([]types.AppRecord, len(records))
	copy(out, records)
	return out
}

func copyUsage(state types.UsageState) types.UsageState {
	out := types.UsageState{
		Recents: make([]string, len(state.Recents)),
		Top:     make([]string, len(state.Top)),
		Counts:  make(map[string]int, len(state.Counts)),
	}
	copy(out.Recents, state.Recents)
	copy(out.Top, state.Top)
	for id, n := range state.Counts {
		out.Counts[id] = n
	}
	return out
}

func (c *Composer) copyView() types.CatalogView {
	view := types.CatalogView{
		Categorized: make([]types.CategoryGroup, len(c.categorized)),
		Filtered:    copyRecords(c.filtered),
		Results:     make([]types.SearchMatch, len(c.results)),
		Counts:      make(map[types.Category]int, len(c.counts)),
	}
	for i, group := range c.categorized {
		copied := group
		copied.Apps = copyRecords(group.Apps)
		view.Categorized[i] = copied
	}
	for i, match := range c.results {
		copied := match
		copied.Indices = make([]int, len(match.Indices))
		copy(copied.Indices, match.Indices)
		view.Results[i] = copied
	}
	for cat, n := range c.counts {
		view.Counts[cat] = n
	}
	return view
}
