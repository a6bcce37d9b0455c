// Package drawer composes the observable app drawer state.
//
// The composer is the single owner of the committed catalog snapshot, the
// live query and category filter axes, and the observed session usage
// state. Every mutation recomputes the derived views inside the same
// critical section that changed the input, so a published view always
// reflects one consistent set of inputs and can never pair a stale query
// with a fresh catalog.
//
// Four views are derived: the categorized catalog, the filtered list, the
// ranked search results, and the per-category counts. Only views whose
// declared inputs changed are rebuilt. Consumers receive deep copies;
// committed records are never mutated in place.
//
// Snapshot commits carry a generation from BeginReload. A commit whose
// generation is not newer than the committed one is rejected, which makes
// reloads last-requested-wins even when background loads complete out of
// order.
package drawer
