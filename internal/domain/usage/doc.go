// Package usage tracks session-local launch history for the drawer.
//
// The tracker is deliberately not persisted: it restarts empty with the
// process, which keeps it distinct from the OS-reported usage signal the
// catalog loader captures. It maintains a bounded most-recent-first list,
// an unbounded launch count map, and an eagerly recomputed top-by-count
// view.
package usage
