// Package catalog loads immutable snapshots of the launchable application
// catalog.
//
// The loader enumerates entries from a registry provider, annotates them
// with the OS usage signal over a trailing seven day window, classifies
// each record once, and emits the records sorted by display name. Every
// provider failure degrades: a failed registry query yields an empty
// snapshot, a failed usage query yields records without timestamps, and a
// failed icon resolution yields a record without an icon. Load never
// returns an error.
//
// The reloader runs loads on background goroutines and enforces
// last-requested-wins: every request takes a fresh generation and a commit
// target rejects results whose generation has been superseded, so an
// out-of-order completion can never clobber a newer snapshot.
//
// The store persists the latest committed snapshot as gzip-compressed JSON
// so a restart can present a warm catalog before the first live load
// finishes.
package catalog
