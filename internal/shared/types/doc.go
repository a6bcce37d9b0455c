// Package types provides shared data structures for the termdeck backend.
//
// This package defines the currency types used across the drawer engine,
// providers, and API surface, keeping every component on the same shapes.
//
// Core Types:
//   - Entry: Raw launchable application reported by a registry provider
//   - AppRecord: One classified, usage-annotated catalog entry
//   - Category: Fixed drawer taxonomy
//   - SearchMatch: Scored match with highlight indices
//   - CatalogView: The four derived drawer projections
//   - DrawerState: Composite published drawer state
//
// Auxiliary Types:
//   - UsageState: Session launch recents, counts, and top-by-count
//   - DockState: Pinned identities and widget hosts
//   - Reminder, PomodoroStatus: Timer feature state
//
// Request Types:
//   - QueryRequest, FilterRequest, PinsRequest, ReminderRequest
//   - WSMessage: WebSocket client message
//
// Example Usage:
//
//	rec := types.AppRecord{
//	    Identity: "com.signal.app",
//	    Name:     "Signal",
//	    Category: types.CategorySocial,
//	}
package types
