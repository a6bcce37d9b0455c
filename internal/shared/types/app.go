package types

import "time"

// Entry is one raw launchable application as reported by a registry provider,
// before classification and usage annotation.
type Entry struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Exec     string `json:"exec,omitempty"`
	System   bool   `json:"system"`
	Game     bool   `json:"game"` // Native platform game signal
}

// AppRecord represents one installed, launchable application in a catalog
// snapshot. Records are immutable once published; a reload replaces the
// snapshot wholesale instead of mutating records in place.
type AppRecord struct {
	Identity    string     `json:"identity"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon,omitempty"` // Empty means no icon; clients render a fallback glyph
	System      bool       `json:"system"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
	LaunchCount int        `json:"launch_count"`
	Category    Category   `json:"category"`

	// Exec is the dispatch command for desktop-sourced entries. It is a
	// collaborator detail, not part of the published view contract.
	Exec string `json:"-"`
}

// UsageState is the session-local launch history published by the usage
// tracker. It is reset on process restart, unlike the OS-reported usage
// signal captured at load time.
type UsageState struct {
	Recents []string       `json:"recents"` // Most recent first, bounded
	Top     []string       `json:"top"`     // Highest launch count first, bounded
	Counts  map[string]int `json:"counts"`
}

// DockState holds the pinned dock and widget-host identifiers.
type DockState struct {
	Pins    []string `json:"pins"`
	Widgets []string `json:"widgets"`
}
