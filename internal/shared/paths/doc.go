// Package paths resolves the XDG base directories the daemon reads and writes.
//
// Desktop entries, icon files, and persistent state all live in well-known
// locations defined by the XDG Base Directory and Desktop Entry conventions.
// This package is the single place that knows those locations, so the scanner,
// the state store, and configuration all derive them the same way.
//
// # Directory Layout
//
//	$XDG_STATE_HOME/termdeck/       (dock pins, widgets, catalog cache)
//	  └── ~/.local/state/termdeck/  when unset
//	$XDG_DATA_HOME/applications/    (per-user desktop entries)
//	  └── ~/.local/share/applications/  when unset
//	$XDG_DATA_DIRS/*/applications/  (system desktop entries)
//	  └── /usr/local/share, /usr/share  when unset
//
// # Usage
//
//	import "github.com/termdeck/termdeck/internal/shared/paths"
//
//	stateDir := paths.StateDir()
//	userApps := paths.UserApplicationDir()
//	for _, dir := range paths.SystemApplicationDirs() {
//	    // scan dir
//	}
package paths
