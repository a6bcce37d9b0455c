package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// appName namespaces daemon state under the XDG base directories.
const appName = "termdeck"

// defaultDataDirs is the conventional fallback when $XDG_DATA_DIRS is unset.
var defaultDataDirs = []string{"/usr/local/share", "/usr/share"}

// StateDir returns the directory for persistent daemon state, honoring
// $XDG_STATE_HOME and falling back to ~/.local/state. When no home directory
// can be determined the system temp directory is used so the daemon still
// starts, at the cost of state surviving only until the next cleanup.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".local", "state", appName)
}

// DataHome returns the per-user data directory, honoring $XDG_DATA_HOME.
// Empty when no home directory can be determined.
func DataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

// DataDirs returns the system data directories from $XDG_DATA_DIRS in
// precedence order, with the conventional default when unset.
func DataDirs() []string {
	raw := os.Getenv("XDG_DATA_DIRS")
	if raw == "" {
		return defaultDataDirs
	}
	var dirs []string
	for _, dir := range strings.Split(raw, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return defaultDataDirs
	}
	return dirs
}

// UserApplicationDir returns the per-user desktop entry directory. Entries
// here shadow system ones with the same identity. Empty when no home
// directory can be determined.
func UserApplicationDir() string {
	base := DataHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "applications")
}

// SystemApplicationDirs returns the system desktop entry directories in
// precedence order.
func SystemApplicationDirs() []string {
	dirs := DataDirs()
	out := make([]string, len(dirs))
	for i, dir := range dirs {
		out[i] = filepath.Join(dir, "applications")
	}
	return out
}
