package paths

import (
	"path/filepath"
	"testing"
)

func TestStateDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/lib/xdg-state")
	if got, want := StateDir(), filepath.Join("/var/lib/xdg-state", "termdeck"); got != want {
		t.Errorf("StateDir = %q, want %q", got, want)
	}
}

func TestStateDirDefaultsToHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/tester")
	want := filepath.Join("/home/tester", ".local", "state", "termdeck")
	if got := StateDir(); got != want {
		t.Errorf("StateDir = %q, want %q", got, want)
	}
}

func TestDataDirsSplitsAndSkipsEmpty(t *testing.T) {
	t.Setenv("XDG_DATA_DIRS", "/opt/share::/usr/share")
	got := DataDirs()
	if len(got) != 2 || got[0] != "/opt/share" || got[1] != "/usr/share" {
		t.Errorf("DataDirs = %v", got)
	}
}

func TestDataDirsFallback(t *testing.T) {
	t.Setenv("XDG_DATA_DIRS", "")
	got := DataDirs()
	if len(got) != 2 || got[0] != "/usr/local/share" {
		t.Errorf("DataDirs fallback = %v", got)
	}
}

func TestApplicationDirs(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/home/tester/.data")
	t.Setenv("XDG_DATA_DIRS", "/usr/share")

	if got, want := UserApplicationDir(), filepath.Join("/home/tester/.data", "applications"); got != want {
		t.Errorf("UserApplicationDir = %q, want %q", got, want)
	}
	sys := SystemApplicationDirs()
	if len(sys) != 1 || sys[0] != filepath.Join("/usr/share", "applications") {
		t.Errorf("SystemApplicationDirs = %v", sys)
	}
}
