// Package testutil provides shared helpers for daemon tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/infrastructure/config"
	"github.com/termdeck/termdeck/internal/server"
)

// DesktopEntry describes one .desktop file to seed into a scan directory.
// The file name carries the identity, matching desktop-file ID derivation.
type DesktopEntry struct {
	Identity   string
	Name       string
	Exec       string
	Icon       string
	Categories string
	NoDisplay  bool
}

// WriteDesktopEntry writes the entry into dir as <identity>.desktop.
func WriteDesktopEntry(t *testing.T, dir string, e DesktopEntry) {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("[Desktop Entry]\nType=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	if e.Exec != "" {
		fmt.Fprintf(&b, "Exec=%s\n", e.Exec)
	}
	if e.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", e.Icon)
	}
	if e.Categories != "" {
		fmt.Fprintf(&b, "Categories=%s\n", e.Categories)
	}
	if e.NoDisplay {
		b.WriteString("NoDisplay=true\n")
	}

	path := filepath.Join(dir, e.Identity+".desktop")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))
}

// SeedEntries writes a canonical catalog spanning the category taxonomy and
// returns the number of visible entries.
func SeedEntries(t *testing.T, dir string) int {
	t.Helper()

	entries := []DesktopEntry{
		{Identity: "com.slack", Name: "Slack", Exec: "/bin/true", Categories: "Network;Chat;"},
		{Identity: "com.spotify.client", Name: "Spotify", Exec: "/bin/true", Categories: "Audio;"},
		{Identity: "org.mozilla.firefox", Name: "Firefox", Exec: "/bin/true", Categories: "Network;WebBrowser;"},
		{Identity: "org.gnome.calculator", Name: "Calculator", Exec: "/bin/true", Categories: "Utility;"},
		{Identity: "io.itch.superluminal", Name: "Superluminal", Exec: "/bin/true", Categories: "Game;"},
		{Identity: "dev.acme.notes", Name: "Notes", Exec: "/bin/true", Categories: "Office;"},
		{Identity: "dev.acme.hidden", Name: "Hidden Tool", Exec: "/bin/true", NoDisplay: true},
	}
	for _, e := range entries {
		WriteDesktopEntry(t, dir, e)
	}
	return 6
}

// Daemon is a fully wired daemon under test, serving over an ephemeral
// httptest listener.
type Daemon struct {
	Config    *config.Config
	HTTP      *httptest.Server
	SystemDir string
	UserDir   string
	StateDir  string

	srv       *server.Server
	closeOnce sync.Once
}

// StartDaemon builds a daemon over fresh temp state and scan directories.
// mutate runs after the test defaults are applied, so tests can override any
// field, including pointing State.Dir at a directory from a previous run.
func StartDaemon(t *testing.T, mutate func(*config.Config)) *Daemon {
	t.Helper()

	cfg := config.Default()
	cfg.State.Dir = t.TempDir()
	systemDir := t.TempDir()
	userDir := t.TempDir()
	cfg.Registry.DesktopDirs = []string{systemDir}
	cfg.Registry.UserDesktopDirs = []string{userDir}
	cfg.Icons.Dirs = []string{systemDir}
	cfg.Logging.Level = "error"
	cfg.RateLimit.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}

	srv, err := server.New(cfg)
	require.NoError(t, err)

	d := &Daemon{
		Config:    cfg,
		HTTP:      httptest.NewServer(srv.Router()),
		SystemDir: systemDir,
		UserDir:   userDir,
		StateDir:  cfg.State.Dir,
		srv:       srv,
	}
	t.Cleanup(d.Close)
	return d
}

// Close shuts the daemon down. Safe to call more than once.
func (d *Daemon) Close() {
	d.closeOnce.Do(func() {
		d.HTTP.Close()
		d.srv.Close()
	})
}

// Do sends one JSON request and returns the status code and decoded body.
// A nil body sends no payload; a non-JSON response yields a nil map.
func (d *Daemon) Do(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, d.HTTP.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.HTTP.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

// Get is Do without a payload.
func (d *Daemon) Get(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()
	return d.Do(t, http.MethodGet, path, nil)
}

// Reload requests a catalog rescan and asserts it was accepted.
func (d *Daemon) Reload(t *testing.T) {
	t.Helper()
	status, _ := d.Do(t, http.MethodPost, "/drawer/reload", nil)
	require.Equal(t, http.StatusAccepted, status)
}

// WaitForCatalog polls the health endpoint until the committed catalog holds
// exactly want records.
func (d *Daemon) WaitForCatalog(t *testing.T, want int) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	var last float64 = -1
	for time.Now().Before(deadline) {
		_, body := d.Get(t, "/health")
		if catalog, ok := body["catalog"].(map[string]interface{}); ok {
			if size, ok := catalog["size"].(float64); ok {
				last = size
				if int(size) == want {
					return
				}
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("catalog never reached %d records, last size %v", want, last)
}
