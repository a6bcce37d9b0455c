package desktopfiles

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/termdeck/termdeck/internal/shared/types"
)

// entryGlob selects desktop entries at any depth below an application dir.
const entryGlob = "**/*.desktop"

// Dir is one application directory to scan. System marks entries found under
// it as system applications.
type Dir struct {
	Path   string
	System bool
}

// Scanner reads desktop entries from a fixed list of directories.
type Scanner struct {
	dirs []Dir
}

// NewScanner creates a scanner over the given directories, in precedence
// order.
func NewScanner(dirs ...Dir) *Scanner {
	return &Scanner{dirs: dirs}
}

// Entries walks every configured directory and returns the discovered
// applications sorted by identity. Missing directories are skipped; the only
// error is context cancellation.
func (s *Scanner) Entries(ctx context.Context) ([]types.Entry, error) {
	var (
		mu      sync.Mutex
		entries []types.Entry
		seen    = make(map[string]bool)
	)

	for _, dir := range s.dirs {
		if _, err := os.Stat(dir.Path); err != nil {
			continue
		}

		conf := fastwalk.Config{Follow: false}
		err := fastwalk.Walk(&conf, dir.Path, func(p string, d os.DirEntry, err error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err != nil || d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(dir.Path, p)
			if err != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)
			if ok, _ := doublestar.Match(entryGlob, rel); !ok {
				return nil
			}

			entry, ok := readEntry(p, fileID(rel), dir.System)
			if !ok {
				return nil
			}

			mu.Lock()
			if !seen[entry.Identity] {
				seen[entry.Identity] = true
				entries = append(entries, entry)
			}
			mu.Unlock()
			return nil
		})
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Identity < entries[j].Identity
	})
	return entries, nil
}

// fileID derives the desktop-file ID from a slash-relative path.
func fileID(rel string) string {
	rel = strings.TrimSuffix(rel, ".desktop")
	return strings.ReplaceAll(rel, "/", "-")
}

// readEntry parses one desktop file. ok is false when the file is unreadable,
// not an application, or marked hidden.
func readEntry(path, identity string, system bool) (types.Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Entry{}, false
	}

	parsed := parseDesktopEntry(string(data))
	if parsed.typ != "Application" || parsed.noDisplay || parsed.hidden {
		return types.Entry{}, false
	}

	return types.Entry{
		Identity: identity,
		Name:     parsed.name,
		Icon:     parsed.icon,
		Exec:     cleanExec(parsed.exec),
		System:   system,
		Game:     parsed.hasCategory("Game"),
	}, true
}

type desktopEntry struct {
	typ        string
	name       string
	icon       string
	exec       string
	categories string
	noDisplay  bool
	hidden     bool
}

func (e desktopEntry) hasCategory(want string) bool {
	for _, c := range strings.Split(e.categories, ";") {
		if strings.TrimSpace(c) == want {
			return true
		}
	}
	return false
}

// parseDesktopEntry reads the [Desktop Entry] group of an INI-style desktop
// file. Localized keys (Name[xx]) and other groups are ignored.
func parseDesktopEntry(content string) desktopEntry {
	var (
		entry   desktopEntry
		inGroup bool
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inGroup = line == "[Desktop Entry]"
			continue
		}
		if !inGroup {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Type":
			entry.typ = value
		case "Name":
			entry.name = value
		case "Icon":
			entry.icon = value
		case "Exec":
			entry.exec = value
		case "Categories":
			entry.categories = value
		case "NoDisplay":
			entry.noDisplay = value == "true"
		case "Hidden":
			entry.hidden = value == "true"
		}
	}
	return entry
}

// cleanExec strips freedesktop field codes (%f, %U, ...) from an Exec line.
func cleanExec(exec string) string {
	fields := strings.Fields(exec)
	kept := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(f, "%") && f != "%%" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
