package icons

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngHeader is enough of a PNG signature for content-type sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func writeIcon(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}
	return path
}

func TestResolveAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := writeIcon(t, dir, "app.png", pngHeader)

	r := NewResolver()
	got, err := r.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != path {
		t.Errorf("Resolve = %q, want %q", got, path)
	}

	if _, err := r.Resolve(filepath.Join(dir, "missing.png")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing absolute error = %v, want ErrNotFound", err)
	}
}

func TestResolveBareNameAcrossDirs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeIcon(t, second, "editor.svg", []byte("<svg/>"))

	r := NewResolver(first, second)
	got, err := r.Resolve("editor")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolvePrefersEarlierDirAndExtension(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeIcon(t, first, "term.png", pngHeader)
	writeIcon(t, first, "term.svg", []byte("<svg/>"))
	writeIcon(t, second, "term.png", pngHeader)

	got, err := NewResolver(first, second).Resolve("term")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Errorf("Resolve = %q, want png from the first dir", got)
	}
}

func TestResolveNameWithExtension(t *testing.T) {
	dir := t.TempDir()
	want := writeIcon(t, dir, "app.xpm", []byte("/* XPM */"))

	got, err := NewResolver(dir).Resolve("app.xpm")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveEmptyAndUnknown(t *testing.T) {
	r := NewResolver(t.TempDir())
	if _, err := r.Resolve(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty ref error = %v, want ErrNotFound", err)
	}
	if _, err := r.Resolve("nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ref error = %v, want ErrNotFound", err)
	}
}

func TestLoadSniffsContentType(t *testing.T) {
	dir := t.TempDir()
	path := writeIcon(t, dir, "app.png", pngHeader)

	data, ctype, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) == 0 {
		t.Error("Load returned no bytes")
	}
	if !strings.HasPrefix(ctype, "image/png") {
		t.Errorf("content type = %q, want image/png", ctype)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "gone.png")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
