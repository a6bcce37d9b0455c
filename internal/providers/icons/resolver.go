// Package icons resolves icon references from desktop entries and catalogs
// to readable image files.
//
// A reference is either an absolute path or a bare icon name looked up
// across configured icon directories with the usual image extensions.
package icons

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotFound is returned when a reference resolves to no readable file.
var ErrNotFound = errors.New("icon not found")

// iconExts are the extensions tried for bare icon names, in order.
var iconExts = []string{".png", ".svg", ".xpm"}

// Resolver maps icon references to file paths.
type Resolver struct {
	dirs []string
}

// NewResolver creates a resolver searching the given directories in order.
func NewResolver(dirs ...string) *Resolver {
	return &Resolver{dirs: dirs}
}

// Resolve turns an icon reference into an existing file path. Absolute
// references must point at a regular file; bare names are searched across
// the configured directories.
func (r *Resolver) Resolve(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	if filepath.IsAbs(ref) {
		if isFile(ref) {
			return ref, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}

	candidates := []string{ref}
	if filepath.Ext(ref) == "" {
		candidates = candidates[:0]
		for _, ext := range iconExts {
			candidates = append(candidates, ref+ext)
		}
	}

	for _, dir := range r.dirs {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if isFile(path) {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Load reads a resolved icon and sniffs its content type from the bytes.
func Load(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read icon: %w", err)
	}
	return data, mimetype.Detect(data).String(), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
