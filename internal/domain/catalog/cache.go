package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"

	"github.com/termdeck/termdeck/internal/shared/types"
	"github.com/termdeck/termdeck/internal/shared/utils"
)

const (
	cacheFile    = "catalog.cache"
	cacheVersion = 1
)

// cacheEnvelope wraps the persisted snapshot with a format version so an
// incompatible cache is skipped instead of misread.
type cacheEnvelope struct {
	Version int               `json:"version"`
	SavedAt time.Time         `json:"saved_at"`
	Records []types.AppRecord `json:"records"`
}

// Store persists the latest committed snapshot for warm starts.
type Store struct {
	path string
}

// NewStore creates a store under dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, cacheFile)}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Write atomically replaces the cached snapshot.
func (s *Store) Write(records []types.AppRecord) error {
	payload, err := sonic.Marshal(cacheEnvelope{
		Version: cacheVersion,
		SavedAt: time.Now(),
		Records: records,
	})
	if err != nil {
		return fmt.Errorf("encode snapshot cache: %w", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return fmt.Errorf("compress snapshot cache: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress snapshot cache: %w", err)
	}

	return utils.WriteFileAtomic(s.path, buf.Bytes(), 0o644)
}

// Read returns the cached snapshot. Missing, corrupt, or incompatible
// caches return an error; callers start cold in that case.
func (s *Store) Read() ([]types.AppRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot cache: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot cache: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot cache: %w", err)
	}

	var env cacheEnvelope
	if err := sonic.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode snapshot cache: %w", err)
	}
	if env.Version != cacheVersion {
		return nil, fmt.Errorf("snapshot cache version %d not supported", env.Version)
	}
	return env.Records, nil
}
