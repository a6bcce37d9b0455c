package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/termdeck/termdeck/internal/shared/types"
)

// defaultLoadTimeout bounds one background load.
const defaultLoadTimeout = 30 * time.Second

// CommitTarget receives snapshots under the last-requested-wins
// discipline: BeginReload hands out a fresh generation and CommitSnapshot
// rejects results whose generation has been superseded.
type CommitTarget interface {
	BeginReload() uint64
	CommitSnapshot(generation uint64, records []types.AppRecord) bool
}

// Reloader runs catalog loads on background goroutines. A new request
// cancels the in-flight load; even a cancelled load that still completes
// cannot commit because its generation is stale.
type Reloader struct {
	loader  *Loader
	target  CommitTarget
	store   *Store
	timeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewReloader wires a loader to its commit target.
func NewReloader(loader *Loader, target CommitTarget) *Reloader {
	return &Reloader{
		loader:  loader,
		target:  target,
		timeout: defaultLoadTimeout,
	}
}

// WithStore attaches the warm-start snapshot store, refreshed after every
// committed load.
func (r *Reloader) WithStore(s *Store) *Reloader {
	r.store = s
	return r
}

// WithTimeout overrides the per-load timeout.
func (r *Reloader) WithTimeout(d time.Duration) *Reloader {
	if d > 0 {
		r.timeout = d
	}
	return r
}

// Reload requests an asynchronous catalog load and returns its generation.
// The snapshot commits only if no newer request was made in the meantime.
func (r *Reloader) Reload() uint64 {
	gen := r.target.BeginReload()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.cancel = cancel
	r.mu.Unlock()

	go func() {
		defer cancel()
		records := r.loader.Load(ctx)
		if !r.target.CommitSnapshot(gen, records) {
			return
		}
		if r.store != nil {
			if err := r.store.Write(records); err != nil {
				r.loader.degrade("cache")
			}
		}
	}()

	return gen
}

// Close cancels any in-flight load.
func (r *Reloader) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
