package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/termdeck/termdeck/internal/domain/classify"
	"github.com/termdeck/termdeck/internal/infrastructure/monitoring"
	"github.com/termdeck/termdeck/internal/shared/types"
)

// UsageWindow is the trailing window for the OS-reported usage signal.
const UsageWindow = 7 * 24 * time.Hour

// Registry enumerates launchable applications from the platform.
type Registry interface {
	Entries(ctx context.Context) ([]types.Entry, error)
}

// UsageSource reports per-identity last-use times inside a trailing window.
type UsageSource interface {
	LastUsed(ctx context.Context, window time.Duration) (map[string]time.Time, error)
}

// IconResolver validates a provider icon reference and returns the form to
// publish on the record.
type IconResolver interface {
	Resolve(ref string) (string, error)
}

// Loader builds catalog snapshots from the platform collaborators.
type Loader struct {
	registry   Registry
	usage      UsageSource
	icons      IconResolver
	classifier *classify.Classifier
	self       string
	metrics    *monitoring.Metrics
}

// NewLoader creates a loader over the required collaborators. self is the
// launcher's own identity and is excluded from every snapshot.
func NewLoader(registry Registry, classifier *classify.Classifier, self string) *Loader {
	return &Loader{
		registry:   registry,
		classifier: classifier,
		self:       self,
	}
}

// WithUsage attaches the optional usage source.
func (l *Loader) WithUsage(src UsageSource) *Loader {
	l.usage = src
	return l
}

// WithIcons attaches the optional icon resolver.
func (l *Loader) WithIcons(r IconResolver) *Loader {
	l.icons = r
	return l
}

// WithMetrics attaches a metrics manager.
func (l *Loader) WithMetrics(m *monitoring.Metrics) *Loader {
	l.metrics = m
	return l
}

// Load builds one immutable snapshot: enumerate, annotate with usage,
// classify, sort by display name. Provider failures degrade to empty data
// rather than surfacing; Load never returns an error.
func (l *Loader) Load(ctx context.Context) []types.AppRecord {
	start := time.Now()

	entries, err := l.registry.Entries(ctx)
	if err != nil {
		l.degrade("registry")
		l.observe(start, 0)
		return []types.AppRecord{}
	}

	lastUsed := l.loadUsage(ctx)
	cutoff := time.Now().Add(-UsageWindow)

	records := make([]types.AppRecord, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Identity == "" || entry.Identity == l.self {
			continue
		}
		// Identity is unique per snapshot; first occurrence wins.
		if _, dup := seen[entry.Identity]; dup {
			continue
		}
		seen[entry.Identity] = struct{}{}

		rec := types.AppRecord{
			Identity: entry.Identity,
			Name:     entry.Name,
			System:   entry.System,
			Exec:     entry.Exec,
		}
		if rec.Name == "" {
			rec.Name = entry.Identity
		}
		rec.Icon = l.resolveIcon(entry.Icon)
		if ts, ok := lastUsed[entry.Identity]; ok && ts.After(cutoff) {
			used := ts
			rec.LastUsed = &used
		}
		rec.Category = l.classifier.Classify(entry.Identity, classify.Meta{Game: entry.Game})

		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a := strings.ToLower(records[i].Name)
		b := strings.ToLower(records[j].Name)
		if a != b {
			return a < b
		}
		return records[i].Identity < records[j].Identity
	})

	l.observe(start, len(records))
	return records
}

// loadUsage queries the usage source. An absent provider and a failed or
// permission-denied query both mean "no usage data".
func (l *Loader) loadUsage(ctx context.Context) map[string]time.Time {
	if l.usage == nil {
		return map[string]time.Time{}
	}
	lastUsed, err := l.usage.LastUsed(ctx, UsageWindow)
	if err != nil {
		l.degrade("usage")
		return map[string]time.Time{}
	}
	return lastUsed
}

// resolveIcon runs the reference through the resolver when one is attached.
// Failures yield an empty icon so a single bad reference never aborts a
// load.
func (l *Loader) resolveIcon(ref string) string {
	if ref == "" {
		return ""
	}
	if l.icons == nil {
		return ref
	}
	resolved, err := l.icons.Resolve(ref)
	if err != nil {
		l.degrade("icon")
		return ""
	}
	return resolved
}

func (l *Loader) degrade(source string) {
	if l.metrics != nil {
		l.metrics.RecordCatalogDegrade(source)
	}
}

func (l *Loader) observe(start time.Time, size int) {
	if l.metrics != nil {
		l.metrics.RecordCatalogLoad(time.Since(start), size)
	}
}
