package drawer

import (
	"sort"
	"strings"
	"time"

	"github.com/termdeck/termdeck/internal/domain/fuzzy"
	"github.com/termdeck/termdeck/internal/shared/types"
)

// recompute rebuilds the views whose declared inputs appear in the change
// mask. Session launch counts live on published records, so a usage change
// rebuilds every record-bearing view. Callers hold the write lock.
func (c *Composer) recompute(change types.Change) {
	if change.Has(types.ChangeCatalog) {
		c.recount()
	}
	if change.Has(types.ChangeCatalog | types.ChangeUsage) {
		c.rebuildCategorized()
	}
	if change.Has(types.ChangeCatalog | types.ChangeQuery | types.ChangeFilter | types.ChangeUsage) {
		c.rebuildFiltered()
	}
	if change.Has(types.ChangeCatalog | types.ChangeQuery | types.ChangeUsage) {
		c.rebuildResults()
	}
}

// blankQuery reports whether the query axis is blank. Blankness selects the
// unscored list mode; scoring itself always uses the raw query.
func (c *Composer) blankQuery() bool {
	return strings.TrimSpace(c.query) == ""
}

// materialize returns a copy of rec with its session launch count applied.
func (c *Composer) materialize(rec types.AppRecord) types.AppRecord {
	rec.LaunchCount = c.usage.Counts[rec.Identity]
	return rec
}

// recount rebuilds the category counts: a complete map over the taxonomy,
// zeros included, independent of the query and filter axes.
func (c *Composer) recount() {
	counts := make(map[types.Category]int, len(types.Categories()))
	for _, cat := range types.Categories() {
		counts[cat] = 0
	}
	for _, rec := range c.records {
		counts[rec.Category]++
	}
	c.counts = counts
}

// rebuildCategorized groups the catalog by cached category in the fixed
// display order. Records are already in alphabetical base order, so each
// group inherits it.
func (c *Composer) rebuildCategorized() {
	groups := make([]types.CategoryGroup, 0, len(types.Categories()))
	for _, cat := range types.Categories() {
		group := types.CategoryGroup{
			Category: cat,
			Label:    cat.Label(),
			Token:    cat.Token(),
			Apps:     []types.AppRecord{},
		}
		for _, rec := range c.records {
			if rec.Category == cat {
				group.Apps = append(group.Apps, c.materialize(rec))
			}
		}
		groups = append(groups, group)
	}
	c.categorized = groups
}

// rebuildFiltered applies the category restriction first, then the query:
// a non-blank query replaces the list with name-matching candidates sorted
// by ascending score, a blank query keeps catalog order unscored.
func (c *Composer) rebuildFiltered() {
	base := c.records
	if c.filter != nil {
		subset := make([]types.AppRecord, 0, len(base))
		for _, rec := range base {
			if rec.Category == *c.filter {
				subset = append(subset, rec)
			}
		}
		base = subset
	}

	if c.blankQuery() {
		out := make([]types.AppRecord, 0, len(base))
		for _, rec := range base {
			out = append(out, c.materialize(rec))
		}
		c.filtered = out
		return
	}

	type scored struct {
		rec   types.AppRecord
		score int
	}
	matches := make([]scored, 0, len(base))
	for _, rec := range base {
		res := fuzzy.Score(rec.Name, c.query)
		if !res.Matched() {
			continue
		}
		matches = append(matches, scored{rec: rec, score: res.Score})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	out := make([]types.AppRecord, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.materialize(m.rec))
	}
	c.filtered = out
}

// rebuildResults scores both display name and identity per candidate,
// keeps the better score, and sources highlight indices from the winning
// field with ties preferring the name. Candidates matching neither field
// are dropped. The category filter does not apply here: ranked results are
// the global search overlay.
func (c *Composer) rebuildResults() {
	if c.blankQuery() {
		c.results = []types.SearchMatch{}
		return
	}
	start := time.Now()

	results := make([]types.SearchMatch, 0, len(c.records))
	for _, rec := range c.records {
		nameRes := fuzzy.Score(rec.Name, c.query)
		identityRes := fuzzy.Score(rec.Identity, c.query)
		if !nameRes.Matched() && !identityRes.Matched() {
			continue
		}

		best := nameRes
		field := types.MatchFieldName
		if identityRes.Score < nameRes.Score {
			best = identityRes
			field = types.MatchFieldIdentity
		}
		results = append(results, types.SearchMatch{
			App:     c.materialize(rec),
			Score:   best.Score,
			Field:   field,
			Indices: best.Indices,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	c.results = results

	if c.metrics != nil {
		c.metrics.RecordSearch(time.Since(start))
	}
}
