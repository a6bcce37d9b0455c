package types

// MatchField names which record field a search match was scored against.
type MatchField string

const (
	MatchFieldName     MatchField = "name"
	MatchFieldIdentity MatchField = "identity"
)

// SearchMatch is one scored search result. Lower scores are better; a
// contiguous substring match scores 0. Indices address runes of the matched
// field and exist solely for highlight rendering. Matches are derived per
// query evaluation and never persisted.
type SearchMatch struct {
	App     AppRecord  `json:"app"`
	Score   int        `json:"score"`
	Field   MatchField `json:"field"`
	Indices []int      `json:"indices"`
}

// CategoryGroup is one categorized-view bucket, ordered by the fixed
// category display order with records alphabetical inside.
type CategoryGroup struct {
	Category Category    `json:"category"`
	Label    string      `json:"label"`
	Token    string      `json:"token"`
	Apps     []AppRecord `json:"apps"`
}

// CatalogView bundles the four derived drawer projections. The result
// composer owns and publishes these exclusively; every projection in one
// view was computed from the same committed inputs.
type CatalogView struct {
	Categorized []CategoryGroup  `json:"categorized"`
	Filtered    []AppRecord      `json:"filtered"`
	Results     []SearchMatch    `json:"results"`
	Counts      map[Category]int `json:"counts"`
}

// DrawerState is the composite state published to clients: the current
// views plus the live input axes and load progress.
type DrawerState struct {
	Generation uint64      `json:"generation"`
	Loading    bool        `json:"loading"`
	Cached     bool        `json:"cached"` // Snapshot came from the warm-start cache
	Query      string      `json:"query"`
	Filter     *Category   `json:"filter,omitempty"`
	View       CatalogView `json:"view"`
	Usage      UsageState  `json:"usage"`
}
