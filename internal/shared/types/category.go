package types

// Category classifies an application into the drawer's fixed taxonomy.
// CategoryOther is the fallback and is always a valid value.
type Category string

const (
	CategorySocial    Category = "social"
	CategoryWork      Category = "work"
	CategoryMedia     Category = "media"
	CategoryGames     Category = "games"
	CategoryUtilities Category = "utilities"
	CategorySystem    Category = "system"
	CategoryOther     Category = "other"
)

// categoryOrder is the fixed order categories appear in drawer views.
var categoryOrder = []Category{
	CategorySocial,
	CategoryWork,
	CategoryMedia,
	CategoryGames,
	CategoryUtilities,
	CategorySystem,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategorySocial:    "Social",
	CategoryWork:      "Work",
	CategoryMedia:     "Media",
	CategoryGames:     "Games",
	CategoryUtilities: "Utilities",
	CategorySystem:    "System",
	CategoryOther:     "Other",
}

// Categories returns every category in the fixed drawer display order.
// The returned slice is a copy and safe to modify.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is a member of the taxonomy.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable category name, or the raw value for
// unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Token returns the path-like display token rendered in the drawer header,
// e.g. "~/social".
func (c Category) Token() string {
	return "~/" + string(c)
}
