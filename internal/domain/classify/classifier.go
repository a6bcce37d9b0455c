package classify

import (
	"fmt"
	"strings"

	"github.com/termdeck/termdeck/internal/shared/types"
)

// Meta carries the platform metadata consulted when no prefix rule matches.
// The zero value means "no metadata available".
type Meta struct {
	Game bool
}

// Rule binds one category to a set of identity prefixes. Prefixes are
// compared verbatim with no folding.
type Rule struct {
	Category types.Category `yaml:"category"`
	Prefixes []string       `yaml:"prefixes"`
}

// Classifier evaluates an ordered rule list with first-match-wins
// semantics. Safe for concurrent use once constructed.
type Classifier struct {
	rules []Rule
}

// New returns a classifier with the built-in rule table.
func New() *Classifier {
	c, _ := NewWithRules(defaultRules())
	return c
}

// NewWithRules returns a classifier over the given ordered rules. Rules
// naming a category outside the taxonomy are rejected.
func NewWithRules(rules []Rule) (*Classifier, error) {
	for i, rule := range rules {
		if !rule.Category.Valid() {
			return nil, fmt.Errorf("rule %d: unknown category %q", i, rule.Category)
		}
	}
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Classifier{rules: copied}, nil
}

// Classify resolves identity to exactly one category. It never fails: an
// unmatched identity falls through to the game signal, then to OTHER.
func (c *Classifier) Classify(identity string, meta Meta) types.Category {
	for _, rule := range c.rules {
		for _, prefix := range rule.Prefixes {
			if strings.HasPrefix(identity, prefix) {
				return rule.Category
			}
		}
	}
	if meta.Game {
		return types.CategoryGames
	}
	return types.CategoryOther
}

// Rules returns a copy of the active rule list, in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
