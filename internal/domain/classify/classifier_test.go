package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/termdeck/termdeck/internal/shared/types"
)

func TestClassifyPrefixRules(t *testing.T) {
	c := New()
	tests := []struct {
		identity string
		want     types.Category
	}{
		{"com.whatsapp", types.CategorySocial},
		{"com.whatsapp.w4b", types.CategorySocial},
		{"com.spotify.music", types.CategoryMedia},
		{"com.google.android.youtube", types.CategoryMedia},
		{"com.slack", types.CategoryWork},
		{"com.supercell.clashofclans", types.CategoryGames},
		{"com.android.calculator2", types.CategoryUtilities},
		{"com.android.settings", types.CategorySystem},
		{"org.gnome.Calculator", types.CategorySystem},
		{"com.unknown.foo", types.CategoryOther},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.identity, Meta{}); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.identity, got, tt.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	c := New()
	for _, identity := range []string{"", "x", "com.unknown.foo"} {
		got := c.Classify(identity, Meta{})
		if !got.Valid() {
			t.Errorf("Classify(%q) = %v, not a valid category", identity, got)
		}
	}
	if got := c.Classify("", Meta{}); got != types.CategoryOther {
		t.Errorf("Classify with no metadata = %v, want OTHER", got)
	}
}

func TestClassifyGameSignal(t *testing.T) {
	c := New()
	if got := c.Classify("com.unknown.shooter", Meta{Game: true}); got != types.CategoryGames {
		t.Errorf("unmapped identity with game signal = %v, want GAMES", got)
	}
	// Prefix rules outrank the native signal.
	if got := c.Classify("com.whatsapp", Meta{Game: true}); got != types.CategorySocial {
		t.Errorf("mapped identity with game signal = %v, want SOCIAL", got)
	}
	if got := c.Classify("com.unknown.foo", Meta{Game: false}); got != types.CategoryOther {
		t.Errorf("unmapped identity without game signal = %v, want OTHER", got)
	}
}

func TestRuleOrderResolvesConflicts(t *testing.T) {
	rules := []Rule{
		{Category: types.CategoryWork, Prefixes: []string{"com.acme"}},
		{Category: types.CategorySocial, Prefixes: []string{"com.acme.chat"}},
	}
	c, err := NewWithRules(rules)
	if err != nil {
		t.Fatalf("NewWithRules: %v", err)
	}
	// The earlier, broader rule wins even though the later one is more
	// specific. Order is the contract.
	if got := c.Classify("com.acme.chat", Meta{}); got != types.CategoryWork {
		t.Errorf("Classify = %v, want WORK (first rule wins)", got)
	}
}

func TestNewWithRulesRejectsUnknownCategory(t *testing.T) {
	_, err := NewWithRules([]Rule{{Category: "productivity", Prefixes: []string{"com.x"}}})
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `rules:
  - category: social
    prefixes: ["com.chat"]
  - category: games
    prefixes: ["io.play", "com.fun"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("loaded %d rules, want 2", len(rules))
	}
	if rules[0].Category != types.CategorySocial || rules[1].Category != types.CategoryGames {
		t.Errorf("rule order not preserved: %+v", rules)
	}

	c, err := NewWithRules(rules)
	if err != nil {
		t.Fatalf("NewWithRules: %v", err)
	}
	if got := c.Classify("com.fun.puzzle", Meta{}); got != types.CategoryGames {
		t.Errorf("Classify(com.fun.puzzle) = %v, want GAMES", got)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("rules: []\n"), 0o644); err != nil {
		t.Fatalf("write empty rules: %v", err)
	}
	if _, err := LoadRules(empty); err == nil {
		t.Error("expected error for empty rule list")
	}
}
