package fuzzy

import (
	"reflect"
	"testing"
)

func TestEmptyQueryMatchesEverything(t *testing.T) {
	for _, cand := range []string{"", "Chatter", "a b c"} {
		res := Score(cand, "")
		if res.Score != 0 {
			t.Errorf("Score(%q, \"\") = %d, want 0", cand, res.Score)
		}
		if len(res.Indices) != 0 {
			t.Errorf("Score(%q, \"\") returned indices %v, want none", cand, res.Indices)
		}
	}
}

func TestSubstringScoresZero(t *testing.T) {
	tests := []struct {
		candidate string
		query     string
		indices   []int
	}{
		{"Chatter", "cha", []int{0, 1, 2}},
		{"Chatter", "att", []int{2, 3, 4}},
		{"WhatsApp", "tsa", []int{3, 4, 5}},
		{"abab", "ab", []int{0, 1}},
		{"Café Games", "café", []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		res := Score(tt.candidate, tt.query)
		if res.Score != 0 {
			t.Errorf("Score(%q, %q) = %d, want 0", tt.candidate, tt.query, res.Score)
		}
		if !reflect.DeepEqual(res.Indices, tt.indices) {
			t.Errorf("Score(%q, %q) indices = %v, want %v", tt.candidate, tt.query, res.Indices, tt.indices)
		}
	}
}

func TestSubsequenceWalk(t *testing.T) {
	tests := []struct {
		candidate string
		query     string
		score     int
		indices   []int
	}{
		// w matches at the start (consecutive cost 1, boundary -3), k after
		// a two rune gap (cost 4).
		{"Workly", "wk", 2, []int{0, 3}},
		// Bonuses drive the running score to -3; the floor lifts it to 1.
		{"a.b", "ab", 1, []int{0, 2}},
		{"MiXeD", "mxd", 2, []int{0, 2, 4}},
	}
	for _, tt := range tests {
		res := Score(tt.candidate, tt.query)
		if res.Score != tt.score {
			t.Errorf("Score(%q, %q) = %d, want %d", tt.candidate, tt.query, res.Score, tt.score)
		}
		if !reflect.DeepEqual(res.Indices, tt.indices) {
			t.Errorf("Score(%q, %q) indices = %v, want %v", tt.candidate, tt.query, res.Indices, tt.indices)
		}
	}
}

func TestNoMatchWhenNotSubsequence(t *testing.T) {
	tests := []struct {
		candidate string
		query     string
	}{
		{"Workly", "xyz"},
		{"cat", "tac"},
		{"", "a"},
		{"ab", "abc"},
	}
	for _, tt := range tests {
		res := Score(tt.candidate, tt.query)
		if res.Matched() {
			t.Errorf("Score(%q, %q) matched with %d, want NoMatch", tt.candidate, tt.query, res.Score)
		}
		if len(res.Indices) != 0 {
			t.Errorf("Score(%q, %q) returned indices %v, want none", tt.candidate, tt.query, res.Indices)
		}
	}
}

func TestWordBoundaryBeatsMidWord(t *testing.T) {
	// Same gap structure, but "Tax Forms" consumes the f at a word start.
	atBoundary := Score("Tax Forms", "tf")
	midWord := Score("Taxform", "tf")
	if !atBoundary.Matched() || !midWord.Matched() {
		t.Fatal("expected both candidates to match")
	}
	if atBoundary.Score >= midWord.Score {
		t.Errorf("boundary match scored %d, mid-word %d, want boundary strictly better",
			atBoundary.Score, midWord.Score)
	}
}

func TestSingleRuneQueryIsSubstring(t *testing.T) {
	// A single rune present anywhere is a contiguous substring, so word
	// position cannot separate candidates; equal scores fall back to
	// catalog order.
	for _, cand := range []string{"x b", "xb"} {
		res := Score(cand, "b")
		if res.Score != 0 {
			t.Errorf("Score(%q, \"b\") = %d, want 0", cand, res.Score)
		}
	}
	if got := Score("x b", "b").Indices; !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("indices = %v, want the first occurrence [2]", got)
	}
}

func TestSmallerGapScoresBetter(t *testing.T) {
	near := Score("abd", "ad")
	far := Score("abcd", "ad")
	if near.Score >= far.Score {
		t.Errorf("one rune gap scored %d, two rune gap %d, want smaller gap better",
			near.Score, far.Score)
	}
}

func TestScatteredMatchHasNoDistanceCap(t *testing.T) {
	res := Score("a123456789b123456789c", "abc")
	if !res.Matched() {
		t.Fatal("expected scattered subsequence to match")
	}
	if res.Score < 1 {
		t.Errorf("scattered match score = %d, want >= 1", res.Score)
	}
	if !reflect.DeepEqual(res.Indices, []int{0, 10, 20}) {
		t.Errorf("scattered match indices = %v, want [0 10 20]", res.Indices)
	}
}

func TestSubsequenceNeverTiesSubstring(t *testing.T) {
	// Every subsequence-only match is floored at 1, leaving 0 exclusive to
	// substring and empty-query matches.
	res := Score("a.b", "ab")
	if res.Score < 1 {
		t.Errorf("subsequence score = %d, want >= 1", res.Score)
	}
}
