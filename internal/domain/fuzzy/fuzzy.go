package fuzzy

import (
	"math"
	"unicode"
)

// NoMatch is the sentinel score for candidates that do not contain the
// query as an ordered subsequence. It is larger than any real score, so
// keep-the-better comparisons across fields need no special casing.
const NoMatch = math.MaxInt32

// Result is one scored evaluation. Indices address runes of the original
// candidate and are nil when nothing was matched.
type Result struct {
	Score   int   `json:"score"`
	Indices []int `json:"indices,omitempty"`
}

// Matched reports whether the candidate matched at all.
func (r Result) Matched() bool {
	return r.Score != NoMatch
}

// Score evaluates query against candidate and returns the match score plus
// the matched rune indices for highlighting. See the package documentation
// for the scoring rules.
func Score(candidate, query string) Result {
	if query == "" {
		return Result{Score: 0}
	}

	cand := fold(candidate)
	q := fold(query)

	if start := indexRunes(cand, q); start >= 0 {
		indices := make([]int, len(q))
		for i := range indices {
			indices[i] = start + i
		}
		return Result{Score: 0, Indices: indices}
	}

	return subsequence(cand, q)
}

// subsequence walks cand left to right consuming q in order. prev starts at
// -1 so a match on the first rune counts as consecutive and every skipped
// leading rune is charged as gap.
func subsequence(cand, q []rune) Result {
	score := 0
	prev := -1
	qi := 0
	indices := make([]int, 0, len(q))

	for ci := 0; ci < len(cand) && qi < len(q); ci++ {
		if cand[ci] != q[qi] {
			continue
		}
		if gap := ci - prev - 1; gap == 0 {
			score++
		} else {
			score += 2 * gap
		}
		if boundary(cand, ci) {
			score -= 3
		}
		indices = append(indices, ci)
		prev = ci
		qi++
	}

	if qi < len(q) {
		return Result{Score: NoMatch}
	}
	if score < 1 {
		score = 1
	}
	return Result{Score: score, Indices: indices}
}

// boundary reports whether the rune at i begins a word: the first rune of
// the candidate, or one directly preceded by a space, period, hyphen, or
// underscore.
func boundary(cand []rune, i int) bool {
	if i == 0 {
		return true
	}
	switch cand[i-1] {
	case ' ', '.', '-', '_':
		return true
	}
	return false
}

// fold lowercases rune by rune, preserving index alignment with the input.
func fold(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

// indexRunes returns the rune index of the first occurrence of q in cand,
// or -1. Candidates are launcher-name sized, so the quadratic scan is fine.
func indexRunes(cand, q []rune) int {
	if len(q) == 0 || len(q) > len(cand) {
		return -1
	}
	for i := 0; i+len(q) <= len(cand); i++ {
		j := 0
		for ; j < len(q); j++ {
			if cand[i+j] != q[j] {
				break
			}
		}
		if j == len(q) {
			return i
		}
	}
	return -1
}
