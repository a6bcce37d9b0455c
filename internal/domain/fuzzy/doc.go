// Package fuzzy implements the drawer's approximate string match scorer.
//
// Scoring is case-insensitive and rune-based. Lower scores are better:
//
//   - An empty query matches everything at score 0 with no indices.
//   - A contiguous substring occurrence is the best possible match, score 0,
//     and dominates any subsequence result.
//   - Otherwise the query must appear as an ordered subsequence. The walk
//     accumulates cost: 1 per rune matched directly after the previous
//     match, 2 per skipped rune for gapped matches, minus 3 for runes
//     matching at a word boundary. Final subsequence scores are floored at
//     1 so they can never tie a substring match.
//   - A query that cannot be consumed as a subsequence yields NoMatch.
//
// The scorer keeps no state across evaluations; every query change rescoring
// starts from scratch for every candidate.
package fuzzy
