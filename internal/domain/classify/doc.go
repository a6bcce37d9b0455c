// Package classify maps application identities onto the drawer taxonomy.
//
// Classification is a pure, total function: an ordered list of
// (category, identity prefix) rules is evaluated top down and the first
// prefix match wins, so rule order resolves overlapping prefixes. When no
// prefix matches, a native platform game signal maps to GAMES; otherwise
// the result is OTHER, including for records with no metadata at all.
//
// The built-in rule table can be replaced at startup from a YAML file with
// the same ordered shape. Rules are fixed after construction, which keeps
// Classify safe for concurrent use.
package classify
