// Package predicate implements the match predicates rules are compiled from.
//
// Two kinds are supported:
//
//   - regex: an RE2 expression evaluated over the raw file text, one span per
//     non-overlapping match;
//   - query: a tree-sitter S-expression query evaluated over the parsed
//     source, one span per capture.
//
// Predicates compile at load time and match at scan time. Compilation errors
// are fatal for the load; match-time errors are not — the engine isolates
// them per rule and keeps scanning.
package predicate
