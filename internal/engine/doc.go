// Package engine applies a rule set to one source file and produces findings.
//
// The scan of a single file is pure and deterministic: the same rule set and
// the same bytes always give the same finding sequence, ordered by line, then
// column, then rule identifier. One misbehaving rule never aborts the file —
// its failure is recorded as a rule-error finding and the remaining rules
// still run.
package engine
