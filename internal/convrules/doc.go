// Package convrules defines the value types a convlint rule set is built from.
//
// A Convention is a documented, prose-form coding guideline belonging to one
// of the supported domains (python, bash, nodejs, laravel, wordpress). A Rule
// is the machine-checkable derivative of a Convention: a compiled match
// predicate, a severity, and a file glob limiting where it applies. Not every
// convention has a rule — most guidelines in a real catalog are prose-only —
// and the catalog stays useful as a query target even for those.
//
// # Identity
//
// A rule shares its identifier with its source convention. Identifiers are
// stable strings and are the unit of deduplication: re-declaring a rule with
// the same identifier and the same severity replaces its pattern (last write
// wins), while re-declaring it with a different severity is a conflict and
// fails the load.
//
// # Immutability
//
// Conventions and rules are plain values. They are validated on construction
// and never mutated afterwards, so a loaded set may be shared freely between
// concurrently scanning workers.
//
// convrules is the single source of truth for the load-time error taxonomy:
// InvalidRuleError and DuplicateRuleError are both fatal, a run never starts
// with a partial rule set.
package convrules
