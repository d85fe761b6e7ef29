package convrules

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sirkon/convlint/internal/predicate"
)

// Rule is the machine-checkable derivative of a Convention.
type Rule struct {
	// ID of the source convention.
	ID string
	// Severity of a violation.
	Severity Severity
	// Glob limits the files the rule applies to. Matched against the
	// slash-normalized path and against the path base name.
	Glob string
	// Message rendered with each finding.
	Message string
	// Predicate is the compiled match predicate.
	Predicate predicate.Predicate
}

// NewRule validates and builds a Rule.
//
// The predicate must come in already compiled, see [predicate.Compile]:
// compile failures belong to the same load stage and are wrapped into
// InvalidRuleError by the loader.
func NewRule(id string, severity Severity, glob, message string, p predicate.Predicate) (Rule, error) {
	if strings.TrimSpace(id) == "" {
		return Rule{}, &InvalidRuleError{RuleID: id, Reason: "rule identifier cannot be empty"}
	}
	if !severity.Valid() {
		return Rule{}, &InvalidRuleError{RuleID: id, Reason: "severity must be one of info, warning, error"}
	}
	if glob == "" {
		return Rule{}, &InvalidRuleError{RuleID: id, Reason: "rule has no applicable-file glob"}
	}
	if !doublestar.ValidatePattern(glob) {
		return Rule{}, &InvalidRuleError{RuleID: id, Reason: "glob " + glob + " does not compile"}
	}
	if p == nil {
		return Rule{}, &InvalidRuleError{RuleID: id, Reason: "rule has no match predicate"}
	}

	return Rule{
		ID:        id,
		Severity:  severity,
		Glob:      glob,
		Message:   message,
		Predicate: p,
	}, nil
}

// AppliesTo reports whether the rule's glob matches the given slash-separated
// path. The base name is tried as well so that "*.js" style globs work on
// nested paths.
func (r Rule) AppliesTo(slashPath string) bool {
	if ok, _ := doublestar.Match(r.Glob, slashPath); ok {
		return true
	}

	base := slashPath
	if i := strings.LastIndexByte(slashPath, '/'); i >= 0 {
		base = slashPath[i+1:]
	}
	ok, _ := doublestar.Match(r.Glob, base)

	return ok
}
