package engine

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/predicate"
	"github.com/sirkon/convlint/internal/ruleset"
)

// Scan applies every applicable rule of the set to one file's content.
//
// Findings come out ordered by ascending line, then column, then rule
// identifier. Re-running over the same inputs yields the same sequence: the
// engine holds no state between calls.
func Scan(set *ruleset.Set, path string, src []byte) []Finding {
	slashPath := filepath.ToSlash(path)

	var findings []Finding
	for _, rule := range set.Rules() {
		if !rule.AppliesTo(slashPath) {
			continue
		}

		spans, err := safeMatch(rule.Predicate, src)
		if err != nil {
			findings = append(findings, Finding{
				Path:     path,
				RuleID:   rule.ID,
				Severity: convrules.SeverityWarning,
				Message:  fmt.Sprintf("rule execution failed: %v", err),
				Kind:     KindRuleError,
			})
			continue
		}

		for _, span := range spans {
			findings = append(findings, Finding{
				Path:     path,
				Line:     span.Line,
				Col:      span.Col,
				EndLine:  span.EndLine,
				EndCol:   span.EndCol,
				RuleID:   rule.ID,
				Severity: rule.Severity,
				Message:  rule.Message,
				Kind:     KindViolation,
			})
		}
	}

	Sort(findings)

	return findings
}

// Sort orders findings by line, then column, then rule identifier. Positions
// tie only between distinct rules, so the identifier breaks ties
// deterministically.
func Sort(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.RuleID < b.RuleID
	})
}

// IOFailure builds the finding-equivalent record for an unreadable file.
func IOFailure(path string, err error) Finding {
	return Finding{
		Path:     path,
		Severity: convrules.SeverityWarning,
		Message:  fmt.Sprintf("cannot read file: %v", err),
		Kind:     KindIOError,
	}
}

// safeMatch shields the scan from predicate panics: a predicate blowing up
// counts as a rule execution failure, not a crash of the run.
func safeMatch(p predicate.Predicate, src []byte) (spans []predicate.Span, err error) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
			err = fmt.Errorf("predicate panic: %v", r)
		}
	}()

	return p.Match(src)
}
