package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/predicate"
	"github.com/sirkon/convlint/internal/ruleset"
)

// brokenPredicate misbehaves on every file.
type brokenPredicate struct {
	panics bool
}

func (p brokenPredicate) Kind() predicate.Kind { return predicate.KindRegex }

func (p brokenPredicate) Match([]byte) ([]predicate.Span, error) {
	if p.panics {
		panic("predicate exploded")
	}
	return nil, errors.New("predicate misbehaved")
}

func mustRule(t *testing.T, id string, severity convrules.Severity, glob, pattern string) convrules.Rule {
	t.Helper()
	p, err := predicate.Compile(predicate.KindRegex, pattern, 0)
	require.NoError(t, err)
	rule, err := convrules.NewRule(id, severity, glob, id, p)
	require.NoError(t, err)

	return rule
}

func mustSet(t *testing.T, rules ...convrules.Rule) *ruleset.Set {
	t.Helper()
	set, err := ruleset.NewSet(nil, rules)
	require.NoError(t, err)

	return set
}

func TestScanSingleMatch(t *testing.T) {
	set := mustSet(t, mustRule(t, "no-var", convrules.SeverityError, "*.js", `\bvar\b`))

	findings := Scan(set, "a.js", []byte("var x = 1;\n"))
	require.Len(t, findings, 1)

	f := findings[0]
	require.Equal(t, "a.js", f.Path)
	require.Equal(t, 1, f.Line)
	require.Equal(t, 1, f.Col)
	require.Equal(t, "no-var", f.RuleID)
	require.Equal(t, convrules.SeverityError, f.Severity)
	require.Equal(t, KindViolation, f.Kind)
}

func TestScanGlobExcludes(t *testing.T) {
	set := mustSet(t, mustRule(t, "no-var", convrules.SeverityError, "*.js", `\bvar\b`))

	findings := Scan(set, "a.py", []byte("var = 1\n"))
	require.Empty(t, findings)
}

func TestScanDeterminism(t *testing.T) {
	set := mustSet(t,
		mustRule(t, "b-rule", convrules.SeverityWarning, "*.js", `x`),
		mustRule(t, "a-rule", convrules.SeverityInfo, "*.js", `x = 1`),
	)
	src := []byte("x = 1;\nlet x;\n")

	first := Scan(set, "a.js", src)
	second := Scan(set, "a.js", src)
	require.Equal(t, first, second)
}

func TestScanOrdering(t *testing.T) {
	set := mustSet(t,
		// Declared out of position order on purpose.
		mustRule(t, "z-rule", convrules.SeverityInfo, "*.js", `alpha`),
		mustRule(t, "a-rule", convrules.SeverityInfo, "*.js", `alpha`),
		mustRule(t, "m-rule", convrules.SeverityInfo, "*.js", `beta`),
	)

	findings := Scan(set, "a.js", []byte("beta\nalpha\n"))
	require.Len(t, findings, 3)

	require.Equal(t, "m-rule", findings[0].RuleID) // line 1
	require.Equal(t, "a-rule", findings[1].RuleID) // line 2, tie broken by id
	require.Equal(t, "z-rule", findings[2].RuleID)
}

func TestScanIsolatesBrokenRule(t *testing.T) {
	broken, err := convrules.NewRule("broken", convrules.SeverityError, "*.js", "", brokenPredicate{})
	require.NoError(t, err)
	set := mustSet(t,
		broken,
		mustRule(t, "no-var", convrules.SeverityError, "*.js", `\bvar\b`),
	)

	findings := Scan(set, "a.js", []byte("var x;\n"))
	require.Len(t, findings, 2)

	var ruleErrors, violations int
	for _, f := range findings {
		switch f.Kind {
		case KindRuleError:
			ruleErrors++
			require.Equal(t, "broken", f.RuleID)
			require.Equal(t, convrules.SeverityWarning, f.Severity)
		case KindViolation:
			violations++
			require.Equal(t, "no-var", f.RuleID)
		}
	}
	require.Equal(t, 1, ruleErrors)
	require.Equal(t, 1, violations)
}

func TestScanRecoversPredicatePanic(t *testing.T) {
	panicking, err := convrules.NewRule("panicky", convrules.SeverityError, "*", "", brokenPredicate{panics: true})
	require.NoError(t, err)
	set := mustSet(t, panicking)

	findings := Scan(set, "a.js", []byte("anything\n"))
	require.Len(t, findings, 1)
	require.Equal(t, KindRuleError, findings[0].Kind)
	require.Contains(t, findings[0].Message, "predicate panic")
}

func TestFindingString(t *testing.T) {
	f := Finding{
		Path:     "a.js",
		Line:     3,
		Col:      7,
		RuleID:   "no-var",
		Severity: convrules.SeverityError,
		Message:  "never use var",
		Kind:     KindViolation,
	}
	require.Equal(t, "a.js:3:7: [error] no-var: never use var", f.String())
}
