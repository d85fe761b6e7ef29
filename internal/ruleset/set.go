package ruleset

import (
	"github.com/sirkon/convlint/internal/convrules"
)

// Set is the full ordered collection of rules considered for a run, plus the
// convention catalog they were derived from. Immutable after Build.
type Set struct {
	rules       []convrules.Rule
	rulePos     map[string]int
	conventions map[string]convrules.Convention
	convOrder   []string
}

// Rules returns the rules in insertion order. The slice is a snapshot copy.
func (s *Set) Rules() []convrules.Rule {
	out := make([]convrules.Rule, len(s.rules))
	copy(out, s.rules)

	return out
}

// Rule looks a rule up by its identifier.
func (s *Set) Rule(id string) (convrules.Rule, bool) {
	i, ok := s.rulePos[id]
	if !ok {
		return convrules.Rule{}, false
	}

	return s.rules[i], true
}

// HasRule reports whether a rule with the given identifier was loaded.
func (s *Set) HasRule(id string) bool {
	_, ok := s.rulePos[id]
	return ok
}

// Len is the number of loaded rules.
func (s *Set) Len() int {
	return len(s.rules)
}

// Convention looks a convention up by its identifier.
func (s *Set) Convention(id string) (convrules.Convention, bool) {
	c, ok := s.conventions[id]
	return c, ok
}

// Conventions returns the catalog in declaration order.
func (s *Set) Conventions() []convrules.Convention {
	out := make([]convrules.Convention, 0, len(s.convOrder))
	for _, id := range s.convOrder {
		out = append(out, s.conventions[id])
	}

	return out
}

// ConventionsFor filters the catalog by domain, keeping declaration order.
func (s *Set) ConventionsFor(domain convrules.Domain) []convrules.Convention {
	var out []convrules.Convention
	for _, id := range s.convOrder {
		if c := s.conventions[id]; c.Domain == domain {
			out = append(out, c)
		}
	}

	return out
}
