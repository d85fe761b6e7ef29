package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/predicate"
)

// document is the YAML shape of a convention/rule file.
type document struct {
	Conventions []conventionSpec `yaml:"conventions"`
	Rules       []ruleSpec       `yaml:"rules"`
}

type conventionSpec struct {
	ID       string           `yaml:"id"`
	Domain   convrules.Domain `yaml:"domain"`
	Category string           `yaml:"category"`
	Text     string           `yaml:"text"`
	Example  string           `yaml:"example"`
}

type ruleSpec struct {
	ID       string             `yaml:"id"`
	Kind     predicate.Kind     `yaml:"kind"`
	Pattern  string             `yaml:"pattern"`
	Severity convrules.Severity `yaml:"severity"`
	Glob     string             `yaml:"glob"`
	Lang     predicate.Lang     `yaml:"lang"`
	Message  string             `yaml:"message"`
}

// Builder accumulates documents in declaration order. Re-declaring a rule
// with the same severity replaces its pattern, a severity conflict fails.
type Builder struct {
	conventions map[string]convrules.Convention
	convOrder   []string
	rules       []convrules.Rule
	rulePos     map[string]int
}

// NewBuilder creates an empty rule set builder.
func NewBuilder() *Builder {
	return &Builder{
		conventions: make(map[string]convrules.Convention),
		rulePos:     make(map[string]int),
	}
}

// AddBuiltin loads the embedded starter catalog.
func (b *Builder) AddBuiltin() error {
	if err := b.AddDocument("builtin", builtinCatalog); err != nil {
		return fmt.Errorf("load builtin catalog: %w", err)
	}

	return nil
}

// AddFile reads and parses one YAML document from disk.
func (b *Builder) AddFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rule file: %w", err)
	}

	if err := b.AddDocument(path, data); err != nil {
		return fmt.Errorf("load rule file %s: %w", path, err)
	}

	return nil
}

// AddDocument parses one YAML document. The name is only used in error texts.
func (b *Builder) AddDocument(name string, data []byte) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	for _, spec := range doc.Conventions {
		conv, err := convrules.NewConvention(spec.ID, spec.Domain, spec.Category, spec.Text, spec.Example)
		if err != nil {
			return err
		}

		b.addConvention(conv)
	}

	for _, spec := range doc.Rules {
		rule, err := b.buildRule(spec)
		if err != nil {
			return err
		}

		if err := b.addRule(rule); err != nil {
			return err
		}
	}

	return nil
}

// Build finalizes the accumulated documents into an immutable Set.
func (b *Builder) Build() *Set {
	rules := make([]convrules.Rule, len(b.rules))
	copy(rules, b.rules)
	rulePos := make(map[string]int, len(b.rulePos))
	for id, i := range b.rulePos {
		rulePos[id] = i
	}
	conventions := make(map[string]convrules.Convention, len(b.conventions))
	for id, c := range b.conventions {
		conventions[id] = c
	}
	convOrder := make([]string, len(b.convOrder))
	copy(convOrder, b.convOrder)

	return &Set{
		rules:       rules,
		rulePos:     rulePos,
		conventions: conventions,
		convOrder:   convOrder,
	}
}

func (b *Builder) buildRule(spec ruleSpec) (convrules.Rule, error) {
	conv, hasConv := b.conventions[spec.ID]

	kind := spec.Kind
	if kind == 0 {
		kind = predicate.KindRegex
	}

	glob := spec.Glob
	if glob == "" && hasConv {
		glob = conv.Domain.DefaultGlob()
	}
	if glob == "" {
		return convrules.Rule{}, &convrules.InvalidRuleError{
			RuleID: spec.ID,
			Reason: "no glob given and no convention to derive it from",
		}
	}

	lang := spec.Lang
	if kind == predicate.KindQuery && !lang.Valid() {
		if !hasConv {
			return convrules.Rule{}, &convrules.InvalidRuleError{
				RuleID: spec.ID,
				Reason: "query rule needs a lang or a convention to derive it from",
			}
		}
		lang = domainLang(conv.Domain)
	}

	p, err := predicate.Compile(kind, spec.Pattern, lang)
	if err != nil {
		return convrules.Rule{}, &convrules.InvalidRuleError{
			RuleID: spec.ID,
			Reason: err.Error(),
		}
	}

	message := spec.Message
	if message == "" {
		if hasConv {
			message = conv.Summary()
		} else {
			message = spec.ID
		}
	}

	return convrules.NewRule(spec.ID, spec.Severity, glob, message, p)
}

// addConvention registers a convention; re-declaration replaces the text and
// keeps the original catalog position.
func (b *Builder) addConvention(conv convrules.Convention) {
	if _, ok := b.conventions[conv.ID]; !ok {
		b.convOrder = append(b.convOrder, conv.ID)
	}
	b.conventions[conv.ID] = conv
}

// addRule applies the last-write-wins policy.
func (b *Builder) addRule(rule convrules.Rule) error {
	i, ok := b.rulePos[rule.ID]
	if !ok {
		b.rulePos[rule.ID] = len(b.rules)
		b.rules = append(b.rules, rule)
		return nil
	}

	prev := b.rules[i]
	if prev.Severity != rule.Severity {
		return &convrules.DuplicateRuleError{
			RuleID: rule.ID,
			First:  prev.Severity,
			Second: rule.Severity,
		}
	}

	// Idempotent re-declaration: the later pattern wins, the position stays.
	b.rules[i] = rule

	return nil
}

func domainLang(d convrules.Domain) predicate.Lang {
	switch d {
	case convrules.DomainPython:
		return predicate.LangPython
	case convrules.DomainBash:
		return predicate.LangBash
	case convrules.DomainNodejs:
		return predicate.LangJavaScript
	case convrules.DomainLaravel, convrules.DomainWordPress:
		return predicate.LangPHP
	default:
		return 0
	}
}

// NewSet builds a set from already-constructed values, applying the same
// ordering and duplicate policy as document loading. Rule sets are meant to
// be passed around explicitly, never held in process-wide state, and this is
// the path for callers that assemble them in code.
func NewSet(conventions []convrules.Convention, rules []convrules.Rule) (*Set, error) {
	b := NewBuilder()
	for _, conv := range conventions {
		b.addConvention(conv)
	}
	for _, rule := range rules {
		if err := b.addRule(rule); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// Load is the one-call path: builtin catalog (optional) plus rule files,
// in that order, so user files may override builtin rules.
func Load(builtin bool, paths ...string) (*Set, error) {
	b := NewBuilder()
	if builtin {
		if err := b.AddBuiltin(); err != nil {
			return nil, err
		}
	}

	for _, path := range paths {
		if err := b.AddFile(path); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}
