package engine

import (
	"encoding"
	"fmt"

	"github.com/sirkon/convlint/internal/convrules"
)

// FindingKind separates genuine violations from the execution faults a run
// surfaces alongside them.
type FindingKind int

const (
	findingKindInvalid FindingKind = iota

	// KindViolation is a rule match in a scanned file.
	KindViolation

	// KindRuleError marks a rule that misbehaved while scanning a file.
	// Attributed to the rule, isolated from the rest of the scan.
	KindRuleError

	// KindIOError marks a file that could not be read. The scan of other
	// files continues.
	KindIOError
)

var findingKindValueMap = map[FindingKind]string{
	KindViolation: "violation",
	KindRuleError: "rule-error",
	KindIOError:   "io-error",
}

func (k FindingKind) String() string {
	v, ok := findingKindValueMap[k]
	if !ok {
		return fmt.Sprintf("finding-kind-invalid(%d)", k)
	}

	return v
}

var _ encoding.TextMarshaler = FindingKind(0)

func (k FindingKind) MarshalText() ([]byte, error) {
	v, ok := findingKindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid FindingKind(%d)", k)
	}

	return []byte(v), nil
}

// Finding is one detected violation (or execution fault) in one file.
// Created by the engine, owned transiently by the aggregator, never mutated.
type Finding struct {
	Path string

	// Line and Col locate the match start, 1-based. Rule and IO errors
	// carry no position and leave them zero.
	Line    int
	Col     int
	EndLine int
	EndCol  int

	// RuleID references the rule in the loaded set. Empty only for
	// KindIOError findings, which have no originating rule.
	RuleID   string
	Severity convrules.Severity
	Message  string
	Kind     FindingKind
}

func (f Finding) String() string {
	pos := f.Path
	if f.Line > 0 {
		pos = fmt.Sprintf("%s:%d:%d", f.Path, f.Line, f.Col)
	}
	id := f.RuleID
	if id == "" {
		id = f.Kind.String()
	}

	return fmt.Sprintf("%s: [%s] %s: %s", pos, f.Severity, id, f.Message)
}
