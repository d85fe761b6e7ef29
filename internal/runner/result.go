package runner

import (
	"time"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/engine"
)

// Result is the aggregated outcome of one run.
type Result struct {
	// Findings come sorted by path, then line, column, rule identifier.
	// Violations below the run's minimum severity are already excluded;
	// rule-error and io-error findings are always retained so the report
	// can list execution faults next to violations.
	Findings []engine.Finding

	// FilesScanned counts the files that went through the engine.
	FilesScanned int
	// RulesLoaded is the size of the rule set the run used.
	RulesLoaded int
	// Orphaned counts findings dropped for referencing no loaded rule.
	Orphaned int

	Started  time.Time
	Duration time.Duration

	// BySeverity counts violations only, after thresholding.
	BySeverity map[convrules.Severity]int
	// RuleErrors and IOErrors count the execution faults.
	RuleErrors int
	IOErrors   int
}

// Violations reports how many genuine violations survived thresholding.
func (r *Result) Violations() int {
	total := 0
	for _, n := range r.BySeverity {
		total += n
	}

	return total
}

// ExitCode implements the pass/fail contract: non-zero exactly when at least
// one violation at or above the failOn severity survived.
func (r *Result) ExitCode(failOn convrules.Severity) int {
	for _, f := range r.Findings {
		if f.Kind != engine.KindViolation {
			continue
		}
		if f.Severity.AtLeast(failOn) {
			return 1
		}
	}

	return 0
}
