package report

import (
	"fmt"
	"io"
	"time"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/engine"
	"github.com/sirkon/convlint/internal/runner"
)

// renderText writes the human-readable report: a summary line, violations
// grouped by file, then execution faults in their own trailing section so the
// two never blend.
func renderText(w io.Writer, res *runner.Result) error {
	fmt.Fprintf(w, "Scanned %d files against %d rules in %s\n",
		res.FilesScanned, res.RulesLoaded, res.Duration.Round(time.Millisecond))

	var violations, faults []engine.Finding
	for _, f := range res.Findings {
		if f.Kind == engine.KindViolation {
			violations = append(violations, f)
		} else {
			faults = append(faults, f)
		}
	}

	if len(violations) == 0 && len(faults) == 0 {
		fmt.Fprintln(w, "OK: no findings")
		return nil
	}

	fmt.Fprintf(w, "Findings: %d errors, %d warnings, %d infos\n",
		res.BySeverity[convrules.SeverityError],
		res.BySeverity[convrules.SeverityWarning],
		res.BySeverity[convrules.SeverityInfo])

	lastPath := ""
	for _, f := range violations {
		if f.Path != lastPath {
			fmt.Fprintf(w, "\n%s\n", f.Path)
			lastPath = f.Path
		}
		fmt.Fprintf(w, "  %d:%d\t%s\t%s\t%s\n", f.Line, f.Col, f.Severity, f.RuleID, f.Message)
	}

	if len(faults) > 0 {
		fmt.Fprintf(w, "\nExecution errors: %d rule, %d io\n", res.RuleErrors, res.IOErrors)
		for _, f := range faults {
			switch f.Kind {
			case engine.KindRuleError:
				fmt.Fprintf(w, "  %s\trule %s\t%s\n", f.Path, f.RuleID, f.Message)
			case engine.KindIOError:
				fmt.Fprintf(w, "  %s\t%s\n", f.Path, f.Message)
			}
		}
	}

	return nil
}
