package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/runner"
)

// jsonReport is the stable machine-readable schema.
type jsonReport struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	DurationMS int64         `json:"duration_ms"`
	Files      int           `json:"files"`
	Rules      int           `json:"rules"`
	Counts     jsonCounts    `json:"counts"`
	Findings   []jsonFinding `json:"findings"`
}

type jsonCounts struct {
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
	Infos      int `json:"infos"`
	RuleErrors int `json:"rule_errors"`
	IOErrors   int `json:"io_errors"`
	Orphaned   int `json:"orphaned"`
}

type jsonFinding struct {
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Col      int    `json:"col,omitempty"`
	EndLine  int    `json:"end_line,omitempty"`
	EndCol   int    `json:"end_col,omitempty"`
	RuleID   string `json:"rule_id,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Kind     string `json:"kind"`
}

func renderJSON(w io.Writer, res *runner.Result) error {
	out := jsonReport{
		RunID:      uuid.NewString(),
		StartedAt:  res.Started,
		DurationMS: res.Duration.Milliseconds(),
		Files:      res.FilesScanned,
		Rules:      res.RulesLoaded,
		Counts: jsonCounts{
			Errors:     res.BySeverity[convrules.SeverityError],
			Warnings:   res.BySeverity[convrules.SeverityWarning],
			Infos:      res.BySeverity[convrules.SeverityInfo],
			RuleErrors: res.RuleErrors,
			IOErrors:   res.IOErrors,
			Orphaned:   res.Orphaned,
		},
		Findings: make([]jsonFinding, 0, len(res.Findings)),
	}

	for _, f := range res.Findings {
		out.Findings = append(out.Findings, jsonFinding{
			Path:     f.Path,
			Line:     f.Line,
			Col:      f.Col,
			EndLine:  f.EndLine,
			EndCol:   f.EndCol,
			RuleID:   f.RuleID,
			Severity: f.Severity.String(),
			Message:  f.Message,
			Kind:     f.Kind.String(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
