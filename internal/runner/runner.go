package runner

import (
	"context"
	"os"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/engine"
	"github.com/sirkon/convlint/internal/ruleset"
)

// Options tune a run. Zero values mean defaults.
type Options struct {
	// Jobs bounds the worker pool. 0 means GOMAXPROCS.
	Jobs int
	// MinSeverity excludes violations below it. 0 means info.
	MinSeverity convrules.Severity
	// Exclude lists glob patterns of paths to skip.
	Exclude []string
	// Logger receives progress diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Runner scans file trees against an immutable rule set.
type Runner struct {
	set  *ruleset.Set
	opts Options
	log  *zap.Logger
}

// New creates a runner over a loaded set.
func New(set *ruleset.Set, opts Options) *Runner {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	if opts.MinSeverity == 0 {
		opts.MinSeverity = convrules.SeverityInfo
	}

	return &Runner{set: set, opts: opts, log: log}
}

// Run walks the targets, scans every file through the worker pool and
// aggregates the outcome. Per-file failures never abort the run; only
// context cancellation does.
func (r *Runner) Run(ctx context.Context, targets []string) (*Result, error) {
	started := time.Now()

	files, walkFailures := collectFiles(targets, r.opts.Exclude)
	r.log.Debug("targets expanded",
		zap.Int("files", len(files)),
		zap.Int("walk_failures", len(walkFailures)))

	var results collector
	results.add(walkFailures)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Jobs)

	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := os.ReadFile(path)
			if err != nil {
				results.add([]engine.Finding{engine.IOFailure(path, err)})
				return nil
			}

			results.add(engine.Scan(r.set, path, src))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := r.aggregate(results.snapshot())
	res.FilesScanned = len(files)
	res.Started = started
	res.Duration = time.Since(started)

	r.log.Info("run complete",
		zap.Int("files", res.FilesScanned),
		zap.Int("violations", res.Violations()),
		zap.Int("rule_errors", res.RuleErrors),
		zap.Int("io_errors", res.IOErrors),
		zap.Duration("took", res.Duration))

	return res, nil
}

// ScanFile scans a single file outside the pool. Used by watch mode.
// Excluded paths yield an empty result, same as a full run would skip them.
func (r *Runner) ScanFile(path string) *Result {
	started := time.Now()

	if excluded(path, r.opts.Exclude) {
		res := r.aggregate(nil)
		res.Started = started
		res.Duration = time.Since(started)
		return res
	}

	var batch []engine.Finding
	src, err := os.ReadFile(path)
	if err != nil {
		batch = []engine.Finding{engine.IOFailure(path, err)}
	} else {
		batch = engine.Scan(r.set, path, src)
	}

	res := r.aggregate(batch)
	res.FilesScanned = 1
	res.Started = started
	res.Duration = time.Since(started)

	return res
}

// aggregate enforces referential integrity, applies the severity threshold
// and fixes the global order.
func (r *Runner) aggregate(findings []engine.Finding) *Result {
	res := &Result{
		RulesLoaded: r.set.Len(),
		BySeverity:  make(map[convrules.Severity]int),
	}

	kept := make([]engine.Finding, 0, len(findings))
	for _, f := range findings {
		switch f.Kind {
		case engine.KindIOError:
			res.IOErrors++
			kept = append(kept, f)
			continue
		case engine.KindRuleError:
			if !r.set.HasRule(f.RuleID) {
				res.Orphaned++
				continue
			}
			res.RuleErrors++
			kept = append(kept, f)
			continue
		}

		// Violations must reference a loaded rule.
		if !r.set.HasRule(f.RuleID) {
			r.log.Warn("dropping orphaned finding",
				zap.String("rule", f.RuleID),
				zap.String("path", f.Path))
			res.Orphaned++
			continue
		}

		if !f.Severity.AtLeast(r.opts.MinSeverity) {
			continue
		}

		res.BySeverity[f.Severity]++
		kept = append(kept, f)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Path < kept[j].Path
	})
	// Path groups are already engine-ordered within a file; the stable sort
	// above keeps that order intact.

	res.Findings = kept

	return res
}
