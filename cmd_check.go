package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirkon/convlint/internal/report"
	"github.com/sirkon/convlint/internal/ruleset"
	"github.com/sirkon/convlint/internal/runner"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		ruleFiles   []string
		noBuiltin   bool
		minSeverity string
		failOn      string
		format      string
		jobs        int
		exclude     []string
	)

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "scan files for convention violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("rules") {
				cfg.Rules = ruleFiles
			}
			if cmd.Flags().Changed("no-builtin") {
				builtin := !noBuiltin
				cfg.Builtin = &builtin
			}
			if cmd.Flags().Changed("min-severity") {
				if err := cfg.MinSeverity.UnmarshalText([]byte(minSeverity)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("fail-on") {
				if err := cfg.FailOn.UnmarshalText([]byte(failOn)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("format") {
				if err := cfg.Format.UnmarshalText([]byte(format)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("exclude") {
				cfg.Exclude = exclude
			}

			set, err := ruleset.Load(cfg.UseBuiltin(), cfg.Rules...)
			if err != nil {
				return fmt.Errorf("load rule set: %w", err)
			}
			if set.Len() == 0 {
				return fmt.Errorf("no rules loaded, nothing to check against")
			}

			targets := args
			if len(targets) == 0 {
				targets = []string{"."}
			}

			run := runner.New(set, runner.Options{
				Jobs:        cfg.Jobs,
				MinSeverity: cfg.MinSeverity,
				Exclude:     cfg.Exclude,
				Logger:      a.log,
			})

			res, err := run.Run(cmd.Context(), targets)
			if err != nil {
				return fmt.Errorf("scan targets: %w", err)
			}

			if err := report.Render(os.Stdout, cfg.Format, res); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if res.ExitCode(cfg.FailOn) != 0 {
				return errFindings
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ruleFiles, "rules", nil, "rule document paths, in load order")
	cmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "skip the embedded starter catalog")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "", "drop violations below this severity (info|warning|error)")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "severity at which the exit code turns non-zero")
	cmd.Flags().StringVar(&format, "format", "", "report format (text|json)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "scan workers, 0 means all CPUs")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "glob patterns of paths to skip")

	return cmd
}
