package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/convlint/internal/report"
	"github.com/sirkon/convlint/internal/ruleset"
	"github.com/sirkon/convlint/internal/runner"
	"github.com/sirkon/convlint/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var ruleFiles []string
	var noBuiltin bool

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "rescan files as they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("rules") {
				cfg.Rules = ruleFiles
			}
			builtin := cfg.UseBuiltin()
			if cmd.Flags().Changed("no-builtin") {
				builtin = !noBuiltin
			}

			set, err := ruleset.Load(builtin, cfg.Rules...)
			if err != nil {
				return fmt.Errorf("load rule set: %w", err)
			}

			targets := args
			if len(targets) == 0 {
				targets = []string{"."}
			}

			run := runner.New(set, runner.Options{
				MinSeverity: cfg.MinSeverity,
				Exclude:     cfg.Exclude,
				Logger:      a.log,
			})

			onFile := func(path string) {
				res := run.ScanFile(path)
				if err := report.Render(os.Stdout, report.FormatText, res); err != nil {
					a.log.Warn("render incremental report", zap.Error(err))
				}
			}

			a.log.Info("watching", zap.Strings("targets", targets))

			return watch.New(targets, onFile, a.log).Run(cmd.Context())
		},
	}

	cmd.Flags().StringSliceVar(&ruleFiles, "rules", nil, "rule document paths, in load order")
	cmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "skip the embedded starter catalog")

	return cmd
}
