// Package main implements convlint, a conformance linter and query engine
// for an organization's coding conventions.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sirkon/convlint/internal/config"
)

const doc = `convlint loads coding conventions (python, bash, nodejs, laravel, wordpress)
from structured YAML catalogs, checks source trees against the machine-checkable
subset and serves the catalog itself for prompts and lookups.`

// errFindings distinguishes "the code failed the check" (exit 1) from
// "the tool failed to run" (exit 2).
var errFindings = errors.New("findings at or above the fail-on severity")

// app carries the pieces every command needs.
type app struct {
	log *zap.Logger
	cfg *config.Config
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "convlint: %v\n", err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var verbose bool

	root := &cobra.Command{
		Use:           "convlint",
		Short:         "conventions conformance linter",
		Long:          doc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}
			a.log = log

			cfg, err := config.NewLoader(log).Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			a.cfg = cfg

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newCheckCmd(a),
		newRulesCmd(a),
		newPromptCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)

	return root
}

// newLogger builds the stderr logger; stdout stays reserved for reports.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return cfg.Build()
}
