package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/report"
	"github.com/sirkon/convlint/internal/ruleset"
)

func newPromptCmd(a *app) *cobra.Command {
	var ruleFiles []string
	var noBuiltin bool
	var domain string

	cmd := &cobra.Command{
		Use:   "prompt --domain <domain>",
		Short: "render a domain's conventions for pasting into an assistant prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			var d convrules.Domain
			if err := d.UnmarshalText([]byte(domain)); err != nil {
				return err
			}

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

			return report.RenderPrompt(os.Stdout, set, d)
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "domain to render (python|bash|nodejs|laravel|wordpress)")
	cmd.Flags().StringSliceVar(&ruleFiles, "rules", nil, "rule document paths, in load order")
	cmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "skip the embedded starter catalog")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}
