package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/ruleset"
)

func newRulesCmd(a *app) *cobra.Command {
	var ruleFiles []string
	var noBuiltin bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "query the loaded convention catalog",
	}

	cmd.PersistentFlags().StringSliceVar(&ruleFiles, "rules", nil, "rule document paths, in load order")
	cmd.PersistentFlags().BoolVar(&noBuiltin, "no-builtin", false, "skip the embedded starter catalog")

	load := func() (*ruleset.Set, error) {
		cfg := *a.cfg
		if cmd.PersistentFlags().Changed("rules") {
			cfg.Rules = ruleFiles
		}
		builtin := cfg.UseBuiltin()
		if cmd.PersistentFlags().Changed("no-builtin") {
			builtin = !noBuiltin
		}

		set, err := ruleset.Load(builtin, cfg.Rules...)
		if err != nil {
			return nil, fmt.Errorf("load rule set: %w", err)
		}

		return set, nil
	}

	cmd.AddCommand(newRulesListCmd(load), newRulesShowCmd(load))

	return cmd
}

func newRulesListCmd(load func() (*ruleset.Set, error)) *cobra.Command {
	var domain string
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list conventions, marking the machine-checkable ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := load()
			if err != nil {
				return err
			}

			var domainFilter convrules.Domain
			if domain != "" {
				if err := domainFilter.UnmarshalText([]byte(domain)); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tDOMAIN\tCATEGORY\tCHECKED\tSEVERITY")
			for _, c := range set.Conventions() {
				if domain != "" && c.Domain != domainFilter {
					continue
				}
				if category != "" && c.Category != category {
					continue
				}

				checked, severity := "-", "-"
				if rule, ok := set.Rule(c.ID); ok {
					checked = rule.Predicate.Kind().String()
					severity = rule.Severity.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Domain, c.Category, checked, severity)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "filter by domain")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")

	return cmd
}

func newRulesShowCmd(load func() (*ruleset.Set, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "show one convention and its rule, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := load()
			if err != nil {
				return err
			}

			id := args[0]
			conv, hasConv := set.Convention(id)
			rule, hasRule := set.Rule(id)
			if !hasConv && !hasRule {
				return fmt.Errorf("unknown convention or rule %q", id)
			}

			if hasConv {
				fmt.Printf("%s (%s, %s)\n\n", conv.ID, conv.Domain, conv.Category)
				fmt.Println(strings.TrimSpace(conv.Text))
				if conv.Example != "" {
					fmt.Printf("\nExample:\n%s\n", strings.TrimRight(conv.Example, "\n"))
				}
			} else {
				fmt.Printf("%s (undocumented: rule without a source convention)\n", id)
			}

			if hasRule {
				fmt.Printf("\nRule: %s predicate, severity %s, applies to %s\n",
					rule.Predicate.Kind(), rule.Severity, rule.Glob)
			} else {
				fmt.Println("\nProse-only: no machine-checkable rule.")
			}

			return nil
		},
	}
}
