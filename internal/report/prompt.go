package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/ruleset"
)

// RenderPrompt writes one domain's conventions as a plain-text block meant to
// be pasted into an AI coding assistant prompt. Output is deterministic:
// catalog declaration order, category mentioned inline, examples indented.
func RenderPrompt(w io.Writer, set *ruleset.Set, domain convrules.Domain) error {
	conventions := set.ConventionsFor(domain)
	if len(conventions) == 0 {
		return fmt.Errorf("no conventions loaded for domain %s", domain)
	}

	fmt.Fprintf(w, "Follow these %s coding conventions:\n\n", domain)
	for i, c := range conventions {
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, c.Category, strings.TrimSpace(c.Text))
		if c.Example != "" {
			fmt.Fprintln(w, "   Example:")
			for _, line := range strings.Split(strings.TrimRight(c.Example, "\n"), "\n") {
				fmt.Fprintf(w, "   %s\n", line)
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}
