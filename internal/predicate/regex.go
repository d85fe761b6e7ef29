package predicate

import (
	"fmt"
	"regexp"
)

type regexPredicate struct {
	re *regexp.Regexp
}

func compileRegex(pattern string) (Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile regex pattern: %w", err)
	}

	return &regexPredicate{re: re}, nil
}

func (p *regexPredicate) Kind() Kind {
	return KindRegex
}

// Match emits one span per non-overlapping match, in text order. RE2 gives
// linear-time scanning, so a regex predicate cannot stall a file scan.
func (p *regexPredicate) Match(src []byte) ([]Span, error) {
	locs := p.re.FindAllIndex(src, -1)
	if len(locs) == 0 {
		return nil, nil
	}

	ix := newLineIndex(src)
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, ix.span(loc[0], loc[1]))
	}

	return spans, nil
}
