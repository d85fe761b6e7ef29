package predicate

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

type queryPredicate struct {
	query *sitter.Query
	lang  Lang
}

func compileQuery(pattern string, lang Lang) (Predicate, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("query predicate needs a lang, got %s", lang)
	}

	q, err := sitter.NewQuery([]byte(pattern), lang.language())
	if err != nil {
		return nil, fmt.Errorf("compile tree-sitter query: %w", err)
	}

	return &queryPredicate{query: q, lang: lang}, nil
}

func (p *queryPredicate) Kind() Kind {
	return KindQuery
}

// Match parses src with the bound grammar and emits one span per query
// capture. Parsing is error-tolerant: a file with localized syntax errors
// still yields captures outside the broken regions.
func (p *queryPredicate) Match(src []byte) ([]Span, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.lang.language())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s source: %w", p.lang, err)
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(p.query, tree.RootNode())

	ix := newLineIndex(src)
	var spans []Span
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}

		m = cursor.FilterPredicates(m, src)
		for _, capture := range m.Captures {
			spans = append(spans, ix.span(int(capture.Node.StartByte()), int(capture.Node.EndByte())))
		}
	}

	// Captures arrive in match order which is not strictly text order
	// for overlapping patterns.
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	return spans, nil
}
