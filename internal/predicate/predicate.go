package predicate

import (
	"encoding"
	"fmt"
)

// Kind represents varieties of match predicates.
type Kind int

const (
	kindInvalid Kind = iota

	// KindRegex matches an RE2 expression against the raw text.
	KindRegex

	// KindQuery runs a tree-sitter query against the parsed source.
	KindQuery
)

var kindValueMap = map[Kind]string{
	KindRegex: "regex",
	KindQuery: "query",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("kind-invalid(%d)", k)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Kind)(nil)

func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range kindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown kind %q of predicate", text)
}

func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", k)
	}

	return []byte(v), nil
}

// Span is one matched region of a source file. Offsets are bytes into the
// file, lines and columns are 1-based with byte columns.
type Span struct {
	Start int
	End   int

	Line    int
	Col     int
	EndLine int
	EndCol  int
}

// Predicate is a compiled match predicate. Implementations must be safe for
// concurrent Match calls: file scans run in parallel over a shared rule set.
type Predicate interface {
	Kind() Kind

	// Match scans src and returns matched spans in ascending Start order.
	// A returned error means this predicate misbehaved on this source; the
	// caller is expected to isolate it and continue with other rules.
	Match(src []byte) ([]Span, error)
}

// Compile builds a predicate of the given kind from its pattern. The lang
// argument is only consulted for query predicates, which need a grammar to
// compile against.
func Compile(kind Kind, pattern string, lang Lang) (Predicate, error) {
	switch kind {
	case KindRegex:
		return compileRegex(pattern)
	case KindQuery:
		return compileQuery(pattern, lang)
	default:
		return nil, fmt.Errorf("cannot compile predicate of invalid kind(%d)", kind)
	}
}
