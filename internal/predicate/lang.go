package predicate

import (
	"encoding"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
)

// Lang represents the grammars query predicates can be compiled against.
type Lang int

const (
	langInvalid Lang = iota

	LangPython
	LangBash
	LangJavaScript
	LangPHP
)

var langValueMap = map[Lang]string{
	LangPython:     "python",
	LangBash:       "bash",
	LangJavaScript: "javascript",
	LangPHP:        "php",
}

func (l Lang) String() string {
	v, ok := langValueMap[l]
	if !ok {
		return fmt.Sprintf("lang-invalid(%d)", l)
	}

	return v
}

// Valid reports whether l names a known grammar.
func (l Lang) Valid() bool {
	_, ok := langValueMap[l]
	return ok
}

func (l Lang) language() *sitter.Language {
	switch l {
	case LangPython:
		return python.GetLanguage()
	case LangBash:
		return bash.GetLanguage()
	case LangJavaScript:
		return javascript.GetLanguage()
	case LangPHP:
		return php.GetLanguage()
	default:
		return nil
	}
}

var _ encoding.TextUnmarshaler = (*Lang)(nil)

func (l *Lang) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range langValueMap {
		if v == text {
			*l = k
			return nil
		}
	}

	return fmt.Errorf("unknown lang %q", text)
}

func (l Lang) MarshalText() ([]byte, error) {
	v, ok := langValueMap[l]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Lang(%d)", l)
	}

	return []byte(v), nil
}
