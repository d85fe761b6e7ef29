package predicate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileQueryNeedsLang(t *testing.T) {
	_, err := Compile(KindQuery, `(variable_declaration) @decl`, 0)
	require.Error(t, err)
}

func TestCompileQueryFailure(t *testing.T) {
	_, err := Compile(KindQuery, `(no_such_node) @x`, LangJavaScript)
	require.Error(t, err)
}

func TestQueryVarDeclarations(t *testing.T) {
	p, err := Compile(KindQuery, `(variable_declaration) @decl`, LangJavaScript)
	require.NoError(t, err)
	require.Equal(t, KindQuery, p.Kind())

	src := []byte("var x = 1;\nlet y = 2;\nconst z = 3;\nvar w;\n")
	spans, err := p.Match(src)
	require.NoError(t, err)
	require.Len(t, spans, 2, "only var declarations, not let/const")

	require.Equal(t, 1, spans[0].Line)
	require.Equal(t, 1, spans[0].Col)
	require.Equal(t, 4, spans[1].Line)
}

func TestQueryFilterPredicates(t *testing.T) {
	p, err := Compile(KindQuery, `((call function: (identifier) @fn) (#eq? @fn "print"))`, LangPython)
	require.NoError(t, err)

	src := []byte("print(\"hello\")\nlog(\"quiet\")\nprint(42)\n")
	spans, err := p.Match(src)
	require.NoError(t, err)
	require.Len(t, spans, 2)
	require.Equal(t, 1, spans[0].Line)
	require.Equal(t, 3, spans[1].Line)
}

func TestQueryToleratesSyntaxErrors(t *testing.T) {
	p, err := Compile(KindQuery, `(variable_declaration) @decl`, LangJavaScript)
	require.NoError(t, err)

	// The broken trailing line must not fail the whole file.
	src := []byte("var x = 1;\nfunction ((( {\n")
	spans, err := p.Match(src)
	require.NoError(t, err)
	require.Len(t, spans, 1)
}

func TestLangText(t *testing.T) {
	var l Lang
	require.NoError(t, l.UnmarshalText([]byte("php")))
	require.Equal(t, LangPHP, l)
	require.Error(t, l.UnmarshalText([]byte("cobol")))
}
