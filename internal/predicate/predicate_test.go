package predicate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileRegexFailure(t *testing.T) {
	_, err := Compile(KindRegex, `(*unclosed`, 0)
	require.Error(t, err)
}

func TestCompileInvalidKind(t *testing.T) {
	_, err := Compile(Kind(0), `x`, 0)
	require.Error(t, err)
}

func TestRegexSpans(t *testing.T) {
	p, err := Compile(KindRegex, `\bvar\b`, 0)
	require.NoError(t, err)
	require.Equal(t, KindRegex, p.Kind())

	src := []byte("var x = 1;\nlet y = 2;\n  var z;\n")
	spans, err := p.Match(src)
	require.NoError(t, err)
	require.Len(t, spans, 2)

	require.Equal(t, 1, spans[0].Line)
	require.Equal(t, 1, spans[0].Col)
	require.Equal(t, 1, spans[0].EndLine)
	require.Equal(t, 4, spans[0].EndCol)

	require.Equal(t, 3, spans[1].Line)
	require.Equal(t, 3, spans[1].Col)
}

func TestRegexNoMatch(t *testing.T) {
	p, err := Compile(KindRegex, `\bvar\b`, 0)
	require.NoError(t, err)

	spans, err := p.Match([]byte("let x = 1;\n"))
	require.NoError(t, err)
	require.Empty(t, spans)
}

func TestKindText(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("query")))
	require.Equal(t, KindQuery, k)
	require.Error(t, k.UnmarshalText([]byte("ast")))
}

func TestLineIndex(t *testing.T) {
	ix := newLineIndex([]byte("ab\ncdef\n\nxyz"))

	type test struct {
		offset int
		line   int
		col    int
	}
	tests := []test{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline belongs to its line
		{3, 2, 1},
		{7, 2, 5},
		{8, 3, 1},
		{9, 4, 1},
		{11, 4, 3},
	}
	for _, tt := range tests {
		line, col := ix.pos(tt.offset)
		if line != tt.line || col != tt.col {
			t.Fatalf("offset %d: expected %d:%d, got %d:%d", tt.offset, tt.line, tt.col, line, col)
		}
	}
}
