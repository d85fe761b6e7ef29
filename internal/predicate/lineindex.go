package predicate

import "bytes"

// lineIndex maps byte offsets of a source buffer to 1-based line/column
// positions. Built once per Match call and dropped afterwards.
type lineIndex []int

func newLineIndex(src []byte) lineIndex {
	starts := lineIndex{0}
	for off := 0; ; {
		i := bytes.IndexByte(src[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		starts = append(starts, off)
	}

	return starts
}

// pos translates a byte offset into a 1-based (line, column) pair. Offsets
// past the end of the buffer land on the last line.
func (ix lineIndex) pos(offset int) (line, col int) {
	lo, hi := 0, len(ix)
	for lo < hi {
		mid := (lo + hi) / 2
		if ix[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line = lo // ix[lo-1] <= offset < ix[lo]

	return line, offset - ix[line-1] + 1
}

// span builds a Span for the [start, end) byte range.
func (ix lineIndex) span(start, end int) Span {
	s := Span{Start: start, End: end}
	s.Line, s.Col = ix.pos(start)
	s.EndLine, s.EndCol = ix.pos(end)

	return s
}
