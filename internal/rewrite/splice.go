package rewrite

import (
	"bytes"
	"sort"
)

// Span is a half-open byte range [Start, End) within a buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Splice returns a new buffer equal to content with the bytes in span
// replaced by replacement. content itself is not modified.
func Splice(content []byte, span Span, replacement []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(content) - span.Len() + len(replacement))
	out.Write(content[:span.Start])
	out.Write(replacement)
	out.Write(content[span.End:])
	return out.Bytes()
}

// BuildLineOffsets returns a slice of byte offsets where each line begins.
// E.g. if content[0]=='a' and content[5]=='\n', then offsets = [0,6,...].
func BuildLineOffsets(content []byte) []int {
	offsets := []int{0}
	for i, b := range content {
		if b == '\n' && i+1 < len(content) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// LineIndexOfByte returns the 0-based line index that contains offset
// (a byte index into the content the offsets were built from).
func LineIndexOfByte(offsets []int, offset int) int {
	i := sort.Search(len(offsets), func(i int) bool {
		return offsets[i] > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}
