package layout

import (
	"sort"

	"github.com/dshills/textnav/buffer"
)

// DelimiterIndex is a LineIndex built by scanning a buffer for the three
// recognized line endings: "\n", "\r", and "\r\n" (a CR immediately
// followed by LF counts as one two-rune delimiter).
//
// The index always holds at least one line: an empty buffer has a single
// empty final line, and a buffer ending in a delimiter has a trailing
// empty final line. The end-of-buffer offset therefore always resolves.
type DelimiterIndex struct {
	lines []Line
	total buffer.Offset
}

// NewDelimiterIndex scans the buffer and builds its line table.
func NewDelimiterIndex(buf buffer.TextBuffer) *DelimiterIndex {
	idx := &DelimiterIndex{total: buf.Len()}

	start := buffer.Offset(0)
	i := buffer.Offset(0)
	for i < idx.total {
		r, _ := buf.CharacterAt(i)
		delim := 0
		switch r {
		case '\n':
			delim = 1
		case '\r':
			delim = 1
			if next, ok := buf.CharacterAt(i + 1); ok && next == '\n' {
				delim = 2
			}
		}
		if delim == 0 {
			i++
			continue
		}
		end := i + buffer.Offset(delim)
		idx.lines = append(idx.lines, Line{
			Start:           start,
			TotalLength:     int(end - start),
			DelimiterLength: delim,
		})
		start = end
		i = end
	}

	// Final line, possibly empty, never delimiter-terminated.
	idx.lines = append(idx.lines, Line{
		Start:       start,
		TotalLength: int(idx.total - start),
	})
	return idx
}

// LineCount returns the number of lines in the index.
func (idx *DelimiterIndex) LineCount() int {
	return len(idx.lines)
}

// LineAt returns the nth line (0-indexed).
// Returns false if n is out of range.
func (idx *DelimiterIndex) LineAt(n int) (Line, bool) {
	if n < 0 || n >= len(idx.lines) {
		return Line{}, false
	}
	return idx.lines[n], true
}

// LineContaining returns the line containing the given offset.
// The end-of-buffer offset resolves to the final line. Offsets outside
// [0, Len] miss.
func (idx *DelimiterIndex) LineContaining(offset buffer.Offset) (Line, bool) {
	if offset < 0 || offset > idx.total {
		return Line{}, false
	}

	// First line starting after offset; the containing line precedes it.
	i := sort.Search(len(idx.lines), func(i int) bool {
		return idx.lines[i].Start > offset
	})
	return idx.lines[i-1], true
}
