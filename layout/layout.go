// Package layout models the line and fragment structure of a buffer: logical
// delimiter-terminated lines, and the visual fragments those lines wrap into
// for display. It provides the index interfaces consumed by boundary
// navigation plus concrete implementations (DelimiterIndex, WrapIndex).
package layout

import "github.com/dshills/textnav/buffer"

// Line is a logical, delimiter-terminated run of text in the buffer.
// Line is an immutable value type.
type Line struct {
	// Start is the offset of the line's first rune.
	Start buffer.Offset

	// TotalLength is the number of runes in the line, delimiter included.
	TotalLength int

	// DelimiterLength is the length of the line-ending sequence:
	// 0 (final line), 1 ("\n" or "\r"), or 2 ("\r\n").
	DelimiterLength int
}

// End returns the offset one past the line, delimiter included.
func (l Line) End() buffer.Offset {
	return l.Start + l.TotalLength
}

// ContentLength returns the line length excluding the delimiter.
func (l Line) ContentLength() int {
	return l.TotalLength - l.DelimiterLength
}

// ContentEnd returns the offset of the line's delimiter (or End on a
// final line with no delimiter).
func (l Line) ContentEnd() buffer.Offset {
	return l.Start + l.ContentLength()
}

// Contains returns true if the offset falls within [Start, End).
func (l Line) Contains(offset buffer.Offset) bool {
	return offset >= l.Start && offset < l.End()
}

// Fragment is a visual sub-range of a Line produced by wrapping, in the
// line's local coordinate space: [Start, End) relative to Line.Start.
type Fragment struct {
	Start int // Inclusive local start offset
	End   int // Exclusive local end offset
}

// Len returns the fragment length in runes.
func (f Fragment) Len() int {
	return f.End - f.Start
}

// Contains returns true if the local offset falls within [Start, End).
func (f Fragment) Contains(local int) bool {
	return local >= f.Start && local < f.End
}

// LineIndex maps buffer offsets to the logical lines containing them.
// Indexes may be lazily populated; a miss reports false rather than an
// error, and callers treat it as "position unresolvable right now".
type LineIndex interface {
	LineContaining(offset buffer.Offset) (Line, bool)
}

// FragmentIndex maps line-local offsets to the visual fragments
// containing them.
type FragmentIndex interface {
	FragmentContaining(local int, line Line) (Fragment, bool)
}
