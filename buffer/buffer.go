package buffer

// TextBuffer is the read-only view of a text store consumed by boundary
// navigation. Implementations must not mutate underneath a caller; the host
// is responsible for serializing edits against navigation.
type TextBuffer interface {
	// Len returns the buffer length in runes.
	Len() Offset

	// CharacterAt returns the rune at the given offset.
	// Returns false if the offset is outside [0, Len).
	CharacterAt(offset Offset) (rune, bool)

	// GraphemeRange returns the range of the composed character sequence
	// (grapheme cluster) containing the given offset. The end-of-buffer
	// offset yields the empty range [Len, Len). Returns false if the
	// offset is outside [0, Len].
	GraphemeRange(offset Offset) (Range, bool)
}

// RuneBuffer is an immutable TextBuffer backed by a rune slice.
// Construction copies the text once; all lookups are O(1) except
// GraphemeRange, which builds a cluster index lazily on first use.
type RuneBuffer struct {
	text  string
	runes []rune

	clusters clusterIndex
}

// NewRuneBuffer creates a buffer holding the given text.
func NewRuneBuffer(text string) *RuneBuffer {
	return &RuneBuffer{
		text:  text,
		runes: []rune(text),
	}
}

// Len returns the buffer length in runes.
func (b *RuneBuffer) Len() Offset {
	return len(b.runes)
}

// CharacterAt returns the rune at the given offset.
func (b *RuneBuffer) CharacterAt(offset Offset) (rune, bool) {
	if offset < 0 || offset >= len(b.runes) {
		return 0, false
	}
	return b.runes[offset], true
}

// GraphemeRange returns the grapheme cluster range containing offset.
func (b *RuneBuffer) GraphemeRange(offset Offset) (Range, bool) {
	if offset < 0 || offset > len(b.runes) {
		return Range{}, false
	}
	if offset == len(b.runes) {
		return Range{Start: offset, End: offset}, true
	}
	return b.clusters.rangeContaining(b.text, offset), true
}

// String returns the buffer content.
func (b *RuneBuffer) String() string {
	return b.text
}

// Slice returns the text within the given range, clamped to the buffer.
func (b *RuneBuffer) Slice(r Range) string {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > len(b.runes) {
		end = len(b.runes)
	}
	if start >= end {
		return ""
	}
	return string(b.runes[start:end])
}
