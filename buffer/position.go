package buffer

import "fmt"

// Offset represents a rune position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type Offset = int

// Position represents an insertion point in the buffer.
// Position is an immutable value type.
type Position struct {
	offset Offset
}

// NewPosition creates a position at the given offset.
func NewPosition(offset Offset) Position {
	if offset < 0 {
		offset = 0
	}
	return Position{offset: offset}
}

// Offset returns the position's rune offset.
func (p Position) Offset() Offset {
	return p.offset
}

// Clamp returns a position clamped to the valid range [0, maxOffset].
func (p Position) Clamp(maxOffset Offset) Position {
	if p.offset < 0 {
		return Position{offset: 0}
	}
	if p.offset > maxOffset {
		return Position{offset: maxOffset}
	}
	return p
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("Position(%d)", p.offset)
}

// Equals returns true if two positions are at the same offset.
func (p Position) Equals(other Position) bool {
	return p.offset == other.offset
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.offset < other.offset {
		return -1
	}
	if p.offset > other.offset {
		return 1
	}
	return 0
}

// Before returns true if p is before other.
func (p Position) Before(other Position) bool {
	return p.offset < other.offset
}

// After returns true if p is after other.
func (p Position) After(other Position) bool {
	return p.offset > other.offset
}

// Range represents a rune range in the buffer.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Offset // Inclusive start position
	End   Offset // Exclusive end position
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end Offset) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in runes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset Offset) bool {
	return offset >= r.Start && offset < r.End
}
