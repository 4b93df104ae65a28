// Package buffer provides the read-only text store consumed by boundary
// navigation: offset and range value types, the TextBuffer view interface,
// and RuneBuffer, an immutable implementation with grapheme cluster lookup.
//
// All offsets are zero-based rune indexes. The end-of-buffer offset
// (Len()) is a valid caret position distinct from the last character.
package buffer
