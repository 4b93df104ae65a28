// Package boundary answers caret-boundary questions over a read-only text
// buffer and its line/fragment structure: whether an offset sits exactly on
// a word, line, or paragraph boundary in a given direction, and where the
// nearest such boundary lies.
//
// The Navigator is stateless: every query is a pure function of the buffer
// and index contents at call time. Failed line, fragment, or character
// lookups are soft — queries report "not at boundary" or return an error
// satisfying errors.Is(err, ErrLookupMiss), and the host keeps the caret
// where it was. Nothing here panics on out-of-range input.
//
// Word classification is deliberately simple: a rune is part of a word iff
// it is a Unicode letter or decimal digit. This is not UAX #29 word
// segmentation; hosts wanting different rules plug in a Strategy under the
// Other granularity.
package boundary
