// Package textnav provides text-boundary navigation for caret movement and
// selection extension: word, line, and paragraph boundary tests and seeks
// over a buffer organized into logical lines and wrapped visual fragments.
//
// The package is a facade over three subpackages:
//
//   - buffer: offset/range value types, the TextBuffer view, and the
//     RuneBuffer implementation with grapheme cluster lookup
//   - layout: Line and Fragment structure with concrete line and wrap
//     indexes
//   - boundary: the stateless Navigator answering boundary queries
//
// # Basic Usage
//
// Create a session over some text and ask boundary questions:
//
//	s := textnav.New("ab cd\nef")
//
//	pos, _ := s.Seek(0, textnav.Word, textnav.Forward)
//	// pos.Offset() == 2, the end of "ab"
//
//	pos, _ = s.Seek(0, textnav.Paragraph, textnav.Forward)
//	// pos.Offset() == 5, stopping at the newline (exclusive)
//
//	at := s.IsBoundary(2, textnav.Word, textnav.Forward)
//	// true: alnum before offset 2, non-alnum at it
//
// # Wrapping
//
// Line boundary seeks stop at visual fragment edges. Configure wrapping to
// split long lines into fragments:
//
//	s := textnav.New(text, textnav.WithWrapWidth(80))
//
// A forward line seek on a non-final fragment steps back one grapheme
// cluster from the wrap point so the caret stays on its visual row; on the
// final fragment it lands just before the line's delimiter.
//
// # Host Views
//
// Hosts with their own storage supply the three views directly:
//
//	s := textnav.NewWithViews(myBuffer, myLines, myFragments)
//
// Lookups the views cannot resolve surface as errors satisfying
// errors.Is(err, textnav.ErrLookupMiss); the caret should stay put.
//
// Every Session is an independently owned instance; the package keeps no
// global state.
package textnav
