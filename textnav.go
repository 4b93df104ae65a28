package textnav

import (
	"strings"

	"github.com/dshills/textnav/boundary"
	"github.com/dshills/textnav/buffer"
	"github.com/dshills/textnav/layout"
)

// Offset is an alias for buffer.Offset for convenience.
type Offset = buffer.Offset

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// TextBuffer is an alias for buffer.TextBuffer for convenience.
type TextBuffer = buffer.TextBuffer

// LineIndex is an alias for layout.LineIndex for convenience.
type LineIndex = layout.LineIndex

// FragmentIndex is an alias for layout.FragmentIndex for convenience.
type FragmentIndex = layout.FragmentIndex

// Granularity is an alias for boundary.Granularity for convenience.
type Granularity = boundary.Granularity

// Direction is an alias for boundary.Direction for convenience.
type Direction = boundary.Direction

// Move is an alias for boundary.Move for convenience.
type Move = boundary.Move

// Strategy is an alias for boundary.Strategy for convenience.
type Strategy = boundary.Strategy

// Re-exported granularity and direction values.
const (
	Word      = boundary.Word
	Line      = boundary.Line
	Paragraph = boundary.Paragraph
	Other     = boundary.Other

	Forward  = boundary.Forward
	Backward = boundary.Backward

	StorageForward  = boundary.StorageForward
	StorageBackward = boundary.StorageBackward
	LayoutLeft      = boundary.LayoutLeft
	LayoutRight     = boundary.LayoutRight
	LayoutUp        = boundary.LayoutUp
	LayoutDown      = boundary.LayoutDown
)

// Session is a per-editor-session navigation instance: a buffer, its line
// and fragment structure, and a navigator over them. Sessions are
// explicitly owned by their host; there is no shared global instance.
type Session struct {
	buf   buffer.TextBuffer
	lines layout.LineIndex
	frags layout.FragmentIndex
	nav   *boundary.Navigator
}

// New creates a session over the given text with the default views:
// a RuneBuffer, a DelimiterIndex, and a WrapIndex.
func New(text string, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := buffer.NewRuneBuffer(text)
	lines := layout.NewDelimiterIndex(buf)
	frags := layout.NewWrapIndex(buf)
	frags.SetTabWidth(cfg.tabWidth)
	frags.SetWrap(cfg.wrapWidth, cfg.wordBreak)

	return &Session{
		buf:   buf,
		lines: lines,
		frags: frags,
		nav:   boundary.NewNavigator(buf, lines, frags, cfg.fallback),
	}
}

// NewWithViews creates a session over host-supplied views. Only the
// fallback-strategy option applies; wrap options configure the default
// WrapIndex and are ignored here.
func NewWithViews(buf buffer.TextBuffer, lines layout.LineIndex, frags layout.FragmentIndex, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session{
		buf:   buf,
		lines: lines,
		frags: frags,
		nav:   boundary.NewNavigator(buf, lines, frags, cfg.fallback),
	}
}

// IsBoundary reports whether offset is exactly at a boundary of the given
// granularity in the given direction.
func (s *Session) IsBoundary(offset Offset, granularity Granularity, dir Direction) bool {
	return s.nav.IsBoundary(offset, granularity, dir)
}

// Seek returns the nearest boundary of the given granularity from offset
// in the given direction. On error (errors.Is(err, ErrLookupMiss)) the
// caret should not move.
func (s *Session) Seek(offset Offset, granularity Granularity, dir Direction) (Position, error) {
	return s.nav.Seek(offset, granularity, dir)
}

// SeekMove is Seek with a host-vocabulary direction: storage-forward,
// right, and down seek forward; all others seek backward.
func (s *Session) SeekMove(offset Offset, granularity Granularity, move Move) (Position, error) {
	return s.nav.Seek(offset, granularity, move.Normalize())
}

// Len returns the buffer length in runes.
func (s *Session) Len() Offset {
	return s.buf.Len()
}

// Text returns the buffer content.
func (s *Session) Text() string {
	if rb, ok := s.buf.(*buffer.RuneBuffer); ok {
		return rb.String()
	}
	var sb strings.Builder
	for i := Offset(0); i < s.buf.Len(); i++ {
		r, ok := s.buf.CharacterAt(i)
		if !ok {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Buffer returns the session's text view.
func (s *Session) Buffer() buffer.TextBuffer {
	return s.buf
}

// Lines returns the session's line index.
func (s *Session) Lines() layout.LineIndex {
	return s.lines
}

// Fragments returns the session's fragment index.
func (s *Session) Fragments() layout.FragmentIndex {
	return s.frags
}
