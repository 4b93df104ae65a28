package layout

import (
	"testing"

	"github.com/dshills/textnav/buffer"
)

func wrapOver(text string, width int, atWord bool) (*WrapIndex, *DelimiterIndex) {
	buf := buffer.NewRuneBuffer(text)
	w := NewWrapIndex(buf)
	w.SetWrap(width, atWord)
	return w, NewDelimiterIndex(buf)
}

func TestWrapDisabled(t *testing.T) {
	w, lines := wrapOver("hello\nworld", 0, true)

	line, _ := lines.LineAt(0)
	frags := w.Fragments(line)
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if (frags[0] != Fragment{Start: 0, End: 6}) {
		t.Errorf("fragment = %+v, want [0:6)", frags[0])
	}
}

func TestWrapHardBreak(t *testing.T) {
	w, lines := wrapOver("abcdef", 3, false)

	line, _ := lines.LineAt(0)
	frags := w.Fragments(line)
	want := []Fragment{{0, 3}, {3, 6}}
	if len(frags) != len(want) {
		t.Fatalf("fragments = %+v, want %+v", frags, want)
	}
	for i := range want {
		if frags[i] != want[i] {
			t.Errorf("fragment %d = %+v, want %+v", i, frags[i], want[i])
		}
	}
}

func TestWrapAtWord(t *testing.T) {
	w, lines := wrapOver("ab cdef", 4, true)

	line, _ := lines.LineAt(0)
	frags := w.Fragments(line)
	// Break after the space, not mid-"cdef".
	want := []Fragment{{0, 3}, {3, 7}}
	if len(frags) != 2 || frags[0] != want[0] || frags[1] != want[1] {
		t.Errorf("fragments = %+v, want %+v", frags, want)
	}
}

func TestWrapFinalFragmentIncludesDelimiter(t *testing.T) {
	w, lines := wrapOver("abcdef\nz", 3, false)

	line, _ := lines.LineAt(0)
	frags := w.Fragments(line)
	last := frags[len(frags)-1]
	if last.End != line.TotalLength {
		t.Errorf("final fragment ends at %d, want TotalLength %d", last.End, line.TotalLength)
	}
}

func TestWrapNeverSplitsCluster(t *testing.T) {
	// "a", "e"+combining acute, "c", "d": the two-rune cluster straddles
	// column 2, so the wrap point must not land inside it.
	w, lines := wrapOver("ae\u0301cd", 2, false)

	line, _ := lines.LineAt(0)
	frags := w.Fragments(line)
	for _, f := range frags {
		if f.Start == 2 || f.End == 2 {
			t.Errorf("fragment %+v splits the composed sequence [1,3)", f)
		}
	}
}

func TestWrapTabWidth(t *testing.T) {
	buf := buffer.NewRuneBuffer("\tab")
	w := NewWrapIndex(buf)
	w.SetTabWidth(4)
	w.SetWrap(5, false)
	lines := NewDelimiterIndex(buf)

	line, _ := lines.LineAt(0)
	frags := w.Fragments(line)
	// Tab (4 cols) + "a" fills the row; "b" wraps.
	want := []Fragment{{0, 2}, {2, 3}}
	if len(frags) != 2 || frags[0] != want[0] || frags[1] != want[1] {
		t.Errorf("fragments = %+v, want %+v", frags, want)
	}
}

func TestFragmentContaining(t *testing.T) {
	w, lines := wrapOver("abcdef", 3, false)
	line, _ := lines.LineAt(0)

	tests := []struct {
		local int
		want  Fragment
		ok    bool
	}{
		{0, Fragment{0, 3}, true},
		{2, Fragment{0, 3}, true},
		{3, Fragment{3, 6}, true},
		{5, Fragment{3, 6}, true},
		{6, Fragment{3, 6}, true}, // one-past-end resolves to the final fragment
		{7, Fragment{}, false},
		{-1, Fragment{}, false},
	}
	for _, tt := range tests {
		frag, ok := w.FragmentContaining(tt.local, line)
		if ok != tt.ok {
			t.Errorf("FragmentContaining(%d) ok = %v, want %v", tt.local, ok, tt.ok)
			continue
		}
		if ok && frag != tt.want {
			t.Errorf("FragmentContaining(%d) = %+v, want %+v", tt.local, frag, tt.want)
		}
	}
}

func TestFragmentContainingEmptyLine(t *testing.T) {
	w, lines := wrapOver("", 10, true)
	line, _ := lines.LineAt(0)

	frag, ok := w.FragmentContaining(0, line)
	if !ok {
		t.Fatal("empty line should still yield its fragment")
	}
	if frag.Len() != 0 {
		t.Errorf("fragment = %+v, want empty", frag)
	}
}

func TestFragmentsPartitionLine(t *testing.T) {
	w, lines := wrapOver("the quick brown fox jumps over the lazy dog\nend", 10, true)

	line, _ := lines.LineAt(0)
	frags := w.Fragments(line)
	next := 0
	for i, f := range frags {
		if f.Start != next {
			t.Errorf("fragment %d starts at %d, want %d", i, f.Start, next)
		}
		if f.End < f.Start {
			t.Errorf("fragment %d inverted: %+v", i, f)
		}
		next = f.End
	}
	if next != line.TotalLength {
		t.Errorf("fragments cover %d runes, want %d", next, line.TotalLength)
	}
}
