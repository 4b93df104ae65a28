package layout

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/textnav/buffer"
)

// Default wrap configuration values.
const (
	DefaultTabWidth = 4

	// wordBreakScan bounds the backward search for a break space.
	wordBreakScan = 20
)

// WrapIndex is a FragmentIndex that wraps each line's content into visual
// fragments no wider than a configured column count. Widths are measured
// per grapheme cluster, so a wrap point never splits a composed character
// sequence. Fragments are computed per line on first lookup and cached.
//
// The final fragment of a line ends at the line's TotalLength, delimiter
// included, so a caret at end of line always resolves to it.
type WrapIndex struct {
	buf       buffer.TextBuffer
	width     int // 0 = no wrap
	tabWidth  int
	wordBreak bool

	mu    sync.Mutex
	cache map[Line][]Fragment
}

// NewWrapIndex creates a fragment index over the given buffer with
// wrapping disabled.
func NewWrapIndex(buf buffer.TextBuffer) *WrapIndex {
	return &WrapIndex{
		buf:       buf,
		tabWidth:  DefaultTabWidth,
		wordBreak: true,
		cache:     make(map[Line][]Fragment),
	}
}

// SetWrap configures wrapping. A width of 0 disables wrapping (one
// fragment per line); atWord breaks at the last space on the row when one
// is near enough. Clears the fragment cache.
func (w *WrapIndex) SetWrap(width int, atWord bool) {
	if width < 0 {
		width = 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width = width
	w.wordBreak = atWord
	w.cache = make(map[Line][]Fragment)
}

// SetTabWidth sets the column width of a tab. Clears the fragment cache.
func (w *WrapIndex) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tabWidth = width
	w.cache = make(map[Line][]Fragment)
}

// FragmentContaining returns the fragment covering the given line-local
// offset. The line's one-past-end local offset resolves to the final
// fragment so that a caret at end of buffer still has a fragment. Local
// offsets outside [0, TotalLength] miss.
func (w *WrapIndex) FragmentContaining(local int, line Line) (Fragment, bool) {
	if local < 0 || local > line.TotalLength {
		return Fragment{}, false
	}

	frags := w.fragments(line)
	for _, f := range frags {
		if f.Contains(local) {
			return f, true
		}
	}
	return frags[len(frags)-1], true
}

// Fragments returns all fragments of the line in order.
func (w *WrapIndex) Fragments(line Line) []Fragment {
	return w.fragments(line)
}

func (w *WrapIndex) fragments(line Line) []Fragment {
	w.mu.Lock()
	defer w.mu.Unlock()

	if frags, ok := w.cache[line]; ok {
		return frags
	}
	frags := w.computeLocked(line)
	w.cache[line] = frags
	return frags
}

// measuredCluster is one grapheme cluster of a line's content.
type measuredCluster struct {
	start int // local rune offset
	width int // display columns
	space bool
}

func (w *WrapIndex) computeLocked(line Line) []Fragment {
	if w.width <= 0 {
		return []Fragment{{Start: 0, End: line.TotalLength}}
	}

	clusters := w.measure(line)
	var frags []Fragment
	rowStart := 0
	col := 0
	for i, cl := range clusters {
		if col+cl.width > w.width && cl.start > rowStart {
			br := cl.start
			if w.wordBreak {
				if s := breakAfterSpace(clusters, i, rowStart); s > rowStart {
					br = s
				}
			}
			frags = append(frags, Fragment{Start: rowStart, End: br})
			rowStart = br
			col = 0
			for j := i - 1; j >= 0 && clusters[j].start >= br; j-- {
				col += clusters[j].width
			}
		}
		col += cl.width
	}
	frags = append(frags, Fragment{Start: rowStart, End: line.TotalLength})
	return frags
}

// measure splits the line's content (delimiter excluded) into grapheme
// clusters with display widths. Tabs count as a full tab stop.
func (w *WrapIndex) measure(line Line) []measuredCluster {
	content := make([]rune, 0, line.ContentLength())
	for off := line.Start; off < line.ContentEnd(); off++ {
		r, ok := w.buf.CharacterAt(off)
		if !ok {
			break
		}
		content = append(content, r)
	}

	var clusters []measuredCluster
	local := 0
	state := -1
	rest := string(content)
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		mc := measuredCluster{start: local}
		switch cluster {
		case "\t":
			mc.width = w.tabWidth
		case " ":
			mc.width = 1
			mc.space = true
		default:
			mc.width = runewidth.StringWidth(cluster)
		}
		clusters = append(clusters, mc)
		local += utf8.RuneCountInString(cluster)
		rest = tail
		state = newState
	}
	return clusters
}

// breakAfterSpace looks backward from the overflowing cluster for a space
// to break after, within a bounded distance. Returns the local offset just
// past the space, or rowStart if none is close enough.
func breakAfterSpace(clusters []measuredCluster, i, rowStart int) int {
	for j := i - 1; j >= 0 && i-j <= wordBreakScan; j-- {
		cl := clusters[j]
		if cl.start <= rowStart {
			break
		}
		if cl.space {
			return cl.start + 1
		}
	}
	return rowStart
}
