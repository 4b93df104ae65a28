package buffer

import (
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// clusterIndex maps rune offsets to grapheme cluster boundaries.
// It is populated lazily on first lookup; the sync.Once makes concurrent
// read calls safe on an otherwise immutable buffer.
type clusterIndex struct {
	once   sync.Once
	starts []Offset // start offset of each cluster, ascending
	total  Offset   // buffer length in runes
}

func (c *clusterIndex) build(text string) {
	runeOff := Offset(0)
	state := -1
	rest := text
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		c.starts = append(c.starts, runeOff)
		runeOff += utf8.RuneCountInString(cluster)
		rest = tail
		state = newState
	}
	c.total = runeOff
}

// rangeContaining returns the cluster range containing offset.
// The caller guarantees offset is in [0, Len).
func (c *clusterIndex) rangeContaining(text string, offset Offset) Range {
	c.once.Do(func() { c.build(text) })

	// First cluster start > offset; the containing cluster precedes it.
	i := sort.Search(len(c.starts), func(i int) bool {
		return c.starts[i] > offset
	})
	start := c.starts[i-1]
	end := c.total
	if i < len(c.starts) {
		end = c.starts[i]
	}
	return Range{Start: start, End: end}
}
