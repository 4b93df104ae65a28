package textnav

import "github.com/dshills/textnav/boundary"

// Default configuration values.
const (
	DefaultTabWidth = 4
)

type config struct {
	wrapWidth int
	tabWidth  int
	wordBreak bool
	fallback  boundary.Strategy
}

func defaultConfig() config {
	return config{
		wrapWidth: 0, // no wrap
		tabWidth:  DefaultTabWidth,
		wordBreak: true,
	}
}

// Option configures a Session during creation.
type Option func(*config)

// WithWrapWidth enables line wrapping at the given display-column width.
// A width of 0 disables wrapping (one fragment per line).
func WithWrapWidth(width int) Option {
	return func(c *config) {
		if width >= 0 {
			c.wrapWidth = width
		}
	}
}

// WithTabWidth sets the column width of a tab for wrap measurement.
func WithTabWidth(width int) Option {
	return func(c *config) {
		if width > 0 {
			c.tabWidth = width
		}
	}
}

// WithWordBreak controls whether wrapping prefers breaking after a space
// near the wrap column.
func WithWordBreak(atWord bool) Option {
	return func(c *config) {
		c.wordBreak = atWord
	}
}

// WithFallback sets the strategy handling Other-granularity queries.
func WithFallback(s boundary.Strategy) Option {
	return func(c *config) {
		c.fallback = s
	}
}
