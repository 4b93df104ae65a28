package boundary

// Granularity identifies the unit of boundary being tested or sought.
type Granularity uint8

const (
	// Word boundaries separate runs of alphanumeric runes from
	// everything else.
	Word Granularity = iota

	// Line boundaries are the edges of visual fragments (wrapped rows),
	// clamped to stay off a line's delimiter.
	Line

	// Paragraph boundaries are the edges of delimiter-separated runs of
	// text.
	Paragraph

	// Other is any granularity outside this package's responsibility;
	// queries delegate to the navigator's fallback Strategy.
	Other
)

// String returns the granularity name.
func (g Granularity) String() string {
	switch g {
	case Word:
		return "word"
	case Line:
		return "line"
	case Paragraph:
		return "paragraph"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}
