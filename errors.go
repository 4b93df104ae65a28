package textnav

import "github.com/dshills/textnav/boundary"

// Errors returned by navigation operations. All are soft: the host keeps
// the caller's original caret position and decides whether to rebuild a
// stale index.
var (
	// ErrLookupMiss is the base error every navigation failure wraps.
	ErrLookupMiss = boundary.ErrLookupMiss

	// ErrNoLine indicates no line contains the offset.
	ErrNoLine = boundary.ErrNoLine

	// ErrNoFragment indicates no fragment contains the line-local offset.
	ErrNoFragment = boundary.ErrNoFragment

	// ErrNoCharacter indicates a character lookup failed.
	ErrNoCharacter = boundary.ErrNoCharacter

	// ErrNoStrategy indicates an Other-granularity query with no
	// fallback strategy configured.
	ErrNoStrategy = boundary.ErrNoStrategy
)
