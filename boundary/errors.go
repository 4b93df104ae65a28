package boundary

import (
	"errors"
	"fmt"
)

// ErrLookupMiss is the base error for every soft navigation failure: a
// line, fragment, or character could not be resolved for an offset. All
// errors returned by Navigator satisfy errors.Is(err, ErrLookupMiss); the
// host keeps the caller's original position.
var ErrLookupMiss = errors.New("lookup miss")

// Specific lookup failures, each wrapping ErrLookupMiss.
var (
	// ErrNoLine indicates no line contains the offset.
	ErrNoLine = fmt.Errorf("no line containing offset: %w", ErrLookupMiss)

	// ErrNoFragment indicates no fragment contains the line-local offset.
	ErrNoFragment = fmt.Errorf("no fragment containing offset: %w", ErrLookupMiss)

	// ErrNoCharacter indicates a character lookup failed.
	ErrNoCharacter = fmt.Errorf("no character at offset: %w", ErrLookupMiss)

	// ErrNoStrategy indicates an unrecognized granularity with no
	// fallback strategy configured.
	ErrNoStrategy = fmt.Errorf("no fallback strategy: %w", ErrLookupMiss)
)
