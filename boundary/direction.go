package boundary

// Direction is the logical scan direction of a boundary query.
type Direction uint8

const (
	// Forward scans toward the end of the buffer.
	Forward Direction = iota

	// Backward scans toward the start of the buffer.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Move is a host-vocabulary direction: storage order or layout arrows.
// Hosts normalize a Move to a logical Direction before querying.
type Move uint8

const (
	StorageForward Move = iota
	StorageBackward
	LayoutLeft
	LayoutRight
	LayoutUp
	LayoutDown
)

// Normalize maps a host direction to a logical direction: storage-forward,
// right, and down are forward; all others are backward.
func (m Move) Normalize() Direction {
	switch m {
	case StorageForward, LayoutRight, LayoutDown:
		return Forward
	default:
		return Backward
	}
}

// String returns the move name.
func (m Move) String() string {
	switch m {
	case StorageForward:
		return "storage-forward"
	case StorageBackward:
		return "storage-backward"
	case LayoutLeft:
		return "left"
	case LayoutRight:
		return "right"
	case LayoutUp:
		return "up"
	case LayoutDown:
		return "down"
	default:
		return "unknown"
	}
}
