package core

// EventKind tags the raw events a host forwards to a game.
type EventKind int

const (
	EventNone        EventKind = iota
	EventPointerMove           // Pointer moved; X/Y hold window pixel coordinates
	EventKey                   // Key pressed; Key holds the host's key name
	EventResize                // Window resized; X/Y hold the new size
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventPointerMove:
		return "PointerMove"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is a single host input event.
// Pointer coordinates use a top-left origin with +y pointing down.
type Event struct {
	Kind EventKind
	X, Y float32
	Key  string
}

// PointerMove builds a pointer-move event at window pixel (x, y).
func PointerMove(x, y float32) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}
