package render

// EventKind identifies a discrete input event.
type EventKind int

const (
	// EventQuit requests process termination.
	EventQuit EventKind = iota
	// EventPointerDown is a pointer press at (X, Y).
	EventPointerDown
	// EventPointerUp is a pointer release; position is irrelevant.
	EventPointerUp
	// EventPointerMove is pointer motion to (X, Y).
	EventPointerMove
)

// Event is one discrete input event in scene coordinates.
type Event struct {
	Kind EventKind
	X, Y float64
}

// String returns a human-readable event kind name
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventPointerMove:
		return "PointerMove"
	default:
		return "Unknown"
	}
}
