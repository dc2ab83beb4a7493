package interaction

import (
	"time"

	"github.com/matzehuels/forcegraph/pkg/geom"
)

// EventKind tags a pointer event. "Pointer" generalizes mouse and touch;
// the host translates its native events into this stream.
type EventKind int

const (
	// PointerDown begins a pointer contact (mouse press, finger down).
	PointerDown EventKind = iota
	// PointerMove reports movement of an active pointer.
	PointerMove
	// PointerUp ends a pointer contact.
	PointerUp
)

// String returns the event kind name for logs.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is one element of the abstract input stream fed into the
// machine. Position is in screen space. Time is sampled by the host at
// event time; the machine owns no clocks or timers.
type PointerEvent struct {
	Kind      EventKind
	PointerID int
	Position  geom.Vec
	Time      time.Time
}

// Down constructs a PointerDown event.
func Down(id int, pos geom.Vec, t time.Time) PointerEvent {
	return PointerEvent{Kind: PointerDown, PointerID: id, Position: pos, Time: t}
}

// Move constructs a PointerMove event.
func Move(id int, pos geom.Vec, t time.Time) PointerEvent {
	return PointerEvent{Kind: PointerMove, PointerID: id, Position: pos, Time: t}
}

// Up constructs a PointerUp event.
func Up(id int, pos geom.Vec, t time.Time) PointerEvent {
	return PointerEvent{Kind: PointerUp, PointerID: id, Position: pos, Time: t}
}
