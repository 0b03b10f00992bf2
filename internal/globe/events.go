package globe

// EventKind identifies a pointer or wheel event
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventWheel
	EventClick
)

// String returns a string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer_down"
	case EventPointerMove:
		return "pointer_move"
	case EventPointerUp:
		return "pointer_up"
	case EventWheel:
		return "wheel"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// Event is an input event in canvas pixel coordinates
// DeltaY is only meaningful for wheel events: positive scrolls down (zoom out).
type Event struct {
	Kind   EventKind
	X      float64
	Y      float64
	DeltaY float64
}

// Handler reacts to one event kind
type Handler func(Event)

type registration struct {
	handler Handler
	owner   uint64
}

// Dispatcher is a synchronous event table
// Handlers run on the caller's goroutine in the order events are dispatched.
type Dispatcher struct {
	handlers map[EventKind]registration
	next     uint64
}

// NewDispatcher creates an empty dispatch table
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[EventKind]registration),
	}
}

// Attach registers handlers and returns a func that removes exactly them
// Later attachments for the same kind replace earlier ones. Release is idempotent.
func (d *Dispatcher) Attach(handlers map[EventKind]Handler) (release func()) {
	d.next++
	owner := d.next
	for kind, h := range handlers {
		d.handlers[kind] = registration{handler: h, owner: owner}
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for kind, reg := range d.handlers {
			if reg.owner == owner {
				delete(d.handlers, kind)
			}
		}
	}
}

// Dispatch runs the handler for ev; returns false when none is attached
func (d *Dispatcher) Dispatch(ev Event) bool {
	reg, ok := d.handlers[ev.Kind]
	if !ok {
		return false
	}
	reg.handler(ev)
	return true
}

// Len returns the number of attached handlers
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}
