package signals

import (
	"fmt"
	"syscall"
)

// Kind is the closed set of outcomes the session loop dispatches on.
type Kind int

const (
	KindNone Kind = iota
	KindInterrupt
	KindResize
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInterrupt:
		return "interrupt"
	case KindResize:
		return "resize"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a classified Pending value. Raw always carries the number that
// was read from the cell (None for KindNone).
type Event struct {
	Kind Kind
	Raw  int32
}

func (e Event) String() string {
	if e.Kind == KindOther {
		return fmt.Sprintf("other(%d)", e.Raw)
	}
	return e.Kind.String()
}

// Classify maps a raw signal number to an Event.
func Classify(raw int32) Event {
	switch raw {
	case None:
		return Event{Kind: KindNone, Raw: None}
	case int32(syscall.SIGINT):
		return Event{Kind: KindInterrupt, Raw: raw}
	case int32(syscall.SIGWINCH):
		return Event{Kind: KindResize, Raw: raw}
	default:
		return Event{Kind: KindOther, Raw: raw}
	}
}
