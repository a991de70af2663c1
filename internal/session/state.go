package session

import "fmt"

// State is the read loop's position in its state machine.
type State int32

const (
	StateIdle State = iota
	StateReading
	StateDispatching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReading:
		return "reading"
	case StateDispatching:
		return "dispatching"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}
