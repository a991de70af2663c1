package signals

import (
	"sync/atomic"
	"syscall"
)

// None is the value of an empty Pending cell.
const None int32 = -1

// Pending holds the most recently delivered signal number, or None.
type Pending struct {
	v atomic.Int32
}

var received = NewPending()

// Received returns the process-wide pending cell.
func Received() *Pending {
	return received
}

// NewPending returns an empty cell.
func NewPending() *Pending {
	p := &Pending{}
	p.v.Store(None)
	return p
}

// Clear resets the cell to None.
func (p *Pending) Clear() {
	p.v.Store(None)
}

// Record stores sig, replacing any earlier value.
func (p *Pending) Record(sig syscall.Signal) {
	p.v.Store(int32(sig))
}

// Load returns the raw cell value.
func (p *Pending) Load() int32 {
	return p.v.Load()
}

// Take returns the classified cell value and empties the cell, so a value
// is reported at most once.
func (p *Pending) Take() Event {
	return Classify(p.v.Swap(None))
}
