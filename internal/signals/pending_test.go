package signals

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPendingIsEmpty(t *testing.T) {
	p := NewPending()

	assert.Equal(t, None, p.Load())
	assert.Equal(t, Event{Kind: KindNone, Raw: None}, p.Take())
}

func TestPendingRecordAndClear(t *testing.T) {
	p := NewPending()

	p.Record(syscall.SIGWINCH)
	p.Clear()
	assert.Equal(t, KindNone, p.Take().Kind)
}

func TestPendingTakeConsumes(t *testing.T) {
	p := NewPending()

	p.Record(syscall.SIGWINCH)
	assert.Equal(t, KindResize, p.Take().Kind)
	assert.Equal(t, None, p.Load())
	assert.Equal(t, KindNone, p.Take().Kind)
}

func TestPendingLastWriteWins(t *testing.T) {
	p := NewPending()

	p.Record(syscall.SIGINT)
	p.Record(syscall.SIGWINCH)

	assert.Equal(t, Event{Kind: KindResize, Raw: int32(syscall.SIGWINCH)}, p.Take())
}

func TestReceivedIsProcessWide(t *testing.T) {
	assert.Same(t, Received(), Received())
}
