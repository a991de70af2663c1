//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package signals

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// Watched are the signals the Notifier installs handlers for. Every other
// signal keeps its default disposition.
var Watched = []os.Signal{syscall.SIGINT, syscall.SIGWINCH}

var wakeByte = []byte{1}

// Notifier records watched signals into a Pending cell and posts a wakeup on
// a non-blocking pipe so that a blocked terminal read can be interrupted.
//
// The wakeup is level-triggered: it stays readable until Drain, so a signal
// recorded after Clear but before the read starts still interrupts that read.
type Notifier struct {
	pending *Pending
	watched []os.Signal

	sigCh chan os.Signal
	stop  chan struct{}
	done  chan struct{}

	r, w     *os.File
	rfd, wfd int

	installOnce sync.Once
	stopOnce    sync.Once
}

// NewNotifier creates a notifier writing into p. It watches sigs, or
// Watched when none are given.
func NewNotifier(p *Pending, sigs ...os.Signal) (*Notifier, error) {
	if len(sigs) == 0 {
		sigs = Watched
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("create wake pipe: %w", err)
	}

	n := &Notifier{
		pending: p,
		watched: sigs,
		sigCh:   make(chan os.Signal, 4),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		r:       r,
		w:       w,
		rfd:     int(r.Fd()),
		wfd:     int(w.Fd()),
	}

	for _, fd := range []int{n.rfd, n.wfd} {
		if err := unix.SetNonblock(fd, true); err != nil {
			r.Close()
			w.Close()
			return nil, fmt.Errorf("set wake pipe non-blocking: %w", err)
		}
	}
	return n, nil
}

// Install registers the handlers. Handlers stay installed until Stop.
func (n *Notifier) Install() {
	n.installOnce.Do(func() {
		signal.Notify(n.sigCh, n.watched...)
		go n.deliverLoop()
	})
}

// Stop unregisters the handlers and releases the wake pipe. It must not be
// called while a read loop is still running.
func (n *Notifier) Stop() {
	n.stopOnce.Do(func() {
		signal.Stop(n.sigCh)
		close(n.stop)
		n.installOnce.Do(func() { close(n.done) })
		<-n.done
		n.r.Close()
		n.w.Close()
	})
}

func (n *Notifier) deliverLoop() {
	defer close(n.done)

	for {
		select {
		case <-n.stop:
			return
		case s := <-n.sigCh:
			if sig, ok := s.(syscall.Signal); ok {
				n.deliver(sig)
			}
		}
	}
}

// deliver is the entire handler body: one atomic store, one wakeup.
func (n *Notifier) deliver(sig syscall.Signal) {
	n.pending.Record(sig)
	unix.Write(n.wfd, wakeByte) // EAGAIN means a wakeup is already pending
}

// WakeFd returns the read end of the wake pipe.
func (n *Notifier) WakeFd() int {
	return n.rfd
}

// Drain consumes all posted wakeups.
func (n *Notifier) Drain() {
	var buf [64]byte
	for {
		m, err := unix.Read(n.rfd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil || m < len(buf) {
			return
		}
	}
}

// Clear resets the pending cell unless a wakeup is still posted. A posted
// wakeup means the cell holds a signal delivered after the last dispatch; the
// next read is interrupted by it and reports it.
func (n *Notifier) Clear() {
	if n.wakePending() {
		return
	}
	n.pending.Clear()
}

func (n *Notifier) wakePending() bool {
	fds := []unix.PollFd{{Fd: int32(n.rfd), Events: unix.POLLIN}}
	ready, err := unix.Poll(fds, 0)
	return err == nil && ready > 0 && fds[0].Revents&unix.POLLIN != 0
}

// Take returns the classified pending signal.
func (n *Notifier) Take() Event {
	return n.pending.Take()
}
