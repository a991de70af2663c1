//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// ErrInterrupted is returned by Reader.Read when a wakeup arrived before any
// byte was transferred.
var ErrInterrupted = errors.New("read interrupted by signal")

// Waker is a level-triggered wakeup source. WakeFd stays readable from the
// moment a wakeup is posted until Drain is called.
type Waker interface {
	WakeFd() int
	Drain()
}

// Reader performs blocking reads on a handle that can be interrupted by a
// Waker.
type Reader struct {
	h *Handle
	w Waker
}

// Reader returns an interruptible reader over the handle.
func (h *Handle) Reader(w Waker) *Reader {
	return &Reader{h: h, w: w}
}

// Read blocks until data, end of input, or a wakeup. A pending wakeup takes
// priority over queued data: it is consumed and ErrInterrupted is returned
// with zero bytes read, leaving the data for the next call. End of input is
// reported as io.EOF.
//
// EINTR from the Go runtime's own signals is not an interruption and is
// retried.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	fds := []unix.PollFd{
		{Fd: int32(r.w.WakeFd()), Events: unix.POLLIN},
		{Fd: int32(r.h.fd), Events: unix.POLLIN},
	}

	for {
		fds[0].Revents, fds[1].Revents = 0, 0

		if _, err := unix.Poll(fds, -1); err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, fmt.Errorf("poll fd %d: %w", r.h.fd, err)
		}

		wake := fds[0].Revents
		if wake&unix.POLLIN != 0 {
			r.w.Drain()
			return 0, ErrInterrupted
		}
		if wake&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
			return 0, fmt.Errorf("wake fd %d closed", fds[0].Fd)
		}

		if fds[1].Revents == 0 {
			continue
		}

		n, err := unix.Read(r.h.fd, p)
		switch {
		case err == unix.EINTR || err == unix.EAGAIN:
			continue
		case err != nil:
			return 0, fmt.Errorf("read fd %d: %w", r.h.fd, err)
		case n == 0:
			return 0, io.EOF
		}
		return n, nil
	}
}

// Size queries the geometry of the underlying handle.
func (r *Reader) Size() (Geometry, error) {
	return r.h.Size()
}
