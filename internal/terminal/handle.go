//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Handle is the process-wide reference to the controlling terminal.
type Handle struct {
	f  *os.File
	fd int
}

// New wraps an open terminal file. Ownership stays with the caller.
func New(f *os.File) *Handle {
	return &Handle{
		f:  f,
		fd: int(f.Fd()),
	}
}

// Stdin returns the handle for the standard input stream.
func Stdin() *Handle {
	return New(os.Stdin)
}

// Fd returns the underlying file descriptor.
func (h *Handle) Fd() int {
	return h.fd
}

// File returns the underlying file.
func (h *Handle) File() *os.File {
	return h.f
}

// IsTerminal reports whether the handle refers to a terminal device.
func (h *Handle) IsTerminal() bool {
	return term.IsTerminal(h.fd)
}

// EnsureTerminal returns ErrNotTerminal if the handle is not a terminal.
func (h *Handle) EnsureTerminal() error {
	if !h.IsTerminal() {
		return fmt.Errorf("%w: fd %d (%s)", ErrNotTerminal, h.fd, h.f.Name())
	}
	return nil
}

// GetMode fetches the full line-discipline mode.
func (h *Handle) GetMode() (*Mode, error) {
	t, err := unix.IoctlGetTermios(h.fd, ioctlGetMode)
	if err != nil {
		return nil, fmt.Errorf("%w: get attributes on fd %d: %w", ErrModeAccess, h.fd, err)
	}
	return (*Mode)(t), nil
}

// SetMode commits the full line-discipline mode for immediate effect, even
// if input is already queued.
func (h *Handle) SetMode(m *Mode) error {
	if err := unix.IoctlSetTermios(h.fd, ioctlSetMode, (*unix.Termios)(m)); err != nil {
		return fmt.Errorf("%w: set attributes on fd %d: %w", ErrModeAccess, h.fd, err)
	}
	return nil
}

// SetEcho turns input echo on or off for this handle.
func (h *Handle) SetEcho(enabled bool) error {
	return SetEcho(h, enabled)
}

// Size queries the current terminal geometry.
func (h *Handle) Size() (Geometry, error) {
	rows, cols, err := pty.Getsize(h.f)
	if err != nil {
		return Geometry{}, fmt.Errorf("query size of fd %d: %w", h.fd, err)
	}
	return Geometry{Rows: rows, Cols: cols}, nil
}
