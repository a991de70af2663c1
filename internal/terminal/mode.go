//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
)

var (
	// ErrModeAccess marks a failure to fetch or commit line-discipline attributes.
	ErrModeAccess = errors.New("terminal mode access failed")

	// ErrNotTerminal is returned when the handle does not refer to a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

// Mode is a snapshot of the line-discipline attributes of a terminal.
type Mode unix.Termios

// Echo reports whether the echo flag is set.
func (m Mode) Echo() bool {
	return m.Lflag&unix.ECHO != 0
}

func (m *Mode) setEcho(enabled bool) {
	if enabled {
		m.Lflag |= unix.ECHO
	} else {
		m.Lflag &^= unix.ECHO
	}
}

// ModeAccessor fetches and commits the full line-discipline mode.
type ModeAccessor interface {
	GetMode() (*Mode, error)
	SetMode(*Mode) error
}

// SetEcho turns input echo on or off. Only the echo flag is changed; every
// other attribute is committed back exactly as it was read.
//
// On error the echo state must be treated as unknown.
func SetEcho(acc ModeAccessor, enabled bool) error {
	mode, err := acc.GetMode()
	if err != nil {
		return fmt.Errorf("set echo=%t: %w", enabled, err)
	}

	mode.setEcho(enabled)

	if err := acc.SetMode(mode); err != nil {
		return fmt.Errorf("set echo=%t: %w", enabled, err)
	}
	return nil
}

// EchoEnabled reports the current echo flag.
func EchoEnabled(acc ModeAccessor) (bool, error) {
	mode, err := acc.GetMode()
	if err != nil {
		return false, err
	}
	return mode.Echo(), nil
}

// WithEchoDisabled runs fn with echo off and turns echo back on afterwards,
// whether fn succeeds, fails or panics. If echo cannot be turned off, fn is
// not run and echo-on is still requested so the terminal is left in a known
// mode where possible.
func WithEchoDisabled(acc ModeAccessor, fn func() error) (err error) {
	if err := SetEcho(acc, false); err != nil {
		return multierr.Append(err, SetEcho(acc, true))
	}
	defer func() {
		err = multierr.Append(err, SetEcho(acc, true))
	}()

	return fn()
}
