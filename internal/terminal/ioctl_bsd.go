//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import "golang.org/x/sys/unix"

// TIOCSETA applies the attributes immediately (TCSANOW).
const (
	ioctlGetMode = unix.TIOCGETA
	ioctlSetMode = unix.TIOCSETA
)
