//go:build linux

package terminal

import "golang.org/x/sys/unix"

// TCSETS applies the attributes immediately (TCSANOW).
const (
	ioctlGetMode = unix.TCGETS
	ioctlSetMode = unix.TCSETS
)
