// Package terminal wraps the controlling terminal device of the process.
//
// It exposes the three primitives a session driver needs from the
// pseudo-terminal layer:
//   - Line-discipline mode access (termios get/set), used by the echo controller
//   - Geometry queries (rows and columns), never cached
//   - An interruptible blocking read that returns ErrInterrupted when a
//     Waker fires before any byte has been transferred
//
// Mode changes are always read-modify-write: the full attribute set is
// fetched, a single flag is flipped, and the whole set is committed back
// for immediate effect.
//
// Example Usage:
//
//	h := terminal.Stdin()
//	err := terminal.WithEchoDisabled(h, func() error {
//		secret, err = in.ReadString('\n')
//		return err
//	})
//
// The handle is acquired once (normally from standard input) and is never
// closed by this package.
package terminal
