// Package session implements the signal-aware read loop of a terminal session.
//
// The loop is a three-state machine:
//
//	Idle ──clear pending──▶ Reading ──interrupted──▶ Dispatching
//	  ▲                        │                         │
//	  └────────data────────────┘◀────────────────────────┘
//
// End of input leaves the loop cleanly. Any other read failure is returned.
//
// Dispatch runs on the loop's own goroutine, after the read has returned:
//   - Interrupt: "received SIGINT"
//   - Resize: "received SIGWINCH", then a fresh geometry query and
//     "terminal size: R rows, C columns"
//   - None or an unregistered signal: "received signum: N" (N = -1 for none)
//
// The pending cell is cleared before every read starts, never after, so a
// signal arriving in between still interrupts that read.
package session
