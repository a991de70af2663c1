// Package signals records asynchronous signal delivery for the session loop.
//
// The only shared state in the system lives here: a single-writer,
// single-reader atomic cell (Pending) holding the identity of the most
// recently delivered signal of interest, or None.
//
// Delivery is deliberately minimal. The Notifier's delivery path performs one
// atomic store and posts one wakeup byte; it never formats, logs or touches
// the terminal. Everything else happens on the main loop after the blocking
// read has reported the interruption.
//
// Consumers read the cell through Take, which classifies the raw number into
// a closed Event variant: Interrupt, Resize, None or Other(raw).
//
// Two signals delivered before dispatch runs leave only the latest one in the
// cell; the earlier one is not reported.
package signals
