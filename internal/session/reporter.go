package session

import (
	"fmt"
	"io"

	"github.com/GriffinCanCode/ttysession/internal/terminal"
)

// Reporter writes the loop's user-visible status lines.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Interrupt reports an interrupt signal.
func (r *Reporter) Interrupt() error {
	return r.printf("received SIGINT\n")
}

// Resize reports a resize notification.
func (r *Reporter) Resize() error {
	return r.printf("received SIGWINCH\n")
}

// Geometry reports the terminal size.
func (r *Reporter) Geometry(g terminal.Geometry) error {
	return r.printf("terminal size: %s\n", g)
}

// GeometryUnavailable reports a failed size query.
func (r *Reporter) GeometryUnavailable(err error) error {
	return r.printf("terminal size: unavailable (%v)\n", err)
}

// Signum reports a raw signal number.
func (r *Reporter) Signum(n int32) error {
	return r.printf("received signum: %d\n", n)
}

func (r *Reporter) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
