package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/ttysession/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ttysession/internal/signals"
	"github.com/GriffinCanCode/ttysession/internal/terminal"
)

// DefaultBufferSize is the size of a single read.
const DefaultBufferSize = 1024

// Device is the terminal as seen by the loop. Read must return
// terminal.ErrInterrupted with zero bytes when a watched signal arrived, and
// io.EOF at end of input.
type Device interface {
	Read(p []byte) (int, error)
	Size() (terminal.Geometry, error)
}

// Source exposes the pending signal cell to the loop.
type Source interface {
	Clear()
	Take() signals.Event
}

// Option configures a Loop.
type Option func(*Loop)

// WithOutput sets where status lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Loop) { l.reporter = NewReporter(w) }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(l *Loop) { l.metrics = m }
}

// WithBufferSize sets the read size. Non-positive values are ignored.
func WithBufferSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.bufSize = n
		}
	}
}

// WithDataHandler receives every chunk of input the loop reads. The slice is
// only valid for the duration of the call.
func WithDataHandler(fn func([]byte)) Option {
	return func(l *Loop) { l.onData = fn }
}

// Loop is the signal-aware read loop.
type Loop struct {
	dev      Device
	src      Source
	reporter *Reporter
	logger   *zap.Logger
	metrics  *monitoring.Metrics
	bufSize  int
	onData   func([]byte)

	state atomic.Int32
}

// New creates a loop over dev, dispatching signals recorded in src.
func New(dev Device, src Source, opts ...Option) *Loop {
	l := &Loop{
		dev:      dev,
		src:      src,
		reporter: NewReporter(os.Stdout),
		logger:   zap.NewNop(),
		bufSize:  DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

func (l *Loop) setState(s State) {
	l.state.Store(int32(s))
}

// Run reports the initial geometry and services reads until end of input
// (nil) or a read failure that was not an interruption (returned).
func (l *Loop) Run() error {
	l.setState(StateIdle)
	defer l.setState(StateIdle)

	if err := l.reportGeometry(); err != nil {
		return err
	}

	buf := make([]byte, l.bufSize)
	for {
		l.setState(StateIdle)
		l.src.Clear()

		l.setState(StateReading)
		n, err := l.dev.Read(buf)

		switch {
		case errors.Is(err, terminal.ErrInterrupted):
			l.setState(StateDispatching)
			if err := l.Dispatch(l.src.Take()); err != nil {
				return err
			}

		case errors.Is(err, io.EOF):
			l.logger.Debug("end of input")
			return nil

		case err != nil:
			l.logger.Error("terminal read failed", zap.Error(err))
			return fmt.Errorf("read terminal: %w", err)

		case n == 0:
			l.logger.Debug("end of input")
			return nil

		default:
			l.metrics.RecordRead(n)
			if l.onData != nil {
				l.onData(buf[:n])
			}
		}
	}
}

// Dispatch reports a single classified signal.
func (l *Loop) Dispatch(ev signals.Event) error {
	l.logger.Debug("dispatching signal",
		zap.Stringer("event", ev),
		zap.Int32("signum", ev.Raw),
	)
	l.metrics.RecordSignal(ev.Kind.String())

	switch ev.Kind {
	case signals.KindInterrupt:
		return l.reporter.Interrupt()
	case signals.KindResize:
		if err := l.reporter.Resize(); err != nil {
			return err
		}
		return l.reportGeometry()
	default:
		return l.reporter.Signum(ev.Raw)
	}
}

// reportGeometry queries the size afresh. A failed query is reported, not
// returned; only output failures end the loop.
func (l *Loop) reportGeometry() error {
	g, err := l.dev.Size()
	l.metrics.RecordGeometryQuery(err)
	if err != nil {
		l.logger.Warn("terminal size query failed", zap.Error(err))
		return l.reporter.GeometryUnavailable(err)
	}

	l.logger.Debug("terminal size", zap.Int("rows", g.Rows), zap.Int("cols", g.Cols))
	return l.reporter.Geometry(g)
}
