package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/ttysession/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ttysession/internal/signals"
	"github.com/GriffinCanCode/ttysession/internal/terminal"
)

// countingModes records committed echo changes.
type countingModes struct {
	terminal.ModeAccessor
	metrics *monitoring.Metrics
}

func (c *countingModes) SetMode(m *terminal.Mode) error {
	if err := c.ModeAccessor.SetMode(m); err != nil {
		return err
	}
	c.metrics.RecordEcho(m.Echo())
	return nil
}

// runSecret prompts for a name with echo on and a password with echo off
// until end of input.
func runSecret(h *terminal.Handle, out io.Writer, logger *zap.Logger, metrics *monitoring.Metrics) error {
	modes := &countingModes{ModeAccessor: h, metrics: metrics}

	n, err := signals.NewNotifier(signals.NewPending(), syscall.SIGINT, syscall.SIGTERM)
	if err != nil {
		return err
	}
	n.Install()
	defer n.Stop()

	in := bufio.NewReader(&signalInput{r: h.Reader(n), src: n})

	fmt.Fprintln(out, "You can exit this program by Ctrl+D.")
	fmt.Fprintln(out)

	for {
		fmt.Fprint(out, "[Echo ON] Input your name: ")
		name, err := readLine(in)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return interrupted(out, logger, err)
		}

		var passwd string
		err = terminal.WithEchoDisabled(modes, func() error {
			fmt.Fprint(out, "[Echo OFF] Input your password: ")
			passwd, err = readLine(in)
			return err
		})
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return interrupted(out, logger, err)
		}

		// The newline typed after the password was not echoed
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Hello, %s! The length of your password is %d.\n", name, len(passwd))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Good bye!")
	return nil
}

// interrupted finishes the prompt line when a signal ended the driver. Echo
// has already been restored by the time the error gets here.
func interrupted(out io.Writer, logger *zap.Logger, err error) error {
	var sigErr *signalError
	if errors.As(err, &sigErr) {
		logger.Warn("Terminated by signal", zap.Stringer("signal", sigErr.sig))
		fmt.Fprintln(out)
	}
	return err
}

// readLine reads one line without its terminator. A partial line followed
// by end of input is returned as io.EOF.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// signalError ends the driver when SIGINT or SIGTERM arrives.
type signalError struct {
	sig syscall.Signal
}

func (e *signalError) Error() string {
	return fmt.Sprintf("terminated by %v", e.sig)
}

// ExitCode follows the shell convention for death by signal.
func (e *signalError) ExitCode() int {
	return 128 + int(e.sig)
}

// signalInput turns an interrupted terminal read into a signalError.
type signalInput struct {
	r   *terminal.Reader
	src *signals.Notifier
}

func (in *signalInput) Read(p []byte) (int, error) {
	for {
		n, err := in.r.Read(p)
		if !errors.Is(err, terminal.ErrInterrupted) {
			return n, err
		}
		if ev := in.src.Take(); ev.Kind != signals.KindNone {
			return 0, &signalError{sig: syscall.Signal(ev.Raw)}
		}
	}
}
