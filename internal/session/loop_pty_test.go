//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package session

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/ttysession/internal/signals"
	"github.com/GriffinCanCode/ttysession/internal/terminal"
	"github.com/GriffinCanCode/ttysession/internal/testutil"
)

// syncBuffer is a bytes.Buffer safe for one writer and concurrent readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLoopOnPTYReportsResize(t *testing.T) {
	ptmx, tty := testutil.OpenPTY(t, 24, 80)

	n, err := signals.NewNotifier(signals.NewPending())
	require.NoError(t, err)
	n.Install()

	out := &syncBuffer{}
	data := &syncBuffer{}
	loop := New(terminal.New(tty).Reader(n), n,
		WithOutput(out),
		WithDataHandler(func(p []byte) { data.Write(p) }),
	)

	var runErr error
	finished := make(chan struct{})
	go func() {
		runErr = loop.Run()
		close(finished)
	}()
	defer func() {
		// Unblock the loop if an assertion failed, then release handlers
		ptmx.Write([]byte{4})
		select {
		case <-finished:
		case <-time.After(5 * time.Second):
		}
		n.Stop()
	}()

	reading := func() bool { return loop.State() == StateReading }
	contains := func(b *syncBuffer, s string) func() bool {
		return func() bool { return strings.Contains(b.String(), s) }
	}

	require.Eventually(t, contains(out, "terminal size: 24 rows, 80 columns\n"), 5*time.Second, 10*time.Millisecond)
	require.Eventually(t, reading, 5*time.Second, time.Millisecond)

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 120}))
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGWINCH))

	require.Eventually(t,
		contains(out, "received SIGWINCH\nterminal size: 40 rows, 120 columns\n"),
		5*time.Second, 10*time.Millisecond)

	_, err = ptmx.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.Eventually(t, contains(data, "hello\n"), 5*time.Second, 10*time.Millisecond)

	// VEOF at the start of a line ends input
	_, err = ptmx.Write([]byte{4})
	require.NoError(t, err)

	select {
	case <-finished:
		require.NoError(t, runErr)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop at end of input")
	}
}
