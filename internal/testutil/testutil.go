// Package testutil provides mocks and terminal fixtures for tests.
package testutil

import (
	"os"
	"sync"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/ttysession/internal/terminal"
)

// MockDevice is a mock implementation of session.Device.
type MockDevice struct {
	mock.Mock
}

// Read mocks the Read method. Use Run to copy data into the buffer.
func (m *MockDevice) Read(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

// Size mocks the Size method.
func (m *MockDevice) Size() (terminal.Geometry, error) {
	args := m.Called()
	return args.Get(0).(terminal.Geometry), args.Error(1)
}

// MockModeAccessor is a mock implementation of terminal.ModeAccessor.
type MockModeAccessor struct {
	mock.Mock
}

// GetMode mocks the GetMode method.
func (m *MockModeAccessor) GetMode() (*terminal.Mode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*terminal.Mode), args.Error(1)
}

// SetMode mocks the SetMode method.
func (m *MockModeAccessor) SetMode(mode *terminal.Mode) error {
	args := m.Called(mode)
	return args.Error(0)
}

// ModeStore is an in-memory terminal.ModeAccessor holding a full mode.
// GetMode hands out copies so callers cannot mutate the stored mode
// without committing it.
type ModeStore struct {
	mu      sync.Mutex
	mode    terminal.Mode
	Commits int
}

// NewModeStore creates a store holding m.
func NewModeStore(m terminal.Mode) *ModeStore {
	return &ModeStore{mode: m}
}

// GetMode returns a copy of the stored mode.
func (s *ModeStore) GetMode() (*terminal.Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.mode
	return &m, nil
}

// SetMode replaces the stored mode.
func (s *ModeStore) SetMode(m *terminal.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = *m
	s.Commits++
	return nil
}

// Snapshot returns the stored mode.
func (s *ModeStore) Snapshot() terminal.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// OpenPTY opens a pseudo-terminal pair sized rows x cols and closes it when
// the test ends. The test is skipped when no pty device is available.
func OpenPTY(t *testing.T, rows, cols int) (ptmx, tty *os.File) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminal unavailable: %v", err)
	}
	t.Cleanup(func() {
		tty.Close()
		ptmx.Close()
	})

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		t.Fatalf("set pty size: %v", err)
	}
	return ptmx, tty
}
