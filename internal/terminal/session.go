// Package terminal owns the controlling terminal's mode while the browser
// runs.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Fallback geometry when the size cannot be read.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// modes switches a file descriptor between terminal modes.
type modes struct {
	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, state *term.State) error
}

var systemModes = modes{
	isTerminal: term.IsTerminal,
	makeRaw:    term.MakeRaw,
	restore:    term.Restore,
}

// Session keeps the terminal in raw mode between Open and Close. Release
// and Reacquire hand the terminal to a child process and take it back.
// Release and Close always restore the mode saved by Open, whatever a child
// left behind. Close is safe to call more than once.
type Session struct {
	mu     sync.Mutex
	modes  modes
	in     *os.File
	out    *os.File
	saved  *term.State
	raw    bool
	closed bool
}

// Open puts the terminal behind in into raw mode. out is used for size
// queries.
func Open(in, out *os.File) (*Session, error) {
	return open(in, out, systemModes)
}

func open(in, out *os.File, m modes) (*Session, error) {
	fd := int(in.Fd())
	if !m.isTerminal(fd) {
		return nil, ErrNotTerminal
	}
	saved, err := m.makeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return &Session{modes: m, in: in, out: out, saved: saved, raw: true}, nil
}

// Release restores the original (cooked) mode.
func (s *Session) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.raw {
		return nil
	}
	if err := s.modes.restore(int(s.in.Fd()), s.saved); err != nil {
		return fmt.Errorf("failed to restore terminal mode: %w", err)
	}
	s.raw = false
	return nil
}

// Reacquire switches back to raw mode after Release.
func (s *Session) Reacquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("terminal session is closed")
	}
	if s.raw {
		return nil
	}
	// The mode returned here is whatever the child left; it is not kept.
	if _, err := s.modes.makeRaw(int(s.in.Fd())); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	s.raw = true
	return nil
}

// Size returns the terminal's width and height, or the defaults when they
// cannot be read.
func (s *Session) Size() (int, int) {
	return Size(s.out)
}

// Close restores the original mode for good, also when the terminal was
// released and never reacquired.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.raw = false
	return s.modes.restore(int(s.in.Fd()), s.saved)
}

// Size reads the geometry of f, falling back to DefaultWidth x DefaultHeight.
func Size(f *os.File) (int, int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
