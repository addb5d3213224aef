package terminal

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/term"
)

func TestOpenRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if _, err := Open(r, w); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Open(pipe) error = %v, want ErrNotTerminal", err)
	}
}

func TestSizeFallback(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error: %v", err)
	}
	defer r.Close()
	defer w.Close()

	tests := []struct {
		name string
		f    *os.File
	}{
		{"nil file", nil},
		{"pipe", w},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height := Size(tt.f)
			if width != DefaultWidth || height != DefaultHeight {
				t.Errorf("Size() = %dx%d, want %dx%d", width, height, DefaultWidth, DefaultHeight)
			}
		})
	}
}

func TestClosedSession(t *testing.T) {
	s := &Session{closed: true}

	if err := s.Release(); err != nil {
		t.Errorf("Release() on a closed session = %v, want nil", err)
	}
	if err := s.Reacquire(); err == nil {
		t.Error("Reacquire() on a closed session succeeded")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

// fakeModes hands out a fresh state for every MakeRaw call, the way
// term.MakeRaw returns whatever mode was active before it.
type fakeModes struct {
	raw      []*term.State
	restored []*term.State
}

func (f *fakeModes) modes() modes {
	return modes{
		isTerminal: func(int) bool { return true },
		makeRaw: func(int) (*term.State, error) {
			state := &term.State{}
			f.raw = append(f.raw, state)
			return state, nil
		},
		restore: func(_ int, state *term.State) error {
			f.restored = append(f.restored, state)
			return nil
		},
	}
}

func openFake(t *testing.T) (*Session, *fakeModes) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error: %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	fake := &fakeModes{}
	s, err := open(r, w, fake.modes())
	if err != nil {
		t.Fatalf("open() error: %v", err)
	}
	return s, fake
}

func TestSessionRestoresOpeningMode(t *testing.T) {
	s, fake := openFake(t)
	original := fake.raw[0]

	for i := 0; i < 3; i++ {
		if err := s.Release(); err != nil {
			t.Fatalf("Release() error: %v", err)
		}
		// A child that crashed in raw mode leaves raw mode behind; the
		// next MakeRaw reports that as the previous state.
		if err := s.Reacquire(); err != nil {
			t.Fatalf("Reacquire() error: %v", err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if len(fake.restored) != 4 {
		t.Fatalf("restored %d times, want 4", len(fake.restored))
	}
	for i, state := range fake.restored {
		if state != original {
			t.Errorf("restore #%d used a state saved after Open", i)
		}
	}
}

func TestCloseAfterReleaseRestores(t *testing.T) {
	s, fake := openFake(t)

	if err := s.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}

	if len(fake.restored) != 2 || fake.restored[1] != fake.raw[0] {
		t.Errorf("Close() after Release() restored %v, want the opening mode", fake.restored)
	}
}
