// Package launch runs the configured player against the selected file.
//
// The child gets the terminal for as long as it runs: the launcher releases
// the terminal before spawning, blocks until the child exits and reacquires
// the terminal on every path out, including errors and panics. Whatever
// happens, the caller gets events.EffectRefresh back because the child may
// have changed the terminal mode or size.
package launch

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/simon/internal/events"
)

// Terminal is the part of the terminal session the launcher needs.
type Terminal interface {
	// Release hands the terminal over, e.g. leaves raw mode.
	Release() error
	// Reacquire takes it back after the child is done.
	Reacquire() error
}

// Launcher spawns player processes. The zero value runs the child on the
// process's own stdio without touching terminal modes.
type Launcher struct {
	Terminal Terminal
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
}

// New creates a Launcher bound to the given terminal.
func New(term Terminal, logger *zap.Logger) *Launcher {
	return &Launcher{Terminal: term, Logger: logger}
}

// Launch expands tmpl with path, runs the program and waits for it. The
// returned effect is always events.EffectRefresh; err is a *SpawnError,
// *WaitError or *TerminalError when something went wrong.
func (l *Launcher) Launch(ctx context.Context, tmpl Template, path string) (events.Effect, error) {
	logger := l.logger().With(zap.String("launch_id", uuid.NewString()))
	args := tmpl.Expand(path)

	logger.Info("launching player",
		zap.String("program", tmpl.Program),
		zap.Strings("args", args),
		zap.String("path", path),
	)

	start := time.Now()
	exitCode := 0
	err := l.withTerminalReleased(func() error {
		cmd := exec.CommandContext(ctx, tmpl.Program, args...)
		cmd.Stdin = orReader(l.Stdin, os.Stdin)
		cmd.Stdout = orWriter(l.Stdout, os.Stdout)
		cmd.Stderr = orWriter(l.Stderr, os.Stderr)

		if err := cmd.Start(); err != nil {
			exitCode = -1
			return &SpawnError{Program: tmpl.Program, Args: args, Err: err}
		}
		if err := cmd.Wait(); err != nil {
			exitCode = -1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				exitCode = exitErr.ExitCode()
			}
			return &WaitError{Program: tmpl.Program, ExitCode: exitCode, Err: err}
		}
		return nil
	})

	fields := []zap.Field{
		zap.String("program", tmpl.Program),
		zap.Duration("duration", time.Since(start)),
		zap.Int("exit_code", exitCode),
	}
	if err != nil {
		logger.Error("player launch failed", append(fields, zap.Error(err))...)
	} else {
		logger.Info("player exited", fields...)
	}

	return events.EffectRefresh, err
}

// withTerminalReleased runs fn with the terminal released and reacquires it
// afterwards, also when fn panics.
func (l *Launcher) withTerminalReleased(fn func() error) (err error) {
	if l.Terminal == nil {
		return fn()
	}
	if rerr := l.Terminal.Release(); rerr != nil {
		// Release may have partially succeeded; try to get back to a known state.
		_ = l.Terminal.Reacquire()
		return &TerminalError{Op: "release", Err: rerr}
	}
	defer func() {
		if rerr := l.Terminal.Reacquire(); rerr != nil && err == nil {
			err = &TerminalError{Op: "reacquire", Err: rerr}
		}
	}()
	return fn()
}

func (l *Launcher) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func orReader(r, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
