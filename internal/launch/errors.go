package launch

import (
	"fmt"
	"strings"
)

// SpawnError means the player could not be started at all.
type SpawnError struct {
	// Program is the configured executable
	Program string
	// Args are the expanded arguments
	Args []string
	// Underlying error from exec
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q (args: %s): %v", e.Program, strings.Join(e.Args, " "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// WaitError means the player started but did not finish cleanly: the wait
// itself failed or the process exited with a non-zero status.
type WaitError struct {
	// Program is the configured executable
	Program string
	// ExitCode is the process exit code, -1 when unknown
	ExitCode int
	// Underlying error from exec
	Err error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("%q exited abnormally (exit code %d): %v", e.Program, e.ExitCode, e.Err)
}

func (e *WaitError) Unwrap() error {
	return e.Err
}

// TerminalError means the terminal could not be handed to the child or
// taken back from it.
type TerminalError struct {
	// Op is "release" or "reacquire"
	Op string
	// Underlying error from the terminal session
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s failed: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}
