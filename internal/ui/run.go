package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the browser until the user quits. It returns the fatal error
// that ended it, if any.
func Run(ctx context.Context, opts Options, output io.Writer) error {
	model, err := NewModel(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to start event stream: %w", err)
	}
	defer model.Close()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		// The Mux owns the keyboard. Bubble Tea gets an input that is
		// already at EOF so its reader, restarted after every launch,
		// exits at once.
		tea.WithInput(strings.NewReader("")),
		tea.WithAltScreen(),
	}
	if output != nil {
		programOpts = append(programOpts, tea.WithOutput(output))
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return err
	}
	return model.Err()
}
