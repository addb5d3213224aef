// Simon is a terminal tab browser that launches a player on the selected
// file.
//
// Each configured tab lists the media files found under its directories.
// Arrow keys move between tabs and through the list, Enter enters and
// leaves the list, p plays the selected file and q or Esc quits. The
// player gets the terminal while it runs; the browser comes back when it
// exits.
//
// Usage:
//
//	simon [command] [flags]
//
// Running without arguments starts the browser.
// See 'simon --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/simon/internal/config"
	"github.com/muurk/simon/internal/launch"
	"github.com/muurk/simon/internal/logging"
	"github.com/muurk/simon/internal/tab"
	"github.com/muurk/simon/internal/terminal"
	"github.com/muurk/simon/internal/ui"
	"github.com/muurk/simon/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Terminal tab browser and media launcher",
	Long: `Browse configured collections of files in tabs and launch a player
on the selected one.

Keys: ←/→ switch tabs, ↓ enters the tab, enter enters and leaves the list,
↑/↓ move inside it, p plays the selected file, q or esc quits.

If no command is specified, the browser starts.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runBrowser,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("simon %s\n", version.Full())
	},
}

// printError reports a fatal error on stderr with hints for the common
// failure kinds.
func printError(err error) {
	ui.NewPrinter(os.Stderr).PrintError(errorTitle(err), err, troubleshooting(err))
}

func errorTitle(err error) string {
	var (
		cfgErr   *config.ConfigError
		buildErr *tab.BuildError
		spawnErr *launch.SpawnError
		waitErr  *launch.WaitError
		termErr  *launch.TerminalError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "Invalid configuration"
	case errors.As(err, &buildErr):
		return "Cannot build tab"
	case errors.As(err, &spawnErr):
		return "Player could not be started"
	case errors.As(err, &waitErr):
		return "Player failed"
	case errors.As(err, &termErr), errors.Is(err, terminal.ErrNotTerminal):
		return "Terminal unavailable"
	default:
		return "simon stopped"
	}
}

func troubleshooting(err error) []string {
	var (
		cfgErr   *config.ConfigError
		buildErr *tab.BuildError
		spawnErr *launch.SpawnError
		waitErr  *launch.WaitError
	)
	switch {
	case errors.As(err, &cfgErr):
		return []string{
			"Run 'simon config path' to see which file is read",
			"Run 'simon config init' to write an example configuration",
		}
	case errors.As(err, &buildErr):
		return []string{
			"Check that media_dirs exist and contain files with one of media_types",
			"Run 'simon tabs' to see what each tab finds",
		}
	case errors.As(err, &spawnErr):
		return []string{"Check that the command's program is installed and on PATH"}
	case errors.As(err, &waitErr):
		return []string{"Run the player by hand on the same file to see its output"}
	case errors.Is(err, terminal.ErrNotTerminal):
		return []string{"Run simon from an interactive terminal, not through a pipe"}
	default:
		return nil
	}
}
