package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/simon/internal/config"
	"github.com/muurk/simon/internal/events"
	"github.com/muurk/simon/internal/launch"
	"github.com/muurk/simon/internal/logging"
	"github.com/muurk/simon/internal/nav"
	"github.com/muurk/simon/internal/tab"
	"github.com/muurk/simon/internal/terminal"
	"github.com/muurk/simon/internal/ui"
)

// Global flags
var (
	configPath   string
	logLevel     string
	logFile      string
	tickInterval time.Duration
	forceInit    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: $XDG_CONFIG_HOME/simon/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: simon.log in the state directory)")
	rootCmd.Flags().DurationVar(&tickInterval, "tick-interval", 0, "Refresh tick period, overrides the configuration")

	rootCmd.AddCommand(tabsCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
}

// setupLogging initializes the global logger before any command runs.
func setupLogging(cmd *cobra.Command, args []string) error {
	path := logFile
	if path == "" && os.Getenv(logging.LogFileEnvVar) == "" {
		stateDir, err := config.GetStateDir()
		if err != nil {
			return err
		}
		path = filepath.Join(stateDir, "simon.log")
	}
	return logging.Initialize(logLevel, path)
}

// loadSettings reads the configuration and applies command-line overrides.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("tick-interval"); f != nil && f.Changed {
		if tickInterval <= 0 {
			return nil, &config.ConfigError{Field: "tick-interval", Err: fmt.Errorf("must be positive, got %v", tickInterval)}
		}
		settings.TickInterval = tickInterval
	}
	logging.LogConfigLoaded(settings.Path, len(settings.Tabs), settings.TickInterval.String())
	return settings, nil
}

// runBrowser starts the interactive browser. Configuration and tab errors
// are reported before the terminal mode is touched.
func runBrowser(cmd *cobra.Command, args []string) (err error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	tabs, err := tab.NewBuilder(logging.Named("tabs")).Build(settings)
	if err != nil {
		return err
	}
	pathlessCommands(tabs.Items())

	session, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	// Restores cooked mode on every way out, panics included.
	defer func() {
		width, height := session.Size()
		if cerr := session.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", cerr)
		}
		logging.LogSession("closed", width, height)
	}()
	width, height := session.Size()
	logging.LogSession("opened", width, height)

	// SIGINT never arrives in raw mode; ctrl+c is a key binding instead.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	muxConfig := events.Config{
		TickInterval: settings.TickInterval,
		ExitKey:      settings.ExitKey,
		Logger:       logging.Named("events"),
	}

	opts := ui.Options{
		Machine: nav.New(tabs, nav.DefaultKeyMap(settings.ExitKey)),
		NewMux: func() (*events.Mux, error) {
			return events.New(os.Stdin, muxConfig)
		},
		Player: launch.New(session, logging.Named("launch")),
		Size:   session.Size,
		Logger: logging.Named("ui"),
	}

	err = ui.Run(ctx, opts, os.Stdout)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	logging.LogExit(err)
	return err
}

// tabsCmd validates the configuration and shows what each tab finds
var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "List configured tabs and the files they find",
	Long: `Load the configuration, scan every tab's directories and print a
summary. The terminal mode is left alone, so this is a safe way to check a
configuration before starting the browser.`,
	Example: `  # Check the default configuration
  simon tabs

  # Check another file
  simon tabs --config ./simon.toml`,
	RunE: runTabs,
}

func runTabs(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	tabs, err := tab.NewBuilder(logging.Named("tabs")).Build(settings)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Tabs", settings.Path)

	details := make([]ui.Detail, 0, tabs.Len())
	for _, t := range tabs.Items() {
		details = append(details, ui.Detail{Key: t.Name, Value: describeTab(t)})
	}
	printer.PrintSuccess(fmt.Sprintf("%d tab(s) ready", tabs.Len()), details, pathlessCommands(tabs.Items())...)
	return nil
}

// pathlessCommands warns about tabs whose command never receives the
// selected file.
func pathlessCommands(tabs []*tab.Tab) []string {
	var warnings []string
	for _, t := range tabs {
		logging.Debug("Tab ready", zap.String("tab", t.Name), zap.String("kind", string(t.Kind)))
		if t.Media == nil || t.Media.Command.HasPlaceholder() {
			continue
		}
		logging.Warn("Command does not use the selected path",
			zap.String("tab", t.Name),
			zap.String("command", t.Media.Command.String()),
			zap.String("placeholder", launch.Placeholder),
		)
		warnings = append(warnings, fmt.Sprintf("%s: command has no %s, the selected file is not passed", t.Name, launch.Placeholder))
	}
	return warnings
}

func describeTab(t *tab.Tab) string {
	if t.Media == nil {
		return string(t.Kind)
	}
	parts := []string{fmt.Sprintf("%d file(s)", t.Media.Items.Len())}
	if t.Media.Subtitles != nil {
		parts = append(parts, fmt.Sprintf("%d subtitle(s)", t.Media.Subtitles.Len()))
	}
	parts = append(parts, t.Media.Command.String())
	return strings.Join(parts, ", ")
}

// configCmd groups configuration file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration file",
	Example: `  # Write to the default location
  simon config init

  # Replace an existing file
  simon config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := config.WriteExample(path, forceInit); err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written", []ui.Detail{
			{Key: "Path", Value: path},
			{Key: "Next", Value: "edit media_dirs, then run 'simon tabs'"},
		})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
