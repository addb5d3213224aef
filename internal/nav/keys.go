package nav

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/simon/internal/events"
)

// KeyMap holds the bindings the machine reacts to. It also feeds the help
// footer.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Play  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings with exitKey added to Quit.
// An empty exitKey keeps the default.
func DefaultKeyMap(exitKey string) KeyMap {
	if exitKey == "" {
		exitKey = events.DefaultExitKey
	}
	quitKeys := []string{"esc", "ctrl+c", exitKey}
	if exitKey != events.DefaultExitKey {
		quitKeys = append(quitKeys, events.DefaultExitKey)
	}

	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "switch tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "enter/leave list"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quitKeys...),
			key.WithHelp(exitKey+"/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Enter, k.Play, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Enter, k.Play, k.Quit},
	}
}

func matches(k tea.Key, b key.Binding) bool {
	return key.Matches(k, b)
}
