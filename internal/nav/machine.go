// Package nav routes key events through the browser's focus hierarchy.
//
// Focus has two levels. At the top the tab bar (TabList) or the active tab's
// contents (TabContents) is focused. Inside a media tab the list is either
// shown (ListOut) or entered (ListIn). Tab-local handling runs first and
// returns events.EffectBubble for keys the tab does not own; the top level
// then interprets them.
//
// The machine never starts processes. Pressing play yields EffectRefresh
// together with a LaunchRequest, and the caller runs the launch.
package nav

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/simon/internal/events"
	"github.com/muurk/simon/internal/launch"
	"github.com/muurk/simon/internal/selectloop"
	"github.com/muurk/simon/internal/tab"
)

// Scope is the top-level focus.
type Scope int

const (
	TabList Scope = iota
	TabContents
)

func (s Scope) String() string {
	switch s {
	case TabList:
		return "tab-list"
	case TabContents:
		return "tab-contents"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// LaunchRequest asks the caller to run a player on a file.
type LaunchRequest struct {
	Tab      string
	Template launch.Template
	Path     string
}

// Transition is the outcome of one event.
type Transition struct {
	Effect events.Effect
	Launch *LaunchRequest
}

// Machine is the navigation state. It is not safe for concurrent use; the
// dispatch loop owns it.
type Machine struct {
	tabs  *selectloop.SelectLoop[*tab.Tab]
	scope Scope
	keys  KeyMap
}

// New creates a machine focused on the tab bar.
func New(tabs *selectloop.SelectLoop[*tab.Tab], keys KeyMap) *Machine {
	return &Machine{tabs: tabs, scope: TabList, keys: keys}
}

// Handle applies one event and reports its effect. Ticks never change state.
// Quit keys are checked before any other binding, so an exit key that also
// names a navigation key still quits.
func (m *Machine) Handle(ev events.Event) Transition {
	if !ev.IsInput() {
		return Transition{Effect: events.EffectNone}
	}
	if matches(ev.Key, m.keys.Quit) {
		return Transition{Effect: events.EffectQuit}
	}

	if m.scope == TabContents {
		tr := m.handleTab(m.tabs.Current(), ev.Key)
		if tr.Effect != events.EffectBubble {
			return tr
		}
	}
	return Transition{Effect: m.handleTop(ev.Key)}
}

func (m *Machine) handleTop(k tea.Key) events.Effect {
	switch m.scope {
	case TabList:
		switch {
		case matches(k, m.keys.Left):
			m.tabs.Previous()
		case matches(k, m.keys.Right):
			m.tabs.Next()
		case matches(k, m.keys.Down):
			if media := m.tabs.Current().Media; media != nil {
				media.Cursor = tab.ListOut
			}
			m.scope = TabContents
		}
	case TabContents:
		if matches(k, m.keys.Up) {
			m.scope = TabList
		}
	}
	return events.EffectNone
}

func (m *Machine) handleTab(t *tab.Tab, k tea.Key) Transition {
	media := t.Media
	if media == nil {
		return Transition{Effect: events.EffectBubble}
	}

	switch media.Cursor {
	case tab.ListOut:
		switch {
		case matches(k, m.keys.Enter):
			media.Cursor = tab.ListIn
		case matches(k, m.keys.Play):
			return m.play(t)
		default:
			return Transition{Effect: events.EffectBubble}
		}
	case tab.ListIn:
		switch {
		case matches(k, m.keys.Up):
			media.Items.Previous()
		case matches(k, m.keys.Down):
			media.Items.Next()
		case matches(k, m.keys.Enter):
			media.Cursor = tab.ListOut
		case matches(k, m.keys.Play):
			return m.play(t)
		default:
			return Transition{Effect: events.EffectBubble}
		}
	}
	return Transition{Effect: events.EffectNone}
}

func (m *Machine) play(t *tab.Tab) Transition {
	return Transition{
		Effect: events.EffectRefresh,
		Launch: &LaunchRequest{
			Tab:      t.Name,
			Template: t.Media.Command,
			Path:     t.Media.Selected(),
		},
	}
}

// Scope returns the top-level focus.
func (m *Machine) Scope() Scope {
	return m.scope
}

// Tabs returns the tab loop for rendering. Callers must not move it.
func (m *Machine) Tabs() *selectloop.SelectLoop[*tab.Tab] {
	return m.tabs
}

// ActiveTab returns the selected tab.
func (m *Machine) ActiveTab() *tab.Tab {
	return m.tabs.Current()
}

// TabIndex returns the index of the selected tab.
func (m *Machine) TabIndex() int {
	return m.tabs.Index()
}

// TabCursor returns the tab-local focus of the selected tab.
func (m *Machine) TabCursor() tab.Cursor {
	if media := m.tabs.Current().Media; media != nil {
		return media.Cursor
	}
	return tab.ListOut
}

// Keys returns the bindings in use.
func (m *Machine) Keys() KeyMap {
	return m.keys
}
