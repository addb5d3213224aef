// Package tab holds the tabs shown by the browser and their selection state.
package tab

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/simon/internal/launch"
	"github.com/muurk/simon/internal/selectloop"
)

// Kind identifies the payload a tab carries.
type Kind string

// KindMedia tabs list files and launch a player on them.
const KindMedia Kind = "media"

// Cursor is the tab-local focus inside a media tab.
type Cursor int

const (
	// ListOut: the media list is shown but not entered.
	ListOut Cursor = iota
	// ListIn: Up and Down move through the media list.
	ListIn
)

func (c Cursor) String() string {
	switch c {
	case ListOut:
		return "list-out"
	case ListIn:
		return "list-in"
	default:
		return fmt.Sprintf("cursor(%d)", int(c))
	}
}

// Style holds the two colors a tab is drawn with.
type Style struct {
	Base      lipgloss.Color
	Highlight lipgloss.Color
}

// Tab is one entry of the tab bar.
type Tab struct {
	Name     string
	Priority int
	Style    Style
	Kind     Kind
	Media    *MediaTab
}

// MediaTab is the payload of a media tab. Items is never empty.
type MediaTab struct {
	Items     *selectloop.SelectLoop[string]
	Subtitles *selectloop.SelectLoop[string] // nil when the tab has none
	Cursor    Cursor
	Command   launch.Template
}

// Selected returns the path the player would be launched on.
func (m *MediaTab) Selected() string {
	return m.Items.Current()
}

// Entered reports whether the media list has focus.
func (m *MediaTab) Entered() bool {
	return m.Cursor == ListIn
}
