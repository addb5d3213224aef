package tab

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default colors when a tab does not configure its own.
const (
	DefaultBaseColor      = "white"
	DefaultHighlightColor = "yellow"
)

var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// Color maps a color setting to a lipgloss color. Named ANSI colors are
// translated; anything else (ANSI numbers, hex) passes through. An empty
// value yields fallback.
func Color(value, fallback string) lipgloss.Color {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if code, ok := namedColors[strings.ToLower(value)]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(value)
}

// NewStyle resolves the configured colors of a tab.
func NewStyle(base, highlight string) Style {
	return Style{
		Base:      Color(base, DefaultBaseColor),
		Highlight: Color(highlight, DefaultHighlightColor),
	}
}
