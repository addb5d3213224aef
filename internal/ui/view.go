package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/simon/internal/nav"
	"github.com/muurk/simon/internal/selectloop"
	"github.com/muurk/simon/internal/tab"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.launching {
		return ""
	}

	width, height := m.width, m.height
	active := m.machine.ActiveTab()

	bar := m.renderTabBar(width)
	footer := m.help.View(m.machine.Keys())
	bodyHeight := max(height-lipgloss.Height(bar)-HelpHeight, 3)

	var body string
	if active.Media != nil {
		body = renderMediaPage(active, m.machine.Scope() == nav.TabContents, width, bodyHeight)
	} else {
		body = paneStyle(active.Style.Base, width, bodyHeight).Render("")
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, body, footer)
}

// renderTabBar draws the titled tab bar. Its border is highlighted while
// the tab list has focus.
func (m *Model) renderTabBar(width int) string {
	active := m.machine.ActiveTab()
	tabs := m.machine.Tabs()

	base := lipgloss.NewStyle().Foreground(active.Style.Base)
	selected := lipgloss.NewStyle().Foreground(active.Style.Highlight).Bold(true).Underline(true)

	titles := make([]string, 0, tabs.Len())
	for i, t := range tabs.Items() {
		if i == tabs.Index() {
			titles = append(titles, selected.Render(t.Name))
		} else {
			titles = append(titles, base.Render(t.Name))
		}
	}

	border := active.Style.Base
	if m.machine.Scope() == nav.TabList {
		border = active.Style.Highlight
	}

	title := lipgloss.NewStyle().Foreground(border).Bold(true).Render(AppTitle)
	line := title + base.Render(" │ ") + strings.Join(titles, base.Render(" │ "))
	return paneStyle(border, width, TabBarHeight).MaxHeight(TabBarHeight).Render(line)
}

// renderMediaPage draws the media list and, when the tab has one, the
// subtitle list beside it.
func renderMediaPage(t *tab.Tab, focused bool, width, height int) string {
	media := t.Media

	border := t.Style.Base
	if focused {
		border = t.Style.Highlight
	}
	accent := t.Style.Base
	if media.Entered() {
		accent = t.Style.Highlight
	}

	if media.Subtitles == nil {
		return renderList("Media", media.Items, border, accent, width, height)
	}

	left := width / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderList("Media", media.Items, border, accent, left, height),
		renderList("Subtitles", media.Subtitles, t.Style.Base, t.Style.Highlight, width-left, height),
	)
}

// renderList draws one bordered list of file names with the selection
// marked by HighlightSymbol.
func renderList(title string, items *selectloop.SelectLoop[string], border, accent lipgloss.Color, width, height int) string {
	inner := max(width-4, 1)
	rows := max(height-3, 1)

	titleLine := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	plain := lipgloss.NewStyle()
	highlighted := lipgloss.NewStyle().Foreground(accent).Bold(true)

	lines := []string{titleLine}
	start, end := visibleRange(items.Index(), items.Len(), rows)
	for i := start; i < end; i++ {
		name := fitWidth(filepath.Base(items.At(i)), inner-2)
		if i == items.Index() {
			lines = append(lines, highlighted.Render(HighlightSymbol+" "+name))
		} else {
			lines = append(lines, plain.Render("  "+name))
		}
	}

	return paneStyle(border, width, height).Render(strings.Join(lines, "\n"))
}

// visibleRange returns the window of rows that keeps index on screen.
func visibleRange(index, total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := index - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}

// fitWidth truncates s to width display cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
