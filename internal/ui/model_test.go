package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/simon/internal/events"
	"github.com/muurk/simon/internal/launch"
	"github.com/muurk/simon/internal/nav"
	"github.com/muurk/simon/internal/selectloop"
	"github.com/muurk/simon/internal/tab"
)

type fakePlayer struct {
	calls []string
	err   error
}

func (p *fakePlayer) Launch(ctx context.Context, tmpl launch.Template, path string) (events.Effect, error) {
	p.calls = append(p.calls, tmpl.Program+" "+strings.Join(tmpl.Expand(path), " "))
	return events.EffectRefresh, p.err
}

func testTabs(t *testing.T) *selectloop.SelectLoop[*tab.Tab] {
	t.Helper()
	items, err := selectloop.New([]string{"/m/alpha.mp4", "/m/beta.mp4"})
	if err != nil {
		t.Fatal(err)
	}
	subs, err := selectloop.New([]string{"/m/alpha.srt"})
	if err != nil {
		t.Fatal(err)
	}
	tabs, err := selectloop.New([]*tab.Tab{
		{
			Name:  "Movies",
			Kind:  tab.KindMedia,
			Style: tab.NewStyle("", ""),
			Media: &tab.MediaTab{
				Items:     items,
				Subtitles: subs,
				Command:   launch.Template{Program: "player", Args: []string{"--fs", launch.Placeholder}},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tabs
}

func newTestModel(t *testing.T, player Player) *Model {
	t.Helper()
	factory := func() (*events.Mux, error) {
		// EOF right away: only the ticker stays alive.
		return events.New(strings.NewReader(""), events.Config{TickInterval: time.Hour})
	}
	m, err := NewModel(context.Background(), Options{
		Machine: nav.New(testTabs(t), nav.DefaultKeyMap("")),
		NewMux:  factory,
		Player:  player,
		Size:    func() (int, int) { return 100, 30 },
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func key(k tea.KeyType) events.Event {
	return events.Input(tea.Key{Type: k})
}

func runeKey(r rune) events.Event {
	return events.Input(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func send(m *Model, ev events.Event) tea.Cmd {
	_, cmd := m.Update(eventMsg{ev: ev, mux: m.mux})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelRequiresCollaborators(t *testing.T) {
	if _, err := NewModel(context.Background(), Options{}); err == nil {
		t.Error("NewModel() succeeded without collaborators")
	}
}

func TestQuitStopsMux(t *testing.T) {
	m := newTestModel(t, &fakePlayer{})
	mux := m.mux

	if cmd := send(m, key(tea.KeyEsc)); !isQuit(cmd) {
		t.Fatal("Esc did not quit")
	}
	if m.mux != nil {
		t.Error("mux still set after quit")
	}
	if _, ok := mux.Next(); ok {
		t.Error("old mux still delivers events")
	}
}

func TestStaleMessagesAreIgnored(t *testing.T) {
	m := newTestModel(t, &fakePlayer{})
	stale, err := events.New(strings.NewReader(""), events.Config{TickInterval: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	stale.Stop()

	if _, cmd := m.Update(eventMsg{ev: key(tea.KeyEsc), mux: stale}); cmd != nil {
		t.Error("stale event produced a command")
	}
	if _, cmd := m.Update(streamClosedMsg{mux: stale}); cmd != nil {
		t.Error("stale close produced a command")
	}
	if m.machine.Scope() != nav.TabList || m.mux == nil {
		t.Error("stale messages changed the model")
	}
}

func TestNavigationWaitsForNextEvent(t *testing.T) {
	m := newTestModel(t, &fakePlayer{})

	// The returned command blocks on the mux, so it is not run here.
	if cmd := send(m, key(tea.KeyDown)); cmd == nil {
		t.Fatal("Down did not wait for the next event")
	}
	if m.machine.Scope() != nav.TabContents {
		t.Errorf("Scope() = %v, want tab-contents", m.machine.Scope())
	}
	if cmd := send(m, events.Tick()); cmd == nil {
		t.Error("tick did not wait for the next event")
	}
}

func TestPlayStopsMuxAndLaunches(t *testing.T) {
	player := &fakePlayer{}
	m := newTestModel(t, player)
	send(m, key(tea.KeyDown))
	send(m, key(tea.KeyEnter))
	send(m, key(tea.KeyDown))

	cmd := send(m, runeKey('p'))
	if cmd == nil {
		t.Fatal("play produced no command")
	}
	if m.mux != nil {
		t.Error("mux still running while the player is launched")
	}
	if !m.launching || m.View() != "" {
		t.Error("browser still drawn while the player is launched")
	}

	req := &nav.LaunchRequest{Template: launch.Template{Program: "player", Args: []string{launch.Placeholder}}, Path: "/m/beta.mp4"}
	lc := &launchCommand{ctx: context.Background(), player: player, req: req}
	if err := lc.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(player.calls) != 1 || player.calls[0] != "player /m/beta.mp4" {
		t.Errorf("player calls = %q", player.calls)
	}
}

func TestLaunchDoneRefreshes(t *testing.T) {
	m := newTestModel(t, &fakePlayer{})
	old := m.mux
	m.stopMux()

	_, cmd := m.Update(launchDoneMsg{})
	if cmd == nil || isQuit(cmd) {
		t.Fatal("launch completion did not resume")
	}
	if m.mux == nil || m.mux == old {
		t.Error("mux was not rebuilt")
	}
	if m.Refreshes() != 1 {
		t.Errorf("Refreshes() = %d, want 1", m.Refreshes())
	}

	for i := 0; i < 5; i++ {
		m.stopMux()
		m.Update(launchDoneMsg{})
	}
	if m.Refreshes() != 6 {
		t.Errorf("Refreshes() = %d, want 6", m.Refreshes())
	}
}

func TestLaunchFailureIsFatal(t *testing.T) {
	m := newTestModel(t, &fakePlayer{})
	m.stopMux()

	failure := &launch.SpawnError{Program: "player", Err: errors.New("not found")}
	_, cmd := m.Update(launchDoneMsg{err: failure})
	if !isQuit(cmd) {
		t.Fatal("launch failure did not quit")
	}
	var spawnErr *launch.SpawnError
	if !errors.As(m.Err(), &spawnErr) {
		t.Errorf("Err() = %v, want *launch.SpawnError", m.Err())
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, &fakePlayer{})
	send(m, key(tea.KeyDown))
	send(m, key(tea.KeyEnter))

	view := m.View()
	for _, want := range []string{AppTitle, "Movies", "Media", "Subtitles", "> alpha.mp4", "beta.mp4", "alpha.srt"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() does not contain %q:\n%s", want, view)
		}
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, &fakePlayer{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.width != 60 || m.height != 20 {
		t.Errorf("size = %dx%d, want 60x20", m.width, m.height)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		index, total, rows int
		start, end         int
	}{
		{0, 3, 10, 0, 3},
		{0, 20, 5, 0, 5},
		{10, 20, 5, 8, 13},
		{19, 20, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.index, tt.total, tt.rows)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d) = %d, %d, want %d, %d",
				tt.index, tt.total, tt.rows, start, end, tt.start, tt.end)
		}
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("short.mp4", 20); got != "short.mp4" {
		t.Errorf("fitWidth() = %q", got)
	}
	if got := fitWidth("a-very-long-file-name.mp4", 10); len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("fitWidth() = %q, want 10 cells ending in …", got)
	}
	if got := fitWidth("x", 0); got != "" {
		t.Errorf("fitWidth(0) = %q", got)
	}
}

func TestResultRender(t *testing.T) {
	out := NewFailureResult("Cannot start", errors.Join(errors.New("first"), errors.New("second")), []string{"check the file"}).Render()
	for _, want := range []string{"FAILED", "first", "second", "check the file"} {
		if !strings.Contains(out, want) {
			t.Errorf("failure box does not contain %q", want)
		}
	}

	out = NewSuccessResult("2 tabs", []Detail{{Key: "Movies", Value: "12 files"}}).Render()
	if !strings.Contains(out, "Movies") || !strings.Contains(out, "12 files") {
		t.Errorf("success box = %q", out)
	}

	var buf strings.Builder
	NewPrinter(&buf).PrintSuccess("1 tab", nil, "radio: no path")
	if !strings.Contains(buf.String(), WarningMarker+"  radio: no path") {
		t.Errorf("warning missing from %q", buf.String())
	}
}
