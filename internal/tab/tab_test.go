package tab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/simon/internal/config"
	"github.com/muurk/simon/internal/launch"
	"github.com/muurk/simon/internal/selectloop"
)

func mediaDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	return dir
}

func mediaSettings(name string, priority int, dir string) *config.TabSettings {
	return &config.TabSettings{
		Name:       name,
		Kind:       config.KindMedia,
		Priority:   priority,
		MediaDirs:  []string{dir},
		MediaTypes: []string{"mp4"},
		Command:    &launch.Template{Program: "mpv", Args: []string{launch.Placeholder}},
	}
}

func TestBuildOrdersTabs(t *testing.T) {
	dir := mediaDir(t, "a.mp4", "b.mp4")
	settings := &config.Settings{Tabs: map[string]*config.TabSettings{
		"z": mediaSettings("zeta", 1, dir),
		"a": mediaSettings("alpha", 1, dir),
		"m": mediaSettings("first", 0, dir),
	}}

	tabs, err := NewBuilder(nil).Build(settings)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []string{"first", "alpha", "zeta"}
	if tabs.Len() != len(want) {
		t.Fatalf("got %d tabs, want %d", tabs.Len(), len(want))
	}
	for i, name := range want {
		if got := tabs.At(i).Name; got != name {
			t.Errorf("tab %d = %q, want %q", i, got, name)
		}
	}
	if tabs.Index() != 0 {
		t.Errorf("Index() = %d, want 0", tabs.Index())
	}
}

func TestBuildMediaTab(t *testing.T) {
	dir := mediaDir(t, "b.mp4", "a.mp4", "c.txt")
	ts := mediaSettings("Movies", 1, dir)

	tb, err := NewBuilder(nil).BuildTab(ts)
	if err != nil {
		t.Fatalf("BuildTab() error: %v", err)
	}
	if tb.Kind != KindMedia || tb.Media == nil {
		t.Fatalf("tab = %+v, want a media tab", tb)
	}
	if tb.Media.Items.Len() != 2 {
		t.Errorf("Items.Len() = %d, want 2", tb.Media.Items.Len())
	}
	if got, want := tb.Media.Selected(), filepath.Join(dir, "a.mp4"); got != want {
		t.Errorf("Selected() = %q, want %q", got, want)
	}
	if tb.Media.Cursor != ListOut || tb.Media.Entered() {
		t.Errorf("Cursor = %v, want %v", tb.Media.Cursor, ListOut)
	}
	if tb.Media.Subtitles != nil {
		t.Error("Subtitles set for a tab without subtitle settings")
	}
	if tb.Media.Command.Program != "mpv" {
		t.Errorf("Command = %v", tb.Media.Command)
	}
}

func TestBuildEmptyMediaTab(t *testing.T) {
	ts := mediaSettings("Empty", 1, mediaDir(t, "only.txt"))

	_, err := NewBuilder(nil).BuildTab(ts)
	if err == nil {
		t.Fatal("BuildTab() succeeded for a tab without files")
	}
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error %T is not a *BuildError", err)
	}
	if buildErr.Tab != "Empty" {
		t.Errorf("BuildError.Tab = %q, want Empty", buildErr.Tab)
	}
	if !errors.Is(err, selectloop.ErrEmptySelection) {
		t.Errorf("error %v does not wrap ErrEmptySelection", err)
	}
}

func TestBuildFailsOnFirstBadTab(t *testing.T) {
	settings := &config.Settings{Tabs: map[string]*config.TabSettings{
		"good": mediaSettings("good", 1, mediaDir(t, "a.mp4")),
		"bad":  mediaSettings("bad", 2, mediaDir(t)),
	}}
	if _, err := NewBuilder(nil).Build(settings); !errors.Is(err, selectloop.ErrEmptySelection) {
		t.Errorf("Build() error = %v, want ErrEmptySelection", err)
	}
}

func TestBuildSubtitles(t *testing.T) {
	dir := mediaDir(t, "a.mp4", "a.srt", "b.srt")

	ts := mediaSettings("Movies", 1, dir)
	ts.SubsDirs = []string{dir}
	ts.SubsTypes = []string{"srt"}
	tb, err := NewBuilder(nil).BuildTab(ts)
	if err != nil {
		t.Fatalf("BuildTab() error: %v", err)
	}
	if tb.Media.Subtitles == nil || tb.Media.Subtitles.Len() != 2 {
		t.Fatalf("Subtitles = %v, want 2 entries", tb.Media.Subtitles)
	}

	ts.SubsTypes = []string{"ass"}
	tb, err = NewBuilder(nil).BuildTab(ts)
	if err != nil {
		t.Fatalf("BuildTab() with no subtitle matches error: %v", err)
	}
	if tb.Media.Subtitles != nil {
		t.Error("Subtitles set although none were found")
	}
}

func TestBuildUnknownKind(t *testing.T) {
	ts := mediaSettings("web", 1, mediaDir(t, "a.mp4"))
	ts.Kind = "web"
	var buildErr *BuildError
	if _, err := NewBuilder(nil).BuildTab(ts); !errors.As(err, &buildErr) {
		t.Errorf("BuildTab() error = %v, want *BuildError", err)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		value, fallback string
		want            lipgloss.Color
	}{
		{"white", "", "7"},
		{"Yellow", "", "3"},
		{"grey", "", "8"},
		{"#ff00ff", "", "#ff00ff"},
		{"202", "", "202"},
		{"", "cyan", "6"},
		{"  ", "red", "1"},
	}
	for _, tt := range tests {
		if got := Color(tt.value, tt.fallback); got != tt.want {
			t.Errorf("Color(%q, %q) = %q, want %q", tt.value, tt.fallback, got, tt.want)
		}
	}

	style := NewStyle("", "")
	if style.Base != "7" || style.Highlight != "3" {
		t.Errorf("NewStyle defaults = %+v, want white/yellow", style)
	}
}

func TestCursorString(t *testing.T) {
	if ListOut.String() != "list-out" || ListIn.String() != "list-in" {
		t.Errorf("Cursor strings = %q, %q", ListOut, ListIn)
	}
}
