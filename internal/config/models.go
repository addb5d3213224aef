package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/muurk/simon/internal/launch"
)

// KindMedia is the only tab kind currently supported.
const KindMedia = "media"

// Settings represents the entire configuration file.
type Settings struct {
	TickInterval time.Duration           `yaml:"tick_interval" mapstructure:"tick_interval"` // Period of the UI tick
	ExitKey      string                  `yaml:"exit_key" mapstructure:"exit_key"`           // Key that ends the keyboard reader
	Tabs         map[string]*TabSettings `yaml:"tabs" mapstructure:"tabs"`                   // Keyed by tab id

	// Path is the file the settings were read from.
	Path string `yaml:"-" mapstructure:"-"`
}

// TabSettings describes one configured tab.
type TabSettings struct {
	Name           string           `yaml:"name,omitempty" mapstructure:"name"`
	Kind           string           `yaml:"kind" mapstructure:"kind"`
	Priority       int              `yaml:"priority" mapstructure:"priority"`       // Sort key, ties broken by name
	MediaDirs      []string         `yaml:"media_dirs" mapstructure:"media_dirs"`   // Scanned recursively
	MediaTypes     []string         `yaml:"media_types" mapstructure:"media_types"` // File extensions, without the dot
	SubsDirs       []string         `yaml:"subs_dirs,omitempty" mapstructure:"subs_dirs"`
	SubsTypes      []string         `yaml:"subs_types,omitempty" mapstructure:"subs_types"`
	BaseColor      string           `yaml:"base_color,omitempty" mapstructure:"base_color"`
	HighlightColor string           `yaml:"highlight_color,omitempty" mapstructure:"highlight_color"`
	Command        *launch.Template `yaml:"command" mapstructure:"command"`
}

// HasSubtitles reports whether the tab asks for a subtitle list.
func (t *TabSettings) HasSubtitles() bool {
	return len(t.SubsDirs) > 0 || len(t.SubsTypes) > 0
}

// normalize fills in derived values: the name falls back to the map key and
// kinds and extensions are compared case-insensitively.
func (s *Settings) normalize() {
	for key, tab := range s.Tabs {
		if tab == nil {
			continue
		}
		if strings.TrimSpace(tab.Name) == "" {
			tab.Name = key
		}
		tab.Kind = strings.ToLower(strings.TrimSpace(tab.Kind))
		tab.MediaTypes = normalizeExtensions(tab.MediaTypes)
		tab.SubsTypes = normalizeExtensions(tab.SubsTypes)
		tab.MediaDirs = expandHome(tab.MediaDirs)
		tab.SubsDirs = expandHome(tab.SubsDirs)
	}
}

// expandHome resolves a leading "~" in directory entries.
func expandHome(dirs []string) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirs
	}
	out := make([]string, len(dirs))
	for i, dir := range dirs {
		switch {
		case dir == "~":
			out[i] = home
		case strings.HasPrefix(dir, "~/"):
			out[i] = filepath.Join(home, dir[2:])
		default:
			out[i] = dir
		}
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return exts
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// SortedTabs returns the tabs ordered by priority, then name.
func (s *Settings) SortedTabs() []*TabSettings {
	tabs := make([]*TabSettings, 0, len(s.Tabs))
	for _, tab := range s.Tabs {
		if tab != nil {
			tabs = append(tabs, tab)
		}
	}
	sort.SliceStable(tabs, func(i, j int) bool {
		if tabs[i].Priority != tabs[j].Priority {
			return tabs[i].Priority < tabs[j].Priority
		}
		return tabs[i].Name < tabs[j].Name
	})
	return tabs
}

// Example returns the settings written by "simon config init".
func Example() *Settings {
	home := "~"
	return &Settings{
		TickInterval: 250 * time.Millisecond,
		ExitKey:      "q",
		Tabs: map[string]*TabSettings{
			"movies": {
				Name:           "Movies",
				Kind:           KindMedia,
				Priority:       1,
				MediaDirs:      []string{home + "/Videos/Movies"},
				MediaTypes:     []string{"mp4", "mkv", "avi"},
				SubsDirs:       []string{home + "/Videos/Movies"},
				SubsTypes:      []string{"srt"},
				BaseColor:      "white",
				HighlightColor: "yellow",
				Command:        &launch.Template{Program: "mpv", Args: []string{"--fs", launch.Placeholder}},
			},
			"music": {
				Name:           "Music",
				Kind:           KindMedia,
				Priority:       2,
				MediaDirs:      []string{home + "/Music"},
				MediaTypes:     []string{"mp3", "flac", "ogg"},
				HighlightColor: "cyan",
				Command:        &launch.Template{Program: "mpv", Args: []string{"--no-video", launch.Placeholder}},
			},
		},
	}
}
