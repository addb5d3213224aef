package config

import (
	"errors"
	"strings"
	"testing"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"media_dir", "media_dirs"},
		{"mediatypes", "media_types"},
		{"comand", "command"},
		{"priority", "priority"},
		{"wallpaper", ""},
	}
	for _, tt := range tests {
		if got := suggest(tt.word, knownTabKeys); got != tt.want {
			t.Errorf("suggest(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "config.yaml", `tick_intervall: 1s
tabs:
  movies:
    kind: media
    media_dir: [/srv/movies]
    media_types: [mp4]
    command:
      programm: mpv
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() accepted unknown keys")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error %T is not a *ConfigError", err)
	}
	msg := err.Error()
	for _, want := range []string{`"tick_interval"`, `"media_dirs"`, `"program"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not suggest %s", msg, want)
		}
	}
}

func TestUnsupportedKindSuggestion(t *testing.T) {
	errs := ValidateTab(&TabSettings{Name: "a", Kind: "medai"})
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), `did you mean "media"`) {
		t.Errorf("ValidateTab() = %v, want a suggestion for media", errs)
	}
}
