package config

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how different a typo may be from a known name.
const maxSuggestDistance = 2

var (
	knownTopKeys = []string{"tick_interval", "exit_key", "tabs"}
	knownTabKeys = []string{
		"name", "kind", "priority",
		"media_dirs", "media_types", "subs_dirs", "subs_types",
		"base_color", "highlight_color", "command",
	}
	knownCommandKeys = []string{"program", "args"}
	knownKinds       = []string{KindMedia}
)

// suggest returns the candidate closest to word, or "" when none is close.
func suggest(word string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(word, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// didYouMean formats a hint for word, or returns "".
func didYouMean(word string, candidates []string) string {
	if s := suggest(word, candidates); s != "" {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}

// unknownKeys reports settings no field reads. raw is the decoded file
// content with lowercased keys.
func unknownKeys(path string, raw map[string]any) []error {
	var errs []error
	unknown := func(tab, key string, known []string) {
		errs = append(errs, &ConfigError{
			Path:  path,
			Tab:   tab,
			Field: key,
			Err:   fmt.Errorf("unknown setting%s", didYouMean(key, known)),
		})
	}

	for _, key := range sortedKeys(raw) {
		if !contains(knownTopKeys, key) {
			unknown("", key, knownTopKeys)
		}
	}

	tabs, _ := raw["tabs"].(map[string]any)
	for _, name := range sortedKeys(tabs) {
		settings, ok := tabs[name].(map[string]any)
		if !ok {
			continue
		}
		for _, key := range sortedKeys(settings) {
			if !contains(knownTabKeys, key) {
				unknown(name, key, knownTabKeys)
			}
		}
		command, _ := settings["command"].(map[string]any)
		for _, key := range sortedKeys(command) {
			if !contains(knownCommandKeys, key) {
				unknown(name, "command."+key, knownCommandKeys)
			}
		}
	}
	return errs
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
