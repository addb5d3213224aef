package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the settings and returns every problem found, joined.
func Validate(s *Settings) error {
	if s == nil {
		return &ConfigError{Err: errors.New("no settings loaded")}
	}

	var errs []error
	if s.TickInterval < 0 {
		errs = append(errs, &ConfigError{Path: s.Path, Field: "tick_interval", Err: fmt.Errorf("must not be negative, got %v", s.TickInterval)})
	}
	if len(s.Tabs) == 0 {
		errs = append(errs, &ConfigError{Path: s.Path, Err: errors.New("no tabs configured")})
	}

	for key, tab := range s.Tabs {
		if tab == nil {
			errs = append(errs, &ConfigError{Path: s.Path, Tab: key, Err: errors.New("tab has no settings")})
			continue
		}
		errs = append(errs, ValidateTab(tab)...)
	}

	return errors.Join(errs...)
}

// ValidateTab checks one tab. Returns a slice of errors (empty if valid).
func ValidateTab(tab *TabSettings) []error {
	var errs []error
	fail := func(field, msg string) {
		errs = append(errs, &ConfigError{Tab: tab.Name, Field: field, Err: errors.New(msg)})
	}

	if strings.TrimSpace(tab.Name) == "" {
		fail("name", "tab name is empty")
	}

	switch tab.Kind {
	case KindMedia:
	case "":
		fail("kind", "kind is required")
		return errs
	default:
		fail("kind", fmt.Sprintf("unsupported kind %q%s", tab.Kind, didYouMean(tab.Kind, knownKinds)))
		return errs
	}

	if len(tab.MediaDirs) == 0 {
		fail("media_dirs", `you must provide media_dirs for a kind="media" tab`)
	}
	if len(tab.MediaTypes) == 0 {
		fail("media_types", `you must provide media_types for a kind="media" tab`)
	}
	if len(tab.SubsDirs) > 0 && len(tab.SubsTypes) == 0 {
		fail("subs_types", "subs_dirs is set but subs_types is empty")
	}
	if len(tab.SubsTypes) > 0 && len(tab.SubsDirs) == 0 {
		fail("subs_dirs", "subs_types is set but subs_dirs is empty")
	}

	if tab.Command == nil {
		fail("command", `you must provide a command for a kind="media" tab`)
	} else if err := tab.Command.Validate(); err != nil {
		errs = append(errs, &ConfigError{Tab: tab.Name, Field: "command", Err: err})
	}

	return errs
}
