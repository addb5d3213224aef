// Package config loads the tab definitions and runtime options for simon.
//
// Settings live in a single YAML or TOML file (the format follows the file
// extension). Each entry under "tabs" describes one tab; the map key doubles
// as the tab name when no explicit name is given.
//
// # Configuration File Location
//
// Unless --config is passed, the file is looked up in platform-appropriate
// locations:
//   - Linux: $XDG_CONFIG_HOME/simon/config.yaml or $HOME/.config/simon/config.yaml
//   - macOS: $HOME/.config/simon/config.yaml
//   - Windows: %LOCALAPPDATA%\simon\config.yaml
//
// # Example
//
//	tick_interval: 250ms
//	exit_key: q
//	tabs:
//	  movies:
//	    name: Movies
//	    kind: media
//	    priority: 1
//	    media_dirs: [/srv/movies]
//	    media_types: [mp4, mkv]
//	    subs_dirs: [/srv/movies]
//	    subs_types: [srt]
//	    base_color: white
//	    highlight_color: yellow
//	    command:
//	      program: mpv
//	      args: ["--fs", "{0}"]
//
// # Environment
//
// Top-level options can be overridden with SIMON_ prefixed variables, for
// example SIMON_TICK_INTERVAL=500ms.
//
// # Errors
//
// Every problem found while loading or validating is reported as a
// *ConfigError. Validation collects all of them with errors.Join so a broken
// file can be fixed in one pass. Configuration errors are fatal: the browser
// never starts with a tab it cannot use.
package config
