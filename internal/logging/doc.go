// Package logging provides structured logging for simon.
//
// This package wraps zap logger with convenience functions for common logging
// patterns. Components that take a *zap.Logger get one from Named.
//
// # Log Levels
//
//   - Debug: key decoding, mux start/stop, scan details
//   - Info: configuration, tab construction, launches, refreshes
//   - Warn: skipped directories, tabs without subtitles
//   - Error: launch failures
//
// # Configuration
//
// Logging is silent unless a level is given with --log-level or
// SIMON_LOG_LEVEL. The browser draws on stdout, so records go to a file:
// --log-file, SIMON_LOG_FILE, or simon.log in the state directory.
//
//	if err := logging.Initialize("debug", "/tmp/simon.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Records use zap's console encoding:
//
//	2025-11-25T10:30:45.123-0800  INFO  launch/launcher.go:52  launching player
//	  {"program": "mpv", "args": ["--fs", "/srv/movies/a.mkv"]}
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
