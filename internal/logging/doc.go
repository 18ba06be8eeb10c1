// Package logging provides structured logging for flashdeck.
//
// This package wraps the zap logger with convenience functions for the
// handful of events worth recording: raw mode sessions, resizes and cursor
// moves. Logging is silent by default.
//
// # Configuration
//
// Two environment variables (or the matching --log-level and --log-file
// flags) control output:
//
//   - FLASHDECK_LOG_LEVEL: "debug", "info", "warn" or "error"; unset means silent
//   - FLASHDECK_LOG_FILE: destination path; defaults to stderr
//
// The viewer draws over the whole terminal, so point FLASHDECK_LOG_FILE at a
// file when debugging it:
//
//	FLASHDECK_LOG_LEVEL=debug FLASHDECK_LOG_FILE=/tmp/flashdeck.log flashdeck cards.md
//
// # Usage
//
//	if err := logging.Initialize(logging.Options{Level: "debug"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogResize(120, 40)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
