package log

import (
	"io"
	"log/slog"
)

// Level returns the minimum log level for the given verbosity.
// Verbose runs log at Debug; otherwise only warnings and errors are shown.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a new slog.Logger writing text records to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON records.
// Useful when the report itself is JSON and logs are collected alongside it.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
