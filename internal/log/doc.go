// Package log builds the structured loggers used by coprimepi, on top of the
// standard slog package.
//
// Logs are diagnostic only and are written to stderr, so standard output
// carries nothing but the report and the optional per-pair trace.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
