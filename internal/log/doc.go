// Package log builds the slog loggers used by the bikeshare commands.
//
// Diagnostics go to stderr so they never mix with the statistics printed on
// stdout. The default level is Warn; verbose mode lowers it to Debug, which
// shows dataset loading and per-step pipeline timings.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
