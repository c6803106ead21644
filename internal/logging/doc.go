// Package logging provides structured logging for usher invocations.
// It wraps Go's log/slog package to produce JSON-formatted log lines,
// appended to a debug.log file so that short-lived CLI runs leave a trail
// the logs command can aggregate and filter afterwards.
//
// Booking decisions never depend on logging: a logger that cannot open its
// file degrades to stderr, and callers treat every log call as best-effort.
package logging
