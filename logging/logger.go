// Package logging provides the package-level *slog.Logger used for debug
// output.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the package-level logger instance. Defaults to nil, which
// causes Logger() to return a discard logger.
var logger atomic.Pointer[slog.Logger]

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger configures the package-level logger for debug output. Pass nil
// to disable logging.
//
// SetLogger is safe for concurrent use.
//
// Example enabling debug output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		logger.Store(newDiscardLogger())
	} else {
		logger.Store(sl)
	}
}

// Logger returns the package-level logger. If no logger has been set via
// SetLogger, returns a discard logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.Store(l)
	}
	return l
}
