package graphics

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from the event
// goroutine of any window.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for graphics and its backends.
// By default the package produces no log output. Pass nil to disable
// logging again.
//
// Log levels used:
//   - [slog.LevelDebug]: per-shape lifecycle (draw, undraw, move, redraw)
//   - [slog.LevelInfo]: window lifecycle and backend selection
//   - [slog.LevelWarn]: non-fatal issues (events dropped, stale handles)
//
// Example:
//
//	graphics.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// logger returns the active logger for internal use.
func logger() *slog.Logger {
	return loggerPtr.Load()
}
