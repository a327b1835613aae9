// Package logging holds the process-wide logger shared by every asciidraw
// package. By default nothing is logged.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l as the shared logger. Pass nil to silence logging.
//
// Levels used:
//   - [slog.LevelDebug]: interaction state changes, cache hits
//   - [slog.LevelInfo]: document loads, legacy migrations, server lifecycle
//   - [slog.LevelWarn]: persistence failures, corrupt documents
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ParseLevel maps a level name to a slog level. ok is false for "", "off"
// and unknown names.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// Configure installs a text handler writing to w at the named level, or the
// silent logger when the level is off.
func Configure(w io.Writer, level string) {
	lvl, ok := ParseLevel(level)
	if !ok {
		SetLogger(nil)
		return
	}
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}
