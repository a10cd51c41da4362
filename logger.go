package assetpipe

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for assetpipe and all its sub-packages.
// By default, assetpipe produces no log output. The commands under cmd/
// install a stderr handler before doing any work.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by assetpipe:
//   - [slog.LevelDebug]: resolved paths, compiler command lines, image formats
//   - [slog.LevelInfo]: one line per compiled shader or packed texture, skip notices
//   - [slog.LevelWarn]: recoverable conditions (unknown shader stage, output collisions)
//
// Example:
//
//	assetpipe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by assetpipe.
// Sub-packages (shader/, texture/, manifest/) call this to share the same
// logger configuration without introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
