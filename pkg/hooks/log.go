package hooks

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// DebugMode enables UseDebugValue logging and verbose render diagnostics.
// It should be set at startup and not changed during runtime.
var DebugMode bool

var defaultLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the package logger used by hooks that were created
// without an explicit logger. Passing nil restores slog.Default.
func SetLogger(l *slog.Logger) {
	defaultLogger.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return slog.Default().With("subsystem", "hooks")
}

type loggerKey struct{}

// withLogger returns ctx carrying l for effect bodies.
func withLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom returns the logger of the hook owning the effect running with
// ctx, or the package logger.
func loggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return Logger()
}
