package layout

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Layout.
type Option func(*Layout)

// WithLogger sets the logger used by the layout and the hooks it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Layout) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithObserver adds an observer. It may be given more than once.
func WithObserver(o Observer) Option {
	return func(l *Layout) {
		if o != nil {
			l.observers = append(l.observers, o)
		}
	}
}

// WithTracer sets the tracer used for render pass spans.
// The default is the global provider's tracer for this package.
func WithTracer(tracer trace.Tracer) Option {
	return func(l *Layout) {
		if tracer != nil {
			l.tracer = tracer
		}
	}
}

// WithDebug enables per-pass and per-instance debug logging.
func WithDebug(debug bool) Option {
	return func(l *Layout) {
		l.debug = debug
	}
}
