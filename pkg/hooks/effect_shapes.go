package hooks

import (
	"context"
	"iter"
	"sync"

	"github.com/vango-dev/hooks/internal/errors"
)

// EffectFunc is a synchronous effect returning an optional cleanup.
// Setup runs on the rendering goroutine.
type EffectFunc func() Cleanup

// Setup implements Effect.
func (f EffectFunc) Setup(context.Context) Cleanup { return f() }

func (EffectFunc) inline() {}

// Generator is a synchronous effect with a single suspension point: the
// code before yield is setup, the code after it is cleanup. Setup runs on
// the rendering goroutine.
//
//	hooks.Generator(func(yield func()) {
//	    sub := bus.Subscribe()
//	    yield()
//	    sub.Close()
//	})
type Generator func(yield func())

// Setup implements Effect.
func (g Generator) Setup(context.Context) Cleanup {
	var once bool
	seq := func(y func(struct{}) bool) {
		g(func() {
			if once {
				return
			}
			once = true
			y(struct{}{})
		})
	}

	next, stop := iter.Pull(iter.Seq[struct{}](seq))
	if _, ok := next(); !ok {
		stop()
		return nil
	}
	return Cleanup(stop)
}

func (Generator) inline() {}

// AsyncFunc is an effect that runs fn as a background task. ctx is
// cancelled when the effect is stopped; the task is awaited before the
// returned cleanup, if any, is called.
//
// Returning a cleanup from an async effect is deprecated and logs a
// warning; use AsyncGenerator for setup followed by cleanup.
type AsyncFunc func(ctx context.Context) Cleanup

// Setup implements Effect.
func (f AsyncFunc) Setup(ctx context.Context) Cleanup {
	cleanup := f(ctx)
	if cleanup == nil {
		return nil
	}
	loggerFrom(ctx).Warn("async effect returned a cleanup function; use hooks.AsyncGenerator and clean up after yield instead")
	return cleanup
}

// AsyncGenerator is an asynchronous effect with a single suspension point.
// The body runs on its own goroutine: code before yield is setup, code after
// yield is cleanup and runs once the effect is stopped. ctx is cancelled
// when a stop is requested; a body that returns without yielding has no
// cleanup.
//
//	hooks.AsyncGenerator(func(ctx context.Context, yield func()) {
//	    conn, err := dial(ctx)
//	    if err != nil {
//	        return
//	    }
//	    yield()
//	    conn.Close()
//	})
type AsyncGenerator func(ctx context.Context, yield func())

// Setup implements Effect. It blocks until the body yields or returns.
func (g AsyncGenerator) Setup(ctx context.Context) Cleanup {
	var (
		readyOnce sync.Once
		ready     = make(chan struct{})
		resume    = make(chan struct{})
		done      = make(chan struct{})
		panicked  any
	)

	yield := func() {
		readyOnce.Do(func() { close(ready) })
		<-resume
	}

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				panicked = r
			}
		}()
		g(ctx, yield)
	}()

	select {
	case <-ready:
	case <-done:
		if panicked != nil {
			panic(errors.FromPanic(panicked))
		}
		return nil
	}

	return func() {
		close(resume)
		<-done
		if panicked != nil {
			panic(errors.FromPanic(panicked))
		}
	}
}
