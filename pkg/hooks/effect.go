package hooks

import (
	"context"
	"sync"

	"github.com/vango-dev/hooks/internal/errors"
)

// Cleanup tears down what an effect's setup created.
type Cleanup func()

// Effect is the canonical effect shape: Setup runs until the effect's first
// suspension point and returns the cleanup to run when the effect is stopped.
// ctx is cancelled when a stop is requested, before cleanup runs.
type Effect interface {
	Setup(ctx context.Context) Cleanup
}

// inlineEffect marks effects whose setup runs to completion on the rendering
// goroutine before LayoutDidRender returns.
type inlineEffect interface {
	Effect
	inline()
}

type effectCell struct {
	deps depsTracker

	mu   sync.Mutex
	stop StopEffect
}

func (c *effectCell) swapStop(next StopEffect) StopEffect {
	c.mu.Lock()
	defer c.mu.Unlock()
	last := c.stop
	c.stop = next
	return last
}

// UseEffect runs effect after render whenever deps changed since the run
// currently started (always when deps is nil, once when deps is NoDeps).
//
// Before the new run starts, the previous run of the same call site is
// stopped and its cleanup has completed, so at most one run is live at a
// time. The last run is stopped when the component unmounts.
func UseEffect(effect Effect, deps Deps) {
	h := CurrentHook()
	cell := useSlot(h, SlotEffect, func() *effectCell { return &effectCell{} })
	if !cell.deps.changed(deps) {
		return
	}

	snapshot := deps
	if deps != nil {
		snapshot = append(Deps{}, deps...)
	}

	// deps are committed when the run starts, so a render that fails
	// before LayoutDidRender leaves them untouched
	h.AddEffect(func(ctx context.Context) StopEffect {
		cell.deps.commit(snapshot)
		if last := cell.swapStop(nil); last != nil {
			// failures are logged by the stop procedure
			_ = last()
		}
		task := startEffectTask(ctx, h, effect)
		cell.swapStop(task.stop)
		return task.stop
	})
}

// effectTask is one run of an effect.
type effectTask struct {
	hook *LifeCycleHook

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
	err      error
}

// startEffectTask runs effect's setup and a supervisor goroutine that waits
// for the stop signal, cancels the setup, waits for it to return and then
// runs the cleanup.
func startEffectTask(ctx context.Context, h *LifeCycleHook, effect Effect) *effectTask {
	t := &effectTask{
		hook:   h,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	effectCtx, cancel := context.WithCancel(withLogger(context.WithoutCancel(ctx), h.logger))

	var cleanup Cleanup
	setupDone := make(chan struct{})
	runSetup := func() {
		defer close(setupDone)
		defer func() {
			if r := recover(); r != nil {
				err := errors.New("E021").Wrap(errors.FromPanic(r))
				h.logger.Error("effect setup failed", "error", err)
			}
		}()
		cleanup = effect.Setup(effectCtx)
	}

	if _, ok := effect.(inlineEffect); ok {
		runSetup()
	} else {
		go runSetup()
	}

	go func() {
		defer close(t.done)
		defer cancel()

		<-t.stopCh
		cancel()
		<-setupDone

		if cleanup != nil {
			t.err = runCleanup(cleanup)
		}
	}()

	return t
}

func runCleanup(cleanup Cleanup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("E022").Wrap(errors.FromPanic(r))
		}
	}()
	cleanup()
	return nil
}

// stop signals the task and waits for its cleanup. The first caller logs a
// failure and notifies the observer.
func (t *effectTask) stop() error {
	first := false
	t.stopOnce.Do(func() {
		first = true
		close(t.stopCh)
	})
	<-t.done

	if first {
		if t.err != nil {
			t.hook.logger.Error("effect stop failed", "error", errors.New("E020").Wrap(t.err))
		}
		t.hook.observer.EffectStopped(t.hook, t.err)
	}
	return t.err
}
