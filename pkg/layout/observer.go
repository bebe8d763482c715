package layout

import (
	"time"

	"github.com/vango-dev/hooks/pkg/hooks"
)

// Observer receives life-cycle notifications from a Layout and from every
// hook it creates. Implementations must be safe for concurrent use: effect
// notifications arrive from effect goroutines.
type Observer interface {
	hooks.Observer

	// RenderPass is called after each pass with the number of instances
	// rendered and the time the pass took.
	RenderPass(rendered int, elapsed time.Duration)

	// Mounted is called when a component instance is created.
	Mounted(h *hooks.LifeCycleHook)

	// Unmounted is called after an instance's effects were stopped.
	Unmounted(h *hooks.LifeCycleHook)
}

type noopObserver struct{}

func (noopObserver) RenderScheduled(*hooks.LifeCycleHook)      {}
func (noopObserver) EffectStarted(*hooks.LifeCycleHook)        {}
func (noopObserver) EffectStopped(*hooks.LifeCycleHook, error) {}
func (noopObserver) RenderPass(int, time.Duration)             {}
func (noopObserver) Mounted(*hooks.LifeCycleHook)              {}
func (noopObserver) Unmounted(*hooks.LifeCycleHook)            {}

// multiObserver fans notifications out to several observers.
type multiObserver []Observer

func (m multiObserver) RenderScheduled(h *hooks.LifeCycleHook) {
	for _, o := range m {
		o.RenderScheduled(h)
	}
}

func (m multiObserver) EffectStarted(h *hooks.LifeCycleHook) {
	for _, o := range m {
		o.EffectStarted(h)
	}
}

func (m multiObserver) EffectStopped(h *hooks.LifeCycleHook, err error) {
	for _, o := range m {
		o.EffectStopped(h, err)
	}
}

func (m multiObserver) RenderPass(rendered int, elapsed time.Duration) {
	for _, o := range m {
		o.RenderPass(rendered, elapsed)
	}
}

func (m multiObserver) Mounted(h *hooks.LifeCycleHook) {
	for _, o := range m {
		o.Mounted(h)
	}
}

func (m multiObserver) Unmounted(h *hooks.LifeCycleHook) {
	for _, o := range m {
		o.Unmounted(h)
	}
}
