// Package hooks provides the per-component state and effect runtime.
//
// A component's Render function calls hooks in a fixed order. Each call
// claims the next slot of the component's LifeCycleHook, so state persists
// across re-renders by position rather than by name. The renderer (see
// package layout) binds a LifeCycleHook to every component instance,
// re-invokes Render when a hook schedules a render, runs effect starters
// after each render pass and stops every effect on unmount.
//
// # Hooks
//
// UseState holds a value and a Setter that schedules a render when the value
// changes under Same:
//
//	count, set := hooks.UseState(0)
//	set.Update(func(n int) int { return n + 1 })
//
// UseMemo and UseCallback recompute only when their dependencies change:
//
//	total := hooks.UseMemo(func() int { return sum(items) }, hooks.Deps{items})
//
// UseEffect runs a side effect after render and stops it before the next run
// or on unmount:
//
//	hooks.UseEffect(hooks.EffectFunc(func() hooks.Cleanup {
//	    fmt.Println("mounted", count)
//	    return func() { fmt.Println("cleaned", count) }
//	}), hooks.Deps{count})
//
// CreateContext, Provider and UseContext pass values down the tree:
//
//	var Theme = hooks.CreateContext("light")
//	Theme.Provider("dark", child)
//	theme := hooks.UseContext(Theme)
//
// # Dependencies
//
// Deps lists the values a memo or effect depends on. A nil Deps recomputes on
// every render, NoDeps computes once. Dependencies are compared with Same.
//
// # Thread Safety
//
// Rendering happens on one goroutine at a time per component. Setters, Refs
// and effect stop procedures are safe to use from any goroutine.
package hooks
