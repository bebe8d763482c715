package hooks

import "sync"

type stateCell[T any] struct {
	mu    sync.Mutex
	value T
	hook  *LifeCycleHook
}

func (c *stateCell[T]) get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// dispatch computes the next value from the current one. When the result is
// not Same as the current value it is stored and a render is scheduled.
func (c *stateCell[T]) dispatch(next func(T) T) {
	c.mu.Lock()
	old := c.value
	value := next(old)
	if Same(value, old) {
		c.mu.Unlock()
		return
	}
	c.value = value
	c.mu.Unlock()

	c.hook.ScheduleRender()
}

// Setter updates a state cell. It stays valid for the lifetime of the
// component instance and may be used from any goroutine. Updates that
// produce a value Same as the current one do not schedule a render.
type Setter[T any] struct {
	cell *stateCell[T]
}

// Set replaces the state with value.
func (s Setter[T]) Set(value T) {
	s.cell.dispatch(func(T) T { return value })
}

// Update replaces the state with fn applied to the current state.
// fn must not call the same Setter.
func (s Setter[T]) Update(fn func(T) T) {
	s.cell.dispatch(fn)
}

// Get returns the latest stored value, which may be newer than the value
// returned by the render that produced this Setter.
func (s Setter[T]) Get() T {
	return s.cell.get()
}

// UseState returns the current state and its Setter. initial is used only
// on the component's first render.
func UseState[T any](initial T) (T, Setter[T]) {
	return useState(func() T { return initial })
}

// UseStateFunc is like UseState but calls init exactly once, on the first
// render, to produce the initial state.
func UseStateFunc[T any](init func() T) (T, Setter[T]) {
	return useState(init)
}

func useState[T any](init func() T) (T, Setter[T]) {
	h := CurrentHook()
	cell := useSlot(h, SlotState, func() *stateCell[T] {
		return &stateCell[T]{value: init(), hook: h}
	})
	return cell.get(), Setter[T]{cell: cell}
}
