package hooks

import "sync"

// Ref holds a mutable value whose identity is stable across renders.
// Setting a Ref does not schedule a render.
//
// Ref[T] is safe for concurrent access.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewRef creates a Ref outside of a component.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{value: initial}
}

// Current returns the current value of the ref.
func (r *Ref[T]) Current() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set sets the ref's value.
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
}

// Swap sets the ref's value and returns the previous one.
func (r *Ref[T]) Swap(value T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.value
	r.value = value
	return old
}

// UseRef returns the same Ref on every render of the component, initialized
// with initial on the first render.
func UseRef[T any](initial T) *Ref[T] {
	return useSlot(CurrentHook(), SlotRef, func() *Ref[T] { return NewRef(initial) })
}
