package hooks

// Dispatch applies an action to reducer state.
type Dispatch[A any] func(action A)

// UseReducer returns the current state and a Dispatch that applies actions
// with reducer. The reducer captured on the first render is used for the
// lifetime of the component instance.
func UseReducer[S, A any](reducer func(S, A) S, initial S) (S, Dispatch[A]) {
	state, set := UseState(initial)
	return state, useDispatcher(reducer, set)
}

// UseReducerFunc is like UseReducer but produces the initial state with init
// on the first render only.
func UseReducerFunc[S, A any](reducer func(S, A) S, init func() S) (S, Dispatch[A]) {
	state, set := UseStateFunc(init)
	return state, useDispatcher(reducer, set)
}

func useDispatcher[S, A any](reducer func(S, A) S, set Setter[S]) Dispatch[A] {
	return useSlot(CurrentHook(), SlotReducer, func() Dispatch[A] {
		return func(action A) {
			set.Update(func(last S) S { return reducer(last, action) })
		}
	})
}
