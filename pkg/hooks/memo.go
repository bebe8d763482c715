package hooks

// Deps lists the values a memo or effect depends on.
//
// A nil Deps means "recompute on every render". NoDeps (empty, non-nil)
// means "compute once on the first render".
type Deps []any

// NoDeps computes once and never again.
var NoDeps = Deps{}

// depsTracker remembers the dependencies of the last computation.
type depsTracker struct {
	populated bool
	// always is set when the last computation had nil deps; any deps
	// differ from it.
	always bool
	deps   Deps
}

// changed reports whether a computation with next must run.
func (t *depsTracker) changed(next Deps) bool {
	switch {
	case !t.populated, t.always:
		return true
	case next == nil:
		return true
	default:
		return !sameDeps(t.deps, next)
	}
}

// commit records next as the dependencies of the current value.
func (t *depsTracker) commit(next Deps) {
	t.populated = true
	t.always = next == nil
	if next == nil {
		t.deps = nil
		return
	}
	t.deps = append(Deps{}, next...)
}

type memoCell[T any] struct {
	value T
	deps  depsTracker
}

// UseMemo returns compute's result, recomputing only on the first render,
// when deps is nil, or when deps differs from the previous render's deps in
// length or in any element under Same.
func UseMemo[T any](compute func() T, deps Deps) T {
	h := CurrentHook()
	cell := useSlot(h, SlotMemo, func() *memoCell[T] { return &memoCell[T]{} })
	if !cell.deps.changed(deps) {
		return cell.value
	}
	value := compute()
	cell.value = value
	cell.deps.commit(deps)
	return value
}

// UseCallback returns fn, or the fn passed on an earlier render if deps did
// not change since. Use it to keep a callback's identity stable for the
// dependency lists of other memos and effects.
func UseCallback[F any](fn F, deps Deps) F {
	return UseMemo(func() F { return fn }, deps)
}
