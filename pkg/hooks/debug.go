package hooks

import "reflect"

type debugCell struct {
	memo     memoCell[any]
	last     any
	reported bool
}

// UseDebugValue logs message at debug level whenever it changes, when
// DebugMode is on. message may be a value or a func() any, which is only
// called when deps changed (see UseMemo for the deps rules).
func UseDebugValue(message any, deps Deps) {
	h := CurrentHook()
	cell := useSlot(h, SlotDebug, func() *debugCell { return &debugCell{} })

	if cell.memo.deps.changed(deps) {
		if fn, ok := message.(func() any); ok {
			cell.memo.value = fn()
		} else {
			cell.memo.value = message
		}
		cell.memo.deps.commit(deps)
	}

	if !DebugMode {
		return
	}
	if cell.reported && reflect.DeepEqual(cell.last, cell.memo.value) {
		return
	}
	cell.last = cell.memo.value
	cell.reported = true
	h.logger.Debug("debug value", "value", cell.memo.value)
}
