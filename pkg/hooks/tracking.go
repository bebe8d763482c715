package hooks

import (
	"runtime"
	"sync"

	"github.com/vango-dev/hooks/internal/errors"
)

// currentHooks maps goroutine IDs to the hook rendering on that goroutine.
var currentHooks sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the "goroutine <id> " stack header.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// setCurrentHook binds h to the calling goroutine and returns the previous
// binding so it can be restored.
func setCurrentHook(h *LifeCycleHook) *LifeCycleHook {
	gid := getGoroutineID()
	var old *LifeCycleHook
	if v, ok := currentHooks.Load(gid); ok {
		old = v.(*LifeCycleHook)
	}
	if h == nil {
		currentHooks.Delete(gid)
	} else {
		currentHooks.Store(gid, h)
	}
	return old
}

// lookupCurrentHook returns the hook rendering on this goroutine, or nil.
func lookupCurrentHook() *LifeCycleHook {
	if v, ok := currentHooks.Load(getGoroutineID()); ok {
		return v.(*LifeCycleHook)
	}
	return nil
}

// CurrentHook returns the life-cycle hook of the component currently
// rendering on this goroutine. It panics with a *errors.HookError (E001)
// when called outside a render.
func CurrentHook() *LifeCycleHook {
	h := lookupCurrentHook()
	if h == nil {
		panic(errors.New("E001").WithDetail("no component is rendering on this goroutine"))
	}
	return h
}
